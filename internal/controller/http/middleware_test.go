package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/pkg/config"
	"github.com/360Pawan/360Tube/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(identifier string) (*entity.User, error) {
	args := m.Called(identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	args := m.Called(username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(userID, token string) error {
	return m.Called(userID, token).Error(0)
}

func (m *MockUserRepository) UpdateVerifyToken(userID, token string) error {
	return m.Called(userID, token).Error(0)
}

func (m *MockUserRepository) MarkEmailVerified(userID string) error {
	return m.Called(userID).Error(0)
}

func (m *MockUserRepository) UpdatePassword(userID, hashed string) error {
	return m.Called(userID, hashed).Error(0)
}

func (m *MockUserRepository) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockUserRepository) RecordWatch(userID, videoID string) error {
	return m.Called(userID, videoID).Error(0)
}

func (m *MockUserRepository) WatchHistory(userID string, opts persistent.ListOptions) ([]entity.WatchEntry, error) {
	args := m.Called(userID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WatchEntry), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

func testJWTService() *jwt.Service {
	return jwt.NewService(&config.Config{
		AccessTokenSecret:  "test-access-secret",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenSecret: "test-refresh-secret",
		RefreshTokenTTL:    240 * time.Hour,
		EmailTokenSecret:   "test-email-secret",
		EmailTokenTTL:      24 * time.Hour,
	})
}

func protectedRouter(jwtService *jwt.Service, userRepo persistent.UserRepository) *gin.Engine {
	router := setupTestRouter()
	router.GET("/protected", AuthRequired(jwtService, userRepo), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ctxUserIDKey))
	})
	return router
}

func TestAuthRequired_MissingToken(t *testing.T) {
	router := protectedRouter(testJWTService(), new(MockUserRepository))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	router := protectedRouter(testJWTService(), new(MockUserRepository))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_BearerToken(t *testing.T) {
	jwtService := testJWTService()
	mockRepo := new(MockUserRepository)
	router := protectedRouter(jwtService, mockRepo)

	token, err := jwtService.GenerateAccessToken("user-123", "pawan@example.com", "pawan", "Pawan Kumar")
	assert.NoError(t, err)

	mockRepo.On("GetByID", "user-123").Return(&entity.User{ID: "user-123", Username: "pawan"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", w.Body.String())

	mockRepo.AssertExpectations(t)
}

func TestAuthRequired_CookieBeatsHeader(t *testing.T) {
	jwtService := testJWTService()
	mockRepo := new(MockUserRepository)
	router := protectedRouter(jwtService, mockRepo)

	cookieToken, err := jwtService.GenerateAccessToken("cookie-user", "a@example.com", "a", "A")
	assert.NoError(t, err)

	mockRepo.On("GetByID", "cookie-user").Return(&entity.User{ID: "cookie-user"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: cookieToken})
	req.Header.Set("Authorization", "Bearer something-else")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cookie-user", w.Body.String())

	mockRepo.AssertExpectations(t)
}

func TestAuthRequired_DeletedAccount(t *testing.T) {
	jwtService := testJWTService()
	mockRepo := new(MockUserRepository)
	router := protectedRouter(jwtService, mockRepo)

	token, err := jwtService.GenerateAccessToken("gone-user", "g@example.com", "g", "G")
	assert.NoError(t, err)

	mockRepo.On("GetByID", "gone-user").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockRepo.AssertExpectations(t)
}
