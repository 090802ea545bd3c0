package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(input usecase.RegisterInput, avatar, coverImage *multipart.FileHeader) (*entity.User, error) {
	args := m.Called(input, avatar, coverImage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(identifier, password string) (*entity.User, usecase.TokenPair, error) {
	args := m.Called(identifier, password)
	if args.Get(0) == nil {
		return nil, usecase.TokenPair{}, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(usecase.TokenPair), args.Error(2)
}

func (m *MockAuthUseCase) Logout(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockAuthUseCase) RefreshSession(refreshToken string) (*entity.User, usecase.TokenPair, error) {
	args := m.Called(refreshToken)
	if args.Get(0) == nil {
		return nil, usecase.TokenPair{}, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(usecase.TokenPair), args.Error(2)
}

func (m *MockAuthUseCase) VerifyEmail(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockAuthUseCase) ChangePassword(userID, oldPassword, newPassword string) error {
	args := m.Called(userID, oldPassword, newPassword)
	return args.Error(0)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

// MockUserUseCase is a mock implementation of UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Get(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateProfile(userID string, fullName, email *string) (*entity.User, error) {
	args := m.Called(userID, fullName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateAvatar(userID string, file *multipart.FileHeader) (*entity.User, error) {
	args := m.Called(userID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateCoverImage(userID string, file *multipart.FileHeader) (*entity.User, error) {
	args := m.Called(userID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockUserUseCase) WatchHistory(userID string, opts persistent.ListOptions) ([]entity.WatchEntry, error) {
	args := m.Called(userID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WatchEntry), args.Error(1)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

func newUserHandlerForTest(auth *MockAuthUseCase, user *MockUserUseCase) *UserHandler {
	return NewUserHandler(auth, user, logger.New())
}

func TestRegister_ReturnsAccountWithoutSecrets(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	handler := newUserHandlerForTest(mockAuth, new(MockUserUseCase))

	router := setupTestRouter()
	router.POST("/users/register", handler.Register)

	created := &entity.User{
		ID:       "user-123",
		Username: "pawan",
		Email:    "pawan@example.com",
		FullName: "Pawan Kumar",
	}
	mockAuth.On("Register", usecase.RegisterInput{
		Username: "pawan",
		Email:    "pawan@example.com",
		FullName: "Pawan Kumar",
		Password: "secret-pass",
	}, mock.Anything, mock.Anything).Return(created, nil)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	form.WriteField("username", "pawan")
	form.WriteField("email", "pawan@example.com")
	form.WriteField("fullName", "Pawan Kumar")
	form.WriteField("password", "secret-pass")
	avatar, _ := form.CreateFormFile("avatar", "avatar.jpg")
	avatar.Write([]byte("not-a-real-jpeg"))
	form.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/register", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var envelope map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &envelope)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "pawan@example.com", data["email"])
	assert.Equal(t, false, data["email_verified"])
	assert.NotContains(t, data, "password")

	mockAuth.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	handler := newUserHandlerForTest(mockAuth, new(MockUserUseCase))

	router := setupTestRouter()
	router.POST("/users/login", handler.Login)

	mockUser := &entity.User{ID: "user-123", Username: "pawan", Email: "pawan@example.com"}
	tokens := usecase.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}
	mockAuth.On("Login", "pawan", "secret-pass").Return(mockUser, tokens, nil)

	body := `{"username":"pawan","password":"secret-pass"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &envelope)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "access-token", data["accessToken"])

	cookies := w.Result().Cookies()
	names := make(map[string]string, len(cookies))
	for _, cookie := range cookies {
		names[cookie.Name] = cookie.Value
	}
	assert.Equal(t, "access-token", names[accessTokenCookie])
	assert.Equal(t, "refresh-token", names[refreshTokenCookie])

	mockAuth.AssertExpectations(t)
}

func TestLogin_MissingIdentifier(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	handler := newUserHandlerForTest(mockAuth, new(MockUserUseCase))

	router := setupTestRouter()
	router.POST("/users/login", handler.Login)

	body := `{"password":"secret-pass"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_MalformedEmail(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	handler := newUserHandlerForTest(mockAuth, new(MockUserUseCase))

	router := setupTestRouter()
	router.POST("/users/login", handler.Login)

	body := `{"email":"not-an-email","password":"secret-pass"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	handler := newUserHandlerForTest(mockAuth, new(MockUserUseCase))

	router := setupTestRouter()
	router.POST("/users/login", handler.Login)

	mockAuth.On("Login", "pawan@example.com", "wrong").
		Return(nil, usecase.TokenPair{}, usecase.ErrUnauthorized)

	body := `{"email":"pawan@example.com","password":"wrong"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestRefreshToken_Invalid(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	handler := newUserHandlerForTest(mockAuth, new(MockUserUseCase))

	router := setupTestRouter()
	router.POST("/users/refresh-token", handler.RefreshToken)

	mockAuth.On("RefreshSession", "stale-token").
		Return(nil, usecase.TokenPair{}, usecase.ErrUnauthorized)

	body := `{"refreshToken":"stale-token"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/refresh-token", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestRefreshToken_Missing(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	handler := newUserHandlerForTest(mockAuth, new(MockUserUseCase))

	router := setupTestRouter()
	router.POST("/users/refresh-token", handler.RefreshToken)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/refresh-token", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshToken_FromCookie(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	handler := newUserHandlerForTest(mockAuth, new(MockUserUseCase))

	router := setupTestRouter()
	router.POST("/users/refresh-token", handler.RefreshToken)

	mockUser := &entity.User{ID: "user-123"}
	tokens := usecase.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	mockAuth.On("RefreshSession", "cookie-token").Return(mockUser, tokens, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookie, Value: "cookie-token"})

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var envelope map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &envelope)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "new-refresh", data["refreshToken"])

	mockAuth.AssertExpectations(t)
}

func TestVerifyEmail_MissingToken(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	handler := newUserHandlerForTest(mockAuth, new(MockUserUseCase))

	router := setupTestRouter()
	router.GET("/users/verify-email", handler.VerifyEmail)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/verify-email", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChannelProfile_Success(t *testing.T) {
	mockUser := new(MockUserUseCase)
	handler := newUserHandlerForTest(new(MockAuthUseCase), mockUser)

	router := setupTestRouter()
	router.GET("/users/c/:username", func(c *gin.Context) {
		c.Set(ctxUserIDKey, "viewer-1")
		handler.ChannelProfile(c)
	})

	profile := &entity.ChannelProfile{
		ID:              "channel-1",
		Username:        "pawan",
		SubscriberCount: 42,
		IsSubscribed:    true,
	}
	mockUser.On("ChannelProfile", "pawan", "viewer-1").Return(profile, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/c/pawan", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var envelope map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &envelope)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["subscriber_count"])
	assert.Equal(t, true, data["is_subscribed"])

	mockUser.AssertExpectations(t)
}

func TestChannelProfile_NotFound(t *testing.T) {
	mockUser := new(MockUserUseCase)
	handler := newUserHandlerForTest(new(MockAuthUseCase), mockUser)

	router := setupTestRouter()
	router.GET("/users/c/:username", handler.ChannelProfile)

	mockUser.On("ChannelProfile", "ghost", "").Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/c/ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUser.AssertExpectations(t)
}
