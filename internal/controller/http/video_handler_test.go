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

// MockVideoUseCase is a mock implementation of VideoUseCase
type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) Publish(ownerID string, input usecase.PublishVideoInput, videoFile, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	args := m.Called(ownerID, input, videoFile, thumbnail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) Get(videoID, viewerID string) (*entity.VideoWithOwner, int64, bool, error) {
	args := m.Called(videoID, viewerID)
	if args.Get(0) == nil {
		return nil, 0, false, args.Error(3)
	}
	return args.Get(0).(*entity.VideoWithOwner), args.Get(1).(int64), args.Bool(2), args.Error(3)
}

func (m *MockVideoUseCase) List(filter persistent.VideoFilter, opts persistent.ListOptions) ([]entity.VideoWithOwner, error) {
	args := m.Called(filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoWithOwner), args.Error(1)
}

func (m *MockVideoUseCase) Update(videoID, callerID string, title, description *string, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	args := m.Called(videoID, callerID, title, description, thumbnail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) Delete(videoID, callerID string) error {
	args := m.Called(videoID, callerID)
	return args.Error(0)
}

func (m *MockVideoUseCase) TogglePublish(videoID, callerID string) (bool, error) {
	args := m.Called(videoID, callerID)
	return args.Bool(0), args.Error(1)
}

var _ usecase.VideoUseCase = (*MockVideoUseCase)(nil)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) Add(videoID, ownerID, content string) (*entity.Comment, error) {
	args := m.Called(videoID, ownerID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) List(videoID string, opts persistent.ListOptions) ([]entity.CommentWithOwner, error) {
	args := m.Called(videoID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CommentWithOwner), args.Error(1)
}

func (m *MockCommentUseCase) Update(commentID, callerID, content string) (*entity.Comment, error) {
	args := m.Called(commentID, callerID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Delete(commentID, callerID string) error {
	args := m.Called(commentID, callerID)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

func newVideoHandlerForTest(video *MockVideoUseCase, comment *MockCommentUseCase) *VideoHandler {
	return NewVideoHandler(video, comment, logger.New())
}

func TestGetVideo_Success(t *testing.T) {
	mockVideo := new(MockVideoUseCase)
	handler := newVideoHandlerForTest(mockVideo, new(MockCommentUseCase))

	router := setupTestRouter()
	router.GET("/videos/:id", func(c *gin.Context) {
		c.Set(ctxUserIDKey, "viewer-1")
		handler.Get(c)
	})

	video := &entity.VideoWithOwner{
		Video: entity.Video{ID: "video-1", Title: "First upload", Views: 12, IsPublished: true},
		Owner: entity.PublicUser{ID: "owner-1", Username: "pawan"},
	}
	mockVideo.On("Get", "video-1", "viewer-1").Return(video, int64(7), true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/video-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var envelope map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &envelope)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["likesCount"])
	assert.Equal(t, true, data["isLiked"])

	mockVideo.AssertExpectations(t)
}

func TestGetVideo_NotFound(t *testing.T) {
	mockVideo := new(MockVideoUseCase)
	handler := newVideoHandlerForTest(mockVideo, new(MockCommentUseCase))

	router := setupTestRouter()
	router.GET("/videos/:id", handler.Get)

	mockVideo.On("Get", "missing", "").Return(nil, int64(0), false, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockVideo.AssertExpectations(t)
}

func TestListVideos_Success(t *testing.T) {
	mockVideo := new(MockVideoUseCase)
	handler := newVideoHandlerForTest(mockVideo, new(MockCommentUseCase))

	router := setupTestRouter()
	router.GET("/videos", handler.List)

	videos := []entity.VideoWithOwner{
		{Video: entity.Video{ID: "video-1", Title: "First"}},
		{Video: entity.Video{ID: "video-2", Title: "Second"}},
	}
	filter := persistent.VideoFilter{Query: "cats"}
	opts := persistent.ListOptions{Limit: 5, Offset: 5, SortBy: "views", SortType: "desc"}
	mockVideo.On("List", filter, opts).Return(videos, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos?query=cats&page=2&limit=5&sortBy=views&sortType=desc", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var envelope map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &envelope)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["count"])

	mockVideo.AssertExpectations(t)
}

func TestUpdateVideo_NotOwner(t *testing.T) {
	mockVideo := new(MockVideoUseCase)
	handler := newVideoHandlerForTest(mockVideo, new(MockCommentUseCase))

	router := setupTestRouter()
	router.PATCH("/videos/:id", func(c *gin.Context) {
		c.Set(ctxUserIDKey, "intruder")
		handler.Update(c)
	})

	title := "Hijacked"
	mockVideo.On("Update", "video-1", "intruder", &title, (*string)(nil), (*multipart.FileHeader)(nil)).
		Return(nil, usecase.ErrForbidden)

	form := "title=Hijacked"
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/videos/video-1", bytes.NewBufferString(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockVideo.AssertExpectations(t)
}

func TestTogglePublish_Unpublish(t *testing.T) {
	mockVideo := new(MockVideoUseCase)
	handler := newVideoHandlerForTest(mockVideo, new(MockCommentUseCase))

	router := setupTestRouter()
	router.PATCH("/videos/:id/toggle-publish", func(c *gin.Context) {
		c.Set(ctxUserIDKey, "owner-1")
		handler.TogglePublish(c)
	})

	mockVideo.On("TogglePublish", "video-1", "owner-1").Return(false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/videos/video-1/toggle-publish", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var envelope map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &envelope)
	assert.Equal(t, "Video unpublished", envelope["message"])

	mockVideo.AssertExpectations(t)
}

func TestAddComment_VideoNotFound(t *testing.T) {
	mockComment := new(MockCommentUseCase)
	handler := newVideoHandlerForTest(new(MockVideoUseCase), mockComment)

	router := setupTestRouter()
	router.POST("/videos/:id/comments", func(c *gin.Context) {
		c.Set(ctxUserIDKey, "user-1")
		handler.AddComment(c)
	})

	mockComment.On("Add", "missing", "user-1", "nice video").Return(nil, usecase.ErrNotFound)

	body := `{"content":"nice video"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/missing/comments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockComment.AssertExpectations(t)
}

func TestAddComment_EmptyContent(t *testing.T) {
	mockComment := new(MockCommentUseCase)
	handler := newVideoHandlerForTest(new(MockVideoUseCase), mockComment)

	router := setupTestRouter()
	router.POST("/videos/:id/comments", handler.AddComment)

	body := `{"content":""}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/video-1/comments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
