package http

import (
	"net/http"

	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/logger"
	"github.com/360Pawan/360Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase   usecase.VideoUseCase
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, commentUseCase usecase.CommentUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase:   videoUseCase,
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Duration    float64 `form:"duration"`
}

// Publish godoc
// @Summary      Publish a video
// @Description  Upload a video file and thumbnail, both required. The video starts published.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string true "Video description"
// @Param        duration formData number false "Duration in seconds"
// @Param        videoFile formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /videos [post]
func (h *VideoHandler) Publish(c *gin.Context) {
	var req PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Video file is required")
		return
	}
	thumbnail, err := c.FormFile("thumbnail")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Thumbnail file is required")
		return
	}

	video, err := h.videoUseCase.Publish(callerID(c), usecase.PublishVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}, videoFile, thumbnail)
	if err != nil {
		h.logger.Error("Failed to publish video: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Video published successfully", video)
}

// Get godoc
// @Summary      Get a video
// @Description  Fetch a video with its owner, like count and whether the caller liked it. Counts a view once per viewer per window and records watch history.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	video, likeCount, isLiked, err := h.videoUseCase.Get(c.Param("id"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Video fetched successfully", gin.H{
		"video":      video,
		"likesCount": likeCount,
		"isLiked":    isLiked,
	})
}

// List godoc
// @Summary      List published videos
// @Description  Paginated published videos with owners inlined. Supports title/description search and owner filtering.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10, max 100)"
// @Param        query query string false "Search in title and description"
// @Param        userId query string false "Filter by owner"
// @Param        sortBy query string false "Sort column (created_at, views, title, duration)"
// @Param        sortType query string false "asc or desc"
// @Success      200  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	filter := persistent.VideoFilter{
		Query:   c.Query("query"),
		OwnerID: c.Query("userId"),
	}

	videos, err := h.videoUseCase.List(filter, parseListOptions(c))
	if err != nil {
		h.logger.Error("Failed to list videos: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Videos fetched successfully", gin.H{
		"videos": videos,
		"count":  len(videos),
	})
}

type UpdateVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// Update godoc
// @Summary      Update a video
// @Description  Update title, description and/or thumbnail. Only the owner can update their videos.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        title formData string false "New title"
// @Param        description formData string false "New description"
// @Param        thumbnail formData file false "New thumbnail"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{id} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	var req UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var title, description *string
	if req.Title != "" {
		title = &req.Title
	}
	if req.Description != "" {
		description = &req.Description
	}
	thumbnail, _ := c.FormFile("thumbnail")

	video, err := h.videoUseCase.Update(c.Param("id"), callerID(c), title, description, thumbnail)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Video updated successfully", video)
}

// Delete godoc
// @Summary      Delete a video
// @Description  Delete a video and remove its remote objects best-effort. Only the owner can delete their videos.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoUseCase.Delete(c.Param("id"), callerID(c)); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Video deleted successfully", nil)
}

// TogglePublish godoc
// @Summary      Toggle publish status
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{id}/toggle-publish [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	published, err := h.videoUseCase.TogglePublish(c.Param("id"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Video published"
	if !published {
		message = "Video unpublished"
	}
	response.OK(c, http.StatusOK, message, gin.H{"isPublished": published})
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        request body AddCommentRequest true "Comment content"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{id}/comments [post]
func (h *VideoHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.commentUseCase.Add(c.Param("id"), callerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Comment added successfully", comment)
}

// ListComments godoc
// @Summary      List comments on a video
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10, max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{id}/comments [get]
func (h *VideoHandler) ListComments(c *gin.Context) {
	comments, err := h.commentUseCase.List(c.Param("id"), parseListOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Comments fetched successfully", gin.H{
		"comments": comments,
		"count":    len(comments),
	})
}
