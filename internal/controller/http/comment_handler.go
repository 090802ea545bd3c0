package http

import (
	"net/http"

	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Update godoc
// @Summary      Update a comment
// @Description  Edit a comment's content. Only the author can update their comments.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Param        request body UpdateCommentRequest true "New content"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /comments/{id} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.commentUseCase.Update(c.Param("id"), callerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Comment updated successfully", comment)
}

// Delete godoc
// @Summary      Delete a comment
// @Description  Only the author can delete their comments.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentUseCase.Delete(c.Param("id"), callerID(c)); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Comment deleted successfully", nil)
}
