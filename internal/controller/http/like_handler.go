package http

import (
	"net/http"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase) *LikeHandler {
	return &LikeHandler{likeUseCase: likeUseCase}
}

// Toggle godoc
// @Summary      Toggle a like
// @Description  Like a video, comment or tweet, or remove the like if already present.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Target kind" Enums(video, comment, tweet)
// @Param        id path string true "Target ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /likes/toggle/{kind}/{id} [post]
func (h *LikeHandler) Toggle(c *gin.Context) {
	kind := entity.LikeTargetKind(c.Param("kind"))

	liked, err := h.likeUseCase.Toggle(callerID(c), kind, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Liked successfully"
	if !liked {
		message = "Like removed"
	}
	response.OK(c, http.StatusOK, message, gin.H{"liked": liked})
}

// Count godoc
// @Summary      Get like count
// @Description  Number of likes on a video, comment or tweet. Served from the counter cache when warm.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Target kind" Enums(video, comment, tweet)
// @Param        id path string true "Target ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /likes/count/{kind}/{id} [get]
func (h *LikeHandler) Count(c *gin.Context) {
	kind := entity.LikeTargetKind(c.Param("kind"))

	count, err := h.likeUseCase.Count(kind, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Like count fetched successfully", gin.H{"count": count})
}

// LikedVideos godoc
// @Summary      List liked videos
// @Description  Videos the caller has liked, most recently liked first, with owners inlined.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10, max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /likes/videos [get]
func (h *LikeHandler) LikedVideos(c *gin.Context) {
	videos, err := h.likeUseCase.LikedVideos(callerID(c), parseListOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Liked videos fetched successfully", gin.H{
		"videos": videos,
		"count":  len(videos),
	})
}
