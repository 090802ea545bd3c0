package http

import (
	"net/http"

	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/logger"
	"github.com/360Pawan/360Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// Stats godoc
// @Summary      Channel statistics
// @Description  Total videos, total views, total likes and subscriber count for the caller's channel.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUseCase.Stats(callerID(c))
	if err != nil {
		h.logger.Error("Failed to compute dashboard stats: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Channel stats fetched successfully", stats)
}

// Videos godoc
// @Summary      Channel videos
// @Description  All of the caller's videos, published and unpublished.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10, max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /dashboard/videos [get]
func (h *DashboardHandler) Videos(c *gin.Context) {
	videos, err := h.dashboardUseCase.Videos(callerID(c), parseListOptions(c))
	if err != nil {
		h.logger.Error("Failed to fetch channel videos: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Channel videos fetched successfully", gin.H{
		"videos": videos,
		"count":  len(videos),
	})
}
