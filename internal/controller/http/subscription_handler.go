package http

import (
	"net/http"

	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUseCase: subscriptionUseCase}
}

// Toggle godoc
// @Summary      Toggle a subscription
// @Description  Subscribe to a channel, or unsubscribe if already subscribed. Subscribing to yourself fails.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	subscribed, err := h.subscriptionUseCase.Toggle(callerID(c), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Subscribed successfully"
	if !subscribed {
		message = "Unsubscribed successfully"
	}
	response.OK(c, http.StatusOK, message, gin.H{"subscribed": subscribed})
}

// ListSubscribers godoc
// @Summary      List a channel's subscribers
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10, max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.subscriptionUseCase.ListSubscribers(c.Param("channelId"), parseListOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Subscribers fetched successfully", gin.H{
		"subscribers": subscribers,
		"count":       len(subscribers),
	})
}

// ListSubscribedChannels godoc
// @Summary      List channels a user is subscribed to
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        subscriberId path string true "Subscriber (user) ID"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10, max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /subscriptions/u/{subscriberId} [get]
func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	channels, err := h.subscriptionUseCase.ListSubscribedChannels(c.Param("subscriberId"), parseListOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Subscribed channels fetched successfully", gin.H{
		"channels": channels,
		"count":    len(channels),
	})
}
