package http

import (
	"net/http"

	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase) *TweetHandler {
	return &TweetHandler{tweetUseCase: tweetUseCase}
}

type TweetRequest struct {
	Content string `json:"content" binding:"required,max=280"`
}

// Create godoc
// @Summary      Post a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TweetRequest true "Tweet content"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /tweets [post]
func (h *TweetHandler) Create(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	tweet, err := h.tweetUseCase.Create(callerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Tweet created successfully", tweet)
}

// ListByUser godoc
// @Summary      List a user's tweets
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10, max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /tweets/user/{userId} [get]
func (h *TweetHandler) ListByUser(c *gin.Context) {
	tweets, err := h.tweetUseCase.ListByUser(c.Param("userId"), parseListOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Tweets fetched successfully", gin.H{
		"tweets": tweets,
		"count":  len(tweets),
	})
}

// Update godoc
// @Summary      Update a tweet
// @Description  Only the author can update their tweets.
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Param        request body TweetRequest true "New content"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /tweets/{id} [patch]
func (h *TweetHandler) Update(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	tweet, err := h.tweetUseCase.Update(c.Param("id"), callerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Tweet updated successfully", tweet)
}

// Delete godoc
// @Summary      Delete a tweet
// @Description  Only the author can delete their tweets.
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /tweets/{id} [delete]
func (h *TweetHandler) Delete(c *gin.Context) {
	if err := h.tweetUseCase.Delete(c.Param("id"), callerID(c)); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Tweet deleted successfully", nil)
}
