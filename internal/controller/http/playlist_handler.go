package http

import (
	"net/http"

	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{playlistUseCase: playlistUseCase}
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Create godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePlaylistRequest true "Playlist name and description"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /playlists [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	playlist, err := h.playlistUseCase.Create(callerID(c), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Playlist created successfully", playlist)
}

// Get godoc
// @Summary      Get a playlist
// @Description  Playlist with its videos inlined in playlist order.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /playlists/{id} [get]
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlistUseCase.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Playlist fetched successfully", playlist)
}

// ListByUser godoc
// @Summary      List a user's playlists
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /playlists/user/{userId} [get]
func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	playlists, err := h.playlistUseCase.ListByUser(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Playlists fetched successfully", gin.H{
		"playlists": playlists,
		"count":     len(playlists),
	})
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Update godoc
// @Summary      Update a playlist
// @Description  Update name and/or description. Only the owner can update their playlists.
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        request body UpdatePlaylistRequest true "Fields to update"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /playlists/{id} [patch]
func (h *PlaylistHandler) Update(c *gin.Context) {
	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var name, description *string
	if req.Name != "" {
		name = &req.Name
	}
	if req.Description != "" {
		description = &req.Description
	}

	playlist, err := h.playlistUseCase.Update(c.Param("id"), callerID(c), name, description)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Playlist updated successfully", playlist)
}

// Delete godoc
// @Summary      Delete a playlist
// @Description  Only the owner can delete their playlists.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /playlists/{id} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.playlistUseCase.Delete(c.Param("id"), callerID(c)); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Playlist deleted successfully", nil)
}

// AddVideo godoc
// @Summary      Add a video to a playlist
// @Description  Appends the video at the end of the playlist. Adding a video that is already present fails.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /playlists/{id}/videos/{videoId} [patch]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlist, err := h.playlistUseCase.AddVideo(c.Param("id"), c.Param("videoId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Video added to playlist", playlist)
}

// RemoveVideo godoc
// @Summary      Remove a video from a playlist
// @Description  Removing a video that is not in the playlist fails.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /playlists/{id}/videos/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlist, err := h.playlistUseCase.RemoveVideo(c.Param("id"), c.Param("videoId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Video removed from playlist", playlist)
}
