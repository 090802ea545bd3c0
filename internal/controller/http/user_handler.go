package http

import (
	"mime/multipart"
	"net/http"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/logger"
	"github.com/360Pawan/360Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUseCase usecase.AuthUseCase
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(authUseCase usecase.AuthUseCase, userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Username string `form:"username" binding:"required,min=3,max=30"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"fullName" binding:"required"`
	Password string `form:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account with an avatar (required) and an optional cover image, then queue a verification email.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        username formData string true "Username"
// @Param        email formData string true "Email address"
// @Param        fullName formData string true "Full name"
// @Param        password formData string true "Password (min 8 chars)"
// @Param        avatar formData file true "Avatar image"
// @Param        coverImage formData file false "Cover image"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	avatar, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Avatar file is required")
		return
	}

	var coverImage *multipart.FileHeader
	if file, err := c.FormFile("coverImage"); err == nil {
		coverImage = file
	}

	user, err := h.authUseCase.Register(usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	}, avatar, coverImage)
	if err != nil {
		h.logger.Error("Failed to register user: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "User registered successfully", user)
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate by username or email and receive an access/refresh token pair, also set as cookies.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials (username or email)"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		response.Error(c, http.StatusBadRequest, "Username or email is required")
		return
	}

	user, tokens, err := h.authUseCase.Login(identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setSessionCookies(c, tokens)
	response.OK(c, http.StatusOK, "User logged in successfully", gin.H{
		"user":         user.Public(),
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Invalidate the stored refresh token and clear session cookies.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.authUseCase.Logout(callerID(c)); err != nil {
		h.logger.Error("Failed to log out user: %v", err)
		respondError(c, err)
		return
	}

	clearSessionCookies(c)
	response.OK(c, http.StatusOK, "User logged out successfully", nil)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken godoc
// @Summary      Refresh session
// @Description  Exchange a valid refresh token (cookie or body) for a new token pair. The stored token is rotated.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest false "Refresh token (falls back to cookie)"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /users/refresh-token [post]
func (h *UserHandler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(refreshTokenCookie)
	if token == "" {
		var req RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "Refresh token is required")
		return
	}

	_, tokens, err := h.authUseCase.RefreshSession(token)
	if err != nil {
		respondError(c, err)
		return
	}

	setSessionCookies(c, tokens)
	response.OK(c, http.StatusOK, "Access token refreshed", gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

// VerifyEmail godoc
// @Summary      Verify email address
// @Description  Confirm the email verification token delivered by mail.
// @Tags         users
// @Produce      json
// @Param        token query string true "Verification token"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /users/verify-email [get]
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, "Verification token is required")
		return
	}

	if err := h.authUseCase.VerifyEmail(token); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Email verified successfully", nil)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Old and new password"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /users/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authUseCase.ChangePassword(callerID(c), req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Password changed successfully", nil)
}

// CurrentUser godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /users/me [get]
func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, ok := c.MustGet(ctxUserKey).(*entity.User)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized request")
		return
	}
	response.OK(c, http.StatusOK, "Current user fetched successfully", user.Public())
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdateProfile godoc
// @Summary      Update account details
// @Description  Update full name and/or email. At least one field is required.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateProfileRequest true "Fields to update"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /users/me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var fullName, email *string
	if req.FullName != "" {
		fullName = &req.FullName
	}
	if req.Email != "" {
		email = &req.Email
	}

	user, err := h.userUseCase.UpdateProfile(callerID(c), fullName, email)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Account details updated successfully", user.Public())
}

// UpdateAvatar godoc
// @Summary      Update avatar
// @Description  Replace the user's avatar. The previous image is removed from storage best-effort.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "New avatar image"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Avatar file is required")
		return
	}

	user, err := h.userUseCase.UpdateAvatar(callerID(c), file)
	if err != nil {
		h.logger.Error("Failed to update avatar: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Avatar updated successfully", user.Public())
}

// UpdateCoverImage godoc
// @Summary      Update cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        coverImage formData file true "New cover image"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	file, err := c.FormFile("coverImage")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Cover image file is required")
		return
	}

	user, err := h.userUseCase.UpdateCoverImage(callerID(c), file)
	if err != nil {
		h.logger.Error("Failed to update cover image: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Cover image updated successfully", user.Public())
}

// ChannelProfile godoc
// @Summary      Get a channel profile
// @Description  Public profile for a username with subscriber counts and whether the caller is subscribed.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Channel username"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /users/c/{username} [get]
func (h *UserHandler) ChannelProfile(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.Error(c, http.StatusBadRequest, "Username is required")
		return
	}

	profile, err := h.userUseCase.ChannelProfile(username, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Channel profile fetched successfully", profile)
}

// WatchHistory godoc
// @Summary      Get watch history
// @Description  Videos the caller has watched, most recent first, with owners inlined.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10, max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /users/history [get]
func (h *UserHandler) WatchHistory(c *gin.Context) {
	entries, err := h.userUseCase.WatchHistory(callerID(c), parseListOptions(c))
	if err != nil {
		h.logger.Error("Failed to fetch watch history: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Watch history fetched successfully", gin.H{
		"history": entries,
		"count":   len(entries),
	})
}
