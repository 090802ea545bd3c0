package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// parseListOptions translates 1-based page/limit query parameters into
// an offset/limit pair with the documented defaults.
func parseListOptions(c *gin.Context) persistent.ListOptions {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return persistent.ListOptions{
		Limit:    limit,
		Offset:   (page - 1) * limit,
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
	}
}

// respondError maps domain sentinels onto the envelope taxonomy.
// Ownership violations surface as 401, not 404: resource existence is
// deliberately not hidden from authenticated callers.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrForbidden), errors.Is(err, usecase.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

func setSessionCookies(c *gin.Context, tokens usecase.TokenPair) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessTokenCookie, tokens.AccessToken, 0, "/", "", true, true)
	c.SetCookie(refreshTokenCookie, tokens.RefreshToken, 0, "/", "", true, true)
}

func clearSessionCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", true, true)
}
