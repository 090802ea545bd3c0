package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform wrapper every endpoint returns, success or
// failure.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
}

func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Success:    status < 400,
		Data:       data,
		Message:    message,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Success:    false,
		Message:    message,
	})
}

func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		StatusCode: status,
		Success:    false,
		Message:    message,
	})
}
