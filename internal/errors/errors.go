package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response helpers producing the API's error shapes: validation failures carry
// a per-field map under "errors", everything else a single "error" string.

// ValidationFailed sends a 400 response with the per-field error map.
func ValidationFailed(c *gin.Context, fields interface{}) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// InternalError sends a 500 response. The message is surfaced to the caller;
// this API is not hardened against detail leakage.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
