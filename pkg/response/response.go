package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/edudesk/edudesk-api/pkg/errors"
)

// Confirmation is the body returned for successful mutations and all
// failures: a human-readable message, plus the affected document for
// mutations that return one.
type Confirmation struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Document sends a raw document or collection body. Read endpoints return
// entities unwrapped so existing dashboard consumers keep working.
func Document(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Created responds with HTTP 201 and a creation confirmation.
func Created(c *gin.Context, message string, data interface{}) {
	Message(c, http.StatusCreated, message, data)
}

// Message sends a confirmation body with the given status.
func Message(c *gin.Context, status int, message string, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Confirmation{Message: message, Data: data})
}

// Error converts the error to its HTTP status and a {message} body. Raw
// infrastructure errors never reach the client unformatted.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Confirmation{Message: appErr.Message})
}
