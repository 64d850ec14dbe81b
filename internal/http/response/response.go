package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/studypass-backend/internal/notifications"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondRejected carries a business rejection: the request was well
// formed but the command failed its rules. Notifications list every
// reason at once.
func RespondRejected(c *gin.Context, message string, notes []notifications.Notification) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success":       false,
		"message":       message,
		"notifications": notes,
	})
}
