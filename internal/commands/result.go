package commands

import "github.com/yungbote/studypass-backend/internal/notifications"

// Result is the outcome returned to the caller of a subscription
// creation. Message is a single human-readable summary; the itemized
// failure reasons ride along for callers that want detail.
type Result struct {
	Success       bool                         `json:"success"`
	Message       string                       `json:"message"`
	Notifications []notifications.Notification `json:"notifications,omitempty"`
}

func SuccessResult(message string) Result {
	return Result{Success: true, Message: message}
}

func FailureResult(message string, items []notifications.Notification) Result {
	return Result{Success: false, Message: message, Notifications: items}
}
