package model

import (
	"fmt"
	"time"
)

// Error codes carried by AppError.
const (
	CodeAPIError    = "API_ERROR"
	CodeRenderError = "RENDER_ERROR"
)

// AppError is the error shape surfaced to the UI: inline on panels and in
// the global banner.
type AppError struct {
	Message   string    `json:"message"`
	Code      string    `json:"code,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAppError builds an AppError stamped with the given time.
func NewAppError(code, message string, at time.Time) *AppError {
	return &AppError{Message: message, Code: code, Timestamp: at}
}

func (e *AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// User is one row of the mock users listing.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DashboardMetrics is the mock dashboard summary.
type DashboardMetrics struct {
	TotalUsers  int     `json:"totalUsers"`
	ActiveUsers int     `json:"activeUsers"`
	Revenue     int     `json:"revenue"`
	Growth      float64 `json:"growth"`
}

// Acknowledgement is returned for any resource without a dedicated payload.
type Acknowledgement struct {
	Message string `json:"message"`
}
