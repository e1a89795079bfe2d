package models

import "time"

// Alert levels understood by the client notification store.
const (
	AlertError   = "error"
	AlertSuccess = "success"
	AlertWarning = "warning"
	AlertInfo    = "info"
)

// Alert is a user-visible notification pushed to a renter's feed.
// Duration is the client auto-dismiss time in milliseconds; 0 means the
// alert stays until dismissed.
type Alert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Duration  int       `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
}
