package domain

import "time"

// AlertType grades the severity of a dashboard alert.
type AlertType string

const (
	AlertDanger  AlertType = "danger"
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

// Alert is a dismissible notification produced by the periodic checks
// (subscription running low, upcoming booked session, ...).
type Alert struct {
	ID        string    `bson:"_id" json:"id"`
	Trainee   string    `bson:"trainee" json:"trainee"`
	Issue     string    `bson:"issue" json:"issue"`
	Type      AlertType `bson:"type" json:"type"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
