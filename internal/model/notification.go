package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the delivery lifecycle state of a scheduled notification.
//
// Allowed transitions:
//
//	pending → processing → sent | failed
//	pending → cancelled_by_setting_change
//
// Every state except pending and processing is terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled_by_setting_change"
)

// Notification is a single scheduled email owned by an employer.
// ScheduledAt is always stored in UTC; the weekday it belongs to is a
// local concept and must be derived through the employer's timezone.
type Notification struct {
	ID               uuid.UUID  `json:"id"`
	EmployerID       uuid.UUID  `json:"employer_id"`
	RecipientEmail   string     `json:"recipient_email"`
	Subject          string     `json:"subject"`
	MessageBody      string     `json:"message_body"`
	ScheduledAt      time.Time  `json:"scheduled_time_utc"`
	Status           Status     `json:"status"`
	Attempts         int        `json:"attempts"`
	LastAttemptError string     `json:"last_attempt_error,omitempty"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
