package dto

import "time"

// CreateNotificationRequest is the payload an upstream producer sends to
// enqueue a notification. ScheduledTimeUTC is the absolute delivery instant.
type CreateNotificationRequest struct {
	EmployerID       string    `json:"employer_id" validate:"required,uuid4"`
	RecipientEmail   string    `json:"recipient_email" validate:"required,email"`
	Subject          string    `json:"subject" validate:"required"`
	MessageBody      string    `json:"message_body" validate:"required"`
	ScheduledTimeUTC time.Time `json:"scheduled_time_utc" validate:"required"`
}

// UpdateScheduleRequest is a partial schedule change. Only the weekdays
// present in WeeklyTimes are treated as changed; an empty value disables
// the day. Timezone, when set, must be a valid IANA identifier.
type UpdateScheduleRequest struct {
	Timezone    *string           `json:"timezone,omitempty"`
	WeeklyTimes map[string]string `json:"weekly_times,omitempty"`
}
