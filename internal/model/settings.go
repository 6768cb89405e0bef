package model

import (
	"time"

	"github.com/google/uuid"
)

// WeekdayNames lists the valid keys of WeeklyTimes in week order.
var WeekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// ScheduleSettings holds one employer's weekly delivery schedule.
// WeeklyTimes maps a lowercase weekday name to a local "HH:MM" time;
// an empty value (or a missing key) means delivery is disabled that day.
type ScheduleSettings struct {
	EmployerID  uuid.UUID         `json:"employer_id"`
	Timezone    string            `json:"timezone"`
	WeeklyTimes map[string]string `json:"weekly_times"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// SettingsUpdate is a partial change to an employer's schedule.
// Only the weekdays present in WeeklyTimes are considered changed.
type SettingsUpdate struct {
	Timezone    *string           `json:"timezone,omitempty"`
	WeeklyTimes map[string]string `json:"weekly_times,omitempty"`
}
