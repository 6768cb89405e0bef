package schedule

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/wb-go/wbf/zlog"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// NextOccurrenceUTC returns the next instant at or after now that falls on
// weekday at localTime ("HH:MM") in the given IANA timezone, converted to UTC.
//
// An empty localTime means delivery is disabled for that weekday and yields
// (zero, false). Malformed weekday, time or timezone values are treated the
// same way: they are logged and reported as disabled, never as an error.
//
// The function is pure for a fixed now: two calls with identical inputs
// return identical instants.
func NextOccurrenceUTC(weekday, localTime, timezone string, now time.Time) (time.Time, bool) {
	if strings.TrimSpace(localTime) == "" {
		return time.Time{}, false
	}

	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(weekday))]
	if !ok {
		zlog.Logger.Warn().Str("weekday", weekday).Msg("unknown weekday, treating as disabled")
		return time.Time{}, false
	}

	hour, minute, err := parseHHMM(localTime)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("local_time", localTime).Msg("malformed local time, treating as disabled")
		return time.Time{}, false
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("timezone", timezone).Msg("invalid timezone, treating as disabled")
		return time.Time{}, false
	}

	localNow := now.In(loc)
	candidate := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), hour, minute, 0, 0, loc)

	// Advance one day at a time until the candidate lands on the requested
	// weekday and is not in the past. At most 7 steps are ever needed.
	for i := 0; i < 8 && (candidate.Weekday() != wd || candidate.Before(localNow)); i++ {
		next := candidate.AddDate(0, 0, 1)
		candidate = time.Date(next.Year(), next.Month(), next.Day(), hour, minute, 0, 0, loc)
	}

	return candidate.UTC(), true
}

// parseHHMM parses a strict 24-hour "HH:MM" string.
func parseHHMM(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, errors.New("expected HH:MM")
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, errors.New("invalid hour")
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, errors.New("invalid minute")
	}

	return hour, minute, nil
}
