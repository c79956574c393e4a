// Package fidf contains the Flight Interconnection Data Format - the common
// structures shared between the collaborator API clients, the discovery
// engine and the web API.
package fidf

import "time"

// LocalDateTimeFormat is the timezone-less datetime format used on the wire
// for request windows and resolved legs
const LocalDateTimeFormat = "2006-01-02T15:04"
const LocalDateTimeSecondsFormat = "2006-01-02T15:04:05"

// ClockTimeFormat is the wall clock format used by the schedules API
const ClockTimeFormat = "15:04"

func ParseLocalDateTime(value string) (time.Time, error) {
	dateTime, err := time.Parse(LocalDateTimeSecondsFormat, value)
	if err == nil {
		return dateTime, nil
	}

	return time.Parse(LocalDateTimeFormat, value)
}
