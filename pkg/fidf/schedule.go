package fidf

// MonthSchedule is everything the schedules API knows about one origin
// destination pair in a single year/month. A schedule with no days is a
// valid "no flights that month" response.
type MonthSchedule struct {
	Month int           `json:"month"`
	Days  []ScheduleDay `json:"days"`
}

type ScheduleDay struct {
	Day     int              `json:"day"`
	Flights []ScheduleFlight `json:"flights"`
}

// ScheduleFlight carries raw wall clock times only - no date and no
// timezone. Attaching a date is the discovery engine's job.
type ScheduleFlight struct {
	Number        string `json:"number"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}

func (s *MonthSchedule) GetDay(dayOfMonth int) *ScheduleDay {
	for _, day := range s.Days {
		if day.Day == dayOfMonth {
			return &day
		}
	}

	return nil
}
