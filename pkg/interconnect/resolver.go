package interconnect

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	iso8601 "github.com/senseyeio/duration"

	"github.com/airhop/airhop/pkg/fidf"
	"github.com/airhop/airhop/pkg/util"
)

// searchWindow is the caller supplied departure/arrival bound pair. The
// departure datetime also selects the schedule month and calendar day.
type searchWindow struct {
	Departure time.Time
	Arrival   time.Time
}

// resolveCandidate turns one candidate airport sequence into zero or more
// concrete itineraries by resolving each hop against the schedule source.
func (f *Finder) resolveCandidate(ctx context.Context, memo *scheduleMemo, path []string, window searchWindow) ([]fidf.Itinerary, error) {
	if len(path) == 2 {
		legs, err := f.resolveLegs(ctx, memo, path[0], path[1], window, window.Departure, true)
		if err != nil {
			return nil, err
		}

		var itineraries []fidf.Itinerary
		for _, leg := range legs {
			itineraries = append(itineraries, fidf.Itinerary{
				Stops: 0,
				Legs:  []fidf.Leg{leg},
			})
		}

		return itineraries, nil
	}

	firstLegs, err := f.resolveLegs(ctx, memo, path[0], path[1], window, window.Departure, true)
	if err != nil {
		return nil, err
	}

	// Every surviving (first, second) combination becomes its own
	// itinerary - this is a cross product, not an earliest match
	var itineraries []fidf.Itinerary
	for _, firstLeg := range firstLegs {
		earliestConnection := f.MinConnectionTime.Shift(firstLeg.ArrivalDateTime)

		secondLegs, err := f.resolveLegs(ctx, memo, path[1], path[2], window, earliestConnection, false)
		if err != nil {
			return nil, err
		}

		for _, secondLeg := range secondLegs {
			itineraries = append(itineraries, fidf.Itinerary{
				Stops: 1,
				Legs:  []fidf.Leg{firstLeg, secondLeg},
			})
		}
	}

	return itineraries, nil
}

// resolveLegs queries the schedule for one origin destination pair,
// restricts it to the requested calendar day and resolves the raw clock
// times into full timestamps. A strict notBefore bound keeps departures
// strictly after it, a non-strict one also keeps exact matches (used for
// the minimum connection time, where a gap of exactly the minimum is
// allowed).
func (f *Finder) resolveLegs(ctx context.Context, memo *scheduleMemo, origin string, destination string, window searchWindow, notBefore time.Time, strict bool) ([]fidf.Leg, error) {
	schedule, err := memo.Get(ctx, origin, destination, window.Departure.Year(), window.Departure.Month())
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}

	day := schedule.GetDay(window.Departure.Day())
	if day == nil {
		return nil, nil
	}

	var legs []fidf.Leg

	for _, flight := range day.Flights {
		departureClock, err := time.Parse(fidf.ClockTimeFormat, flight.DepartureTime)
		if err != nil {
			log.Warn().Err(err).Str("flight", flight.Number).Msg("Skipping flight with malformed departure time")
			continue
		}
		arrivalClock, err := time.Parse(fidf.ClockTimeFormat, flight.ArrivalTime)
		if err != nil {
			log.Warn().Err(err).Str("flight", flight.Number).Msg("Skipping flight with malformed arrival time")
			continue
		}

		departureDateTime := util.AddTimeToDate(window.Departure, departureClock)
		arrivalDateTime := util.AddTimeToDate(window.Departure, arrivalClock)

		// An arrival clock earlier than the departure clock means the
		// flight lands the next calendar day
		if arrivalDateTime.Before(departureDateTime) {
			nextDayDuration, _ := iso8601.ParseISO8601("P1D")
			arrivalDateTime = nextDayDuration.Shift(arrivalDateTime)
		}

		if strict && !departureDateTime.After(notBefore) {
			continue
		}
		if !strict && departureDateTime.Before(notBefore) {
			continue
		}

		if arrivalDateTime.After(window.Arrival) {
			continue
		}

		legs = append(legs, fidf.Leg{
			DepartureAirport:  origin,
			ArrivalAirport:    destination,
			DepartureDateTime: departureDateTime,
			ArrivalDateTime:   arrivalDateTime,
		})
	}

	return legs, nil
}
