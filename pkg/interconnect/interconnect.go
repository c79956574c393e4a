// Package interconnect implements the interconnection discovery engine - it
// combines the route network with monthly schedules to find the direct and
// one-stop itineraries fitting a requested time window.
package interconnect

import (
	"context"
	"strconv"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"
	iso8601 "github.com/senseyeio/duration"
	"github.com/sourcegraph/conc/pool"

	"github.com/airhop/airhop/pkg/fidf"
	"github.com/airhop/airhop/pkg/util"
)

const defaultMinConnectionTime = "PT2H"
const defaultMaxScheduleLookups = 10

type Finder struct {
	RouteSource    RouteSource
	ScheduleSource ScheduleSource

	// MinConnectionTime is the shortest allowed gap between an arriving
	// leg and the next departing leg at the same airport
	MinConnectionTime iso8601.Duration

	EligibilityRule *vm.Program

	MaxScheduleLookups int

	// AllowLoopback permits one-stop candidates whose departure and
	// arrival airport coincide
	AllowLoopback bool
}

// NewFinder builds a Finder wired to the two collaborator sources, reading
// the connection time and route eligibility policy from the environment.
func NewFinder(routeSource RouteSource, scheduleSource ScheduleSource) (*Finder, error) {
	env := util.GetEnvironmentVariables()

	minConnectionValue := env["AIRHOP_MIN_CONNECTION_TIME"]
	if minConnectionValue == "" {
		minConnectionValue = defaultMinConnectionTime
	}
	minConnectionTime, err := iso8601.ParseISO8601(minConnectionValue)
	if err != nil {
		return nil, err
	}

	eligibilityValue := env["AIRHOP_ROUTE_ELIGIBILITY"]
	if eligibilityValue == "" {
		eligibilityValue = DefaultEligibilityRule
	}
	eligibilityRule, err := expr.Compile(eligibilityValue, expr.Env(fidf.Route{}), expr.AsBool())
	if err != nil {
		return nil, err
	}

	maxScheduleLookups := defaultMaxScheduleLookups
	if env["AIRHOP_MAX_SCHEDULE_LOOKUPS"] != "" {
		if n, err := strconv.Atoi(env["AIRHOP_MAX_SCHEDULE_LOOKUPS"]); err == nil {
			maxScheduleLookups = n
		} else {
			return nil, err
		}
	}

	return &Finder{
		RouteSource:        routeSource,
		ScheduleSource:     scheduleSource,
		MinConnectionTime:  minConnectionTime,
		EligibilityRule:    eligibilityRule,
		MaxScheduleLookups: maxScheduleLookups,
	}, nil
}

type candidateResult struct {
	Itineraries []fidf.Itinerary
	Err         error
}

// FindItineraries is the discovery entry point. It fails with
// RouteNotFoundError before performing a single schedule lookup when the
// network has no candidate path, and with NoSchedulesFoundError when no
// candidate produced a schedule-valid itinerary.
func (f *Finder) FindItineraries(ctx context.Context, departure string, arrival string, departureDateTime time.Time, arrivalDateTime time.Time) ([]fidf.Itinerary, error) {
	routes, err := f.RouteSource.Routes(ctx)
	if err != nil {
		return nil, err
	}

	graph := buildRouteGraph(routes, f.EligibilityRule)
	candidates := graph.candidatePaths(departure, arrival, f.AllowLoopback)

	if len(candidates) == 0 {
		return nil, RouteNotFoundError{Departure: departure, Arrival: arrival}
	}

	memo := newScheduleMemo(f.ScheduleSource)
	window := searchWindow{
		Departure: departureDateTime,
		Arrival:   arrivalDateTime,
	}

	p := pool.NewWithResults[candidateResult]()
	p.WithMaxGoroutines(f.MaxScheduleLookups)

	for _, candidate := range candidates {
		p.Go(func() candidateResult {
			itineraries, err := f.resolveCandidate(ctx, memo, candidate, window)

			if err != nil {
				// One failed candidate must not abort its siblings
				log.Error().Err(err).Strs("path", candidate).Msg("Failed to resolve candidate path")
			}

			return candidateResult{Itineraries: itineraries, Err: err}
		})
	}

	var itineraries []fidf.Itinerary
	var lastFailure error

	for _, result := range p.Wait() {
		if result.Err != nil {
			lastFailure = result.Err
		}

		itineraries = append(itineraries, result.Itineraries...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(itineraries) == 0 {
		return nil, NoSchedulesFoundError{Departure: departure, Arrival: arrival, Cause: lastFailure}
	}

	return itineraries, nil
}
