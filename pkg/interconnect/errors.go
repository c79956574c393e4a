package interconnect

import "fmt"

// RouteNotFoundError means the route network contains no direct or one-stop
// path between the two airports. It is raised before any schedule lookup
// happens.
type RouteNotFoundError struct {
	Departure string
	Arrival   string
}

func (e RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route found between %s and %s", e.Departure, e.Arrival)
}

// NoSchedulesFoundError means at least one candidate path exists in the
// network but no flight combination fits the requested time window. Cause
// carries the last schedule lookup failure when one contributed to the empty
// result.
type NoSchedulesFoundError struct {
	Departure string
	Arrival   string
	Cause     error
}

func (e NoSchedulesFoundError) Error() string {
	return fmt.Sprintf("no schedules found between %s and %s for the requested window", e.Departure, e.Arrival)
}

func (e NoSchedulesFoundError) Unwrap() error {
	return e.Cause
}
