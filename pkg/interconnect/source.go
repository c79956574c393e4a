package interconnect

import (
	"context"
	"time"

	"github.com/airhop/airhop/pkg/fidf"
)

// RouteSource returns the full unfiltered route network snapshot. It is
// queried exactly once per discovery request.
type RouteSource interface {
	Routes(ctx context.Context) ([]fidf.Route, error)
}

// ScheduleSource returns the month schedule for one origin destination pair.
// A schedule with no days means no flights that month and is not an error.
type ScheduleSource interface {
	Schedule(ctx context.Context, origin string, destination string, year int, month time.Month) (*fidf.MonthSchedule, error)
}
