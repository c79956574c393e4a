package ryanair

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/airhop/airhop/pkg/fidf"
)

// Schedule fetches the month schedule for one origin destination pair. The
// schedules API answers 404 for pairs without any flights that month, which
// is a valid empty schedule rather than a failure.
func (c *Client) Schedule(ctx context.Context, origin string, destination string, year int, month time.Month) (*fidf.MonthSchedule, error) {
	requestURL := fmt.Sprintf("%s/%s/%s/years/%d/months/%d", c.DataSource.SchedulesEndpoint, origin, destination, year, int(month))

	var schedule fidf.MonthSchedule
	err := c.fetchJSON(ctx, requestURL, &schedule)

	if errors.Is(err, ErrNotFound) {
		return &fidf.MonthSchedule{Month: int(month)}, nil
	}
	if err != nil {
		log.Error().Err(err).Str("origin", origin).Str("destination", destination).Msg("Failed to fetch schedule")
		return nil, err
	}

	return &schedule, nil
}
