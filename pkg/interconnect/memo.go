package interconnect

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/airhop/airhop/pkg/fidf"
)

// scheduleMemo deduplicates schedule lookups within a single discovery
// request. One-stop candidates sharing an intermediate airport would
// otherwise query the same origin destination pair several times.
type scheduleMemo struct {
	source ScheduleSource

	group singleflight.Group

	mutex     sync.Mutex
	schedules map[string]*fidf.MonthSchedule
}

func newScheduleMemo(source ScheduleSource) *scheduleMemo {
	return &scheduleMemo{
		source:    source,
		schedules: map[string]*fidf.MonthSchedule{},
	}
}

func (m *scheduleMemo) Get(ctx context.Context, origin string, destination string, year int, month time.Month) (*fidf.MonthSchedule, error) {
	key := fmt.Sprintf("%s/%s/%d/%d", origin, destination, year, int(month))

	m.mutex.Lock()
	if schedule, ok := m.schedules[key]; ok {
		m.mutex.Unlock()
		return schedule, nil
	}
	m.mutex.Unlock()

	result, err, _ := m.group.Do(key, func() (interface{}, error) {
		schedule, err := m.source.Schedule(ctx, origin, destination, year, month)
		if err != nil {
			return nil, err
		}

		m.mutex.Lock()
		m.schedules[key] = schedule
		m.mutex.Unlock()

		return schedule, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*fidf.MonthSchedule), nil
}
