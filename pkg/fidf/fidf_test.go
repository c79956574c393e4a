package fidf

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDateTime(t *testing.T) {
	dateTime, err := ParseLocalDateTime("2018-03-01T12:40")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, time.March, 1, 12, 40, 0, 0, time.UTC), dateTime)

	dateTime, err = ParseLocalDateTime("2018-03-01T12:40:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, time.March, 1, 12, 40, 30, 0, time.UTC), dateTime)

	_, err = ParseLocalDateTime("01-03-2018 12:40")
	assert.Error(t, err)
}

func TestRouteDecodesNullConnectingAirport(t *testing.T) {
	var route Route
	require.NoError(t, json.Unmarshal([]byte(`{"airportFrom": "DUB", "airportTo": "WRO", "connectingAirport": null, "operator": "RYANAIR"}`), &route))

	assert.Empty(t, route.ConnectingAirport)
}

func TestMonthScheduleGetDay(t *testing.T) {
	schedule := MonthSchedule{
		Month: 3,
		Days: []ScheduleDay{
			{Day: 1, Flights: []ScheduleFlight{{Number: "1926"}}},
			{Day: 14},
		},
	}

	day := schedule.GetDay(1)
	require.NotNil(t, day)
	assert.Len(t, day.Flights, 1)

	assert.NotNil(t, schedule.GetDay(14))
	assert.Nil(t, schedule.GetDay(2))
}
