package routes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airhop/airhop/pkg/fidf"
	"github.com/airhop/airhop/pkg/interconnect"
)

type stubFinder struct {
	itineraries []fidf.Itinerary
	err         error

	departure         string
	arrival           string
	departureDateTime time.Time
	arrivalDateTime   time.Time
}

func (s *stubFinder) FindItineraries(ctx context.Context, departure string, arrival string, departureDateTime time.Time, arrivalDateTime time.Time) ([]fidf.Itinerary, error) {
	s.departure = departure
	s.arrival = arrival
	s.departureDateTime = departureDateTime
	s.arrivalDateTime = arrivalDateTime

	return s.itineraries, s.err
}

func newTestApp(finder *stubFinder) *fiber.App {
	app := fiber.New()
	InterconnectionsRouter(app.Group("/interconnections"), finder)

	return app
}

func performRequest(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, body
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()

	dateTime, err := fidf.ParseLocalDateTime(value)
	require.NoError(t, err)

	return dateTime
}

func TestGetInterconnections(t *testing.T) {
	finder := &stubFinder{
		itineraries: []fidf.Itinerary{
			{
				Stops: 1,
				Legs: []fidf.Leg{
					{
						DepartureAirport:  "DUB",
						ArrivalAirport:    "STN",
						DepartureDateTime: mustParse(t, "2018-03-01T06:25"),
						ArrivalDateTime:   mustParse(t, "2018-03-01T07:35"),
					},
					{
						DepartureAirport:  "STN",
						ArrivalAirport:    "WRO",
						DepartureDateTime: mustParse(t, "2018-03-01T09:50"),
						ArrivalDateTime:   mustParse(t, "2018-03-01T13:20"),
					},
				},
			},
			{
				Stops: 0,
				Legs: []fidf.Leg{
					{
						DepartureAirport:  "DUB",
						ArrivalAirport:    "WRO",
						DepartureDateTime: mustParse(t, "2018-03-01T12:40"),
						ArrivalDateTime:   mustParse(t, "2018-03-01T16:40"),
					},
				},
			},
		},
	}

	status, body := performRequest(t, newTestApp(finder),
		"/interconnections/?departure=DUB&arrival=WRO&departureDateTime=2018-03-01T06:00&arrivalDateTime=2018-03-01T17:00")

	assert.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, "DUB", finder.departure)
	assert.Equal(t, "WRO", finder.arrival)
	assert.Equal(t, mustParse(t, "2018-03-01T06:00"), finder.departureDateTime)
	assert.Equal(t, mustParse(t, "2018-03-01T17:00"), finder.arrivalDateTime)

	var interconnections []struct {
		Stops int `json:"stops"`
		Legs  []struct {
			DepartureAirport  string `json:"departureAirport"`
			ArrivalAirport    string `json:"arrivalAirport"`
			DepartureDateTime string `json:"departureDateTime"`
			ArrivalDateTime   string `json:"arrivalDateTime"`
		} `json:"legs"`
	}
	require.NoError(t, json.Unmarshal(body, &interconnections))
	require.Len(t, interconnections, 2)

	// Direct itineraries sort ahead of one-stop ones
	assert.Equal(t, 0, interconnections[0].Stops)
	require.Len(t, interconnections[0].Legs, 1)
	assert.Equal(t, "DUB", interconnections[0].Legs[0].DepartureAirport)
	assert.Equal(t, "WRO", interconnections[0].Legs[0].ArrivalAirport)
	assert.Equal(t, "2018-03-01T12:40", interconnections[0].Legs[0].DepartureDateTime)
	assert.Equal(t, "2018-03-01T16:40", interconnections[0].Legs[0].ArrivalDateTime)

	assert.Equal(t, 1, interconnections[1].Stops)
	require.Len(t, interconnections[1].Legs, 2)
	assert.Equal(t, "STN", interconnections[1].Legs[1].DepartureAirport)
}

func TestGetInterconnectionsEmptyResult(t *testing.T) {
	status, body := performRequest(t, newTestApp(&stubFinder{}),
		"/interconnections/?departure=DUB&arrival=WRO&departureDateTime=2018-03-01T06:00&arrivalDateTime=2018-03-01T17:00")

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestGetInterconnectionsMissingAirports(t *testing.T) {
	status, _ := performRequest(t, newTestApp(&stubFinder{}),
		"/interconnections/?departureDateTime=2018-03-01T06:00&arrivalDateTime=2018-03-01T17:00")

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetInterconnectionsSameAirport(t *testing.T) {
	status, _ := performRequest(t, newTestApp(&stubFinder{}),
		"/interconnections/?departure=DUB&arrival=DUB&departureDateTime=2018-03-01T06:00&arrivalDateTime=2018-03-01T17:00")

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetInterconnectionsMalformedDateTime(t *testing.T) {
	status, _ := performRequest(t, newTestApp(&stubFinder{}),
		"/interconnections/?departure=DUB&arrival=WRO&departureDateTime=01-03-2018&arrivalDateTime=2018-03-01T17:00")

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetInterconnectionsInvertedWindow(t *testing.T) {
	status, _ := performRequest(t, newTestApp(&stubFinder{}),
		"/interconnections/?departure=DUB&arrival=WRO&departureDateTime=2018-03-01T17:00&arrivalDateTime=2018-03-01T06:00")

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetInterconnectionsRouteNotFound(t *testing.T) {
	finder := &stubFinder{
		err: interconnect.RouteNotFoundError{Departure: "DUB", Arrival: "MAD"},
	}

	status, body := performRequest(t, newTestApp(finder),
		"/interconnections/?departure=DUB&arrival=MAD&departureDateTime=2018-03-01T06:00&arrivalDateTime=2018-03-01T17:00")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(body), "error")
}

func TestGetInterconnectionsNoSchedulesFound(t *testing.T) {
	finder := &stubFinder{
		err: interconnect.NoSchedulesFoundError{Departure: "DUB", Arrival: "WRO"},
	}

	status, _ := performRequest(t, newTestApp(finder),
		"/interconnections/?departure=DUB&arrival=WRO&departureDateTime=2018-03-01T06:00&arrivalDateTime=2018-03-01T17:00")

	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetInterconnectionsUpstreamFailure(t *testing.T) {
	finder := &stubFinder{
		err: errors.New("upstream timeout"),
	}

	status, _ := performRequest(t, newTestApp(finder),
		"/interconnections/?departure=DUB&arrival=WRO&departureDateTime=2018-03-01T06:00&arrivalDateTime=2018-03-01T17:00")

	assert.Equal(t, fiber.StatusInternalServerError, status)
}
