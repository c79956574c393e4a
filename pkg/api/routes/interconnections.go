package routes

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/airhop/airhop/pkg/fidf"
	"github.com/airhop/airhop/pkg/interconnect"
)

// ItineraryFinder is what the handler needs from the discovery engine
type ItineraryFinder interface {
	FindItineraries(ctx context.Context, departure string, arrival string, departureDateTime time.Time, arrivalDateTime time.Time) ([]fidf.Itinerary, error)
}

func InterconnectionsRouter(router fiber.Router, finder ItineraryFinder) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getInterconnections(c, finder)
	})
}

type interconnectionLeg struct {
	DepartureAirport  string `groups:"basic" json:"departureAirport"`
	ArrivalAirport    string `groups:"basic" json:"arrivalAirport"`
	DepartureDateTime string `groups:"basic" json:"departureDateTime"`
	ArrivalDateTime   string `groups:"basic" json:"arrivalDateTime"`
}

type interconnection struct {
	Stops int                  `groups:"basic" json:"stops"`
	Legs  []interconnectionLeg `groups:"basic" json:"legs"`
}

func getInterconnections(c *fiber.Ctx, finder ItineraryFinder) error {
	departure := c.Query("departure")
	arrival := c.Query("arrival")

	if departure == "" || arrival == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameters departure and arrival are required",
		})
	}

	if departure == arrival {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameters departure and arrival must differ",
		})
	}

	departureDateTime, err := fidf.ParseLocalDateTime(c.Query("departureDateTime"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter departureDateTime should be a local datetime (2006-01-02T15:04)",
		})
	}

	arrivalDateTime, err := fidf.ParseLocalDateTime(c.Query("arrivalDateTime"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter arrivalDateTime should be a local datetime (2006-01-02T15:04)",
		})
	}

	if !arrivalDateTime.After(departureDateTime) {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter arrivalDateTime must be after departureDateTime",
		})
	}

	itineraries, err := finder.FindItineraries(c.Context(), departure, arrival, departureDateTime, arrivalDateTime)

	if err != nil {
		var routeNotFound interconnect.RouteNotFoundError
		var noSchedulesFound interconnect.NoSchedulesFoundError

		if errors.As(err, &routeNotFound) || errors.As(err, &noSchedulesFound) {
			c.SendStatus(fiber.StatusNotFound)
		} else {
			c.SendStatus(fiber.StatusInternalServerError)
		}

		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Sort itineraries by stop count then first departure for a stable
	// response body
	sort.Slice(itineraries, func(i, j int) bool {
		if itineraries[i].Stops != itineraries[j].Stops {
			return itineraries[i].Stops < itineraries[j].Stops
		}

		return itineraries[i].Legs[0].DepartureDateTime.Before(itineraries[j].Legs[0].DepartureDateTime)
	})

	interconnections := make([]interconnection, 0, len(itineraries))
	for _, itinerary := range itineraries {
		legs := make([]interconnectionLeg, 0, len(itinerary.Legs))

		for _, leg := range itinerary.Legs {
			legs = append(legs, interconnectionLeg{
				DepartureAirport:  leg.DepartureAirport,
				ArrivalAirport:    leg.ArrivalAirport,
				DepartureDateTime: leg.DepartureDateTime.Format(fidf.LocalDateTimeFormat),
				ArrivalDateTime:   leg.ArrivalDateTime.Format(fidf.LocalDateTimeFormat),
			})
		}

		interconnections = append(interconnections, interconnection{
			Stops: itinerary.Stops,
			Legs:  legs,
		})
	}

	interconnectionsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, interconnections)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce interconnections",
		})
	}

	return c.JSON(interconnectionsReduced)
}
