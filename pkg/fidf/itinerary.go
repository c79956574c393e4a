package fidf

import "time"

// Leg is one concrete flight segment with fully resolved timestamps
type Leg struct {
	DepartureAirport  string    `groups:"basic"`
	ArrivalAirport    string    `groups:"basic"`
	DepartureDateTime time.Time `groups:"basic"`
	ArrivalDateTime   time.Time `groups:"basic"`
}

// Itinerary is an ordered sequence of legs forming a complete journey.
// Stops is always len(Legs) - 1 and each leg departs from the previous
// leg's arrival airport.
type Itinerary struct {
	Stops int   `groups:"basic"`
	Legs  []Leg `groups:"basic"`
}
