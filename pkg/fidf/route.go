package fidf

// Route is a single point to point edge in the route network as returned by
// the routes API. ConnectingAirport is empty for direct routes.
type Route struct {
	AirportFrom       string `json:"airportFrom"`
	AirportTo         string `json:"airportTo"`
	ConnectingAirport string `json:"connectingAirport"`
	NewRoute          bool   `json:"newRoute"`
	SeasonalRoute     bool   `json:"seasonalRoute"`
	Operator          string `json:"operator"`
	Group             string `json:"group"`
}
