package interconnect

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/exp/slices"

	"github.com/airhop/airhop/pkg/fidf"
	"github.com/airhop/airhop/pkg/util"
)

// DefaultEligibilityRule keeps direct routes operated by Ryanair itself.
// Routes with a baked in connecting airport or a partner operator cannot be
// used for itinerary construction.
const DefaultEligibilityRule = `ConnectingAirport == "" && Operator == "RYANAIR"`

// routeGraph indexes the eligible route edges by origin airport. It is
// rebuilt from a fresh network snapshot on every request and thrown away
// afterwards.
type routeGraph struct {
	edges map[string][]string
}

func buildRouteGraph(routes []fidf.Route, eligibilityRule *vm.Program) *routeGraph {
	util.InPlaceFilter(&routes, func(route fidf.Route) bool {
		matched, err := expr.Run(eligibilityRule, route)
		if err != nil {
			return false
		}

		return matched == true
	})

	graph := &routeGraph{
		edges: map[string][]string{},
	}

	for _, route := range routes {
		if route.AirportFrom == "" || route.AirportTo == "" || route.AirportFrom == route.AirportTo {
			continue
		}

		graph.edges[route.AirportFrom] = append(graph.edges[route.AirportFrom], route.AirportTo)
	}

	return graph
}

func (g *routeGraph) hasEdge(from string, to string) bool {
	return slices.Contains(g.edges[from], to)
}

// candidatePaths enumerates the direct and exactly one-stop airport
// sequences between departure and arrival. Anything longer than one stop is
// never generated.
func (g *routeGraph) candidatePaths(departure string, arrival string, allowLoopback bool) [][]string {
	if departure == arrival && !allowLoopback {
		return nil
	}

	var candidates [][]string

	if g.hasEdge(departure, arrival) {
		candidates = append(candidates, []string{departure, arrival})
	}

	intermediates := util.RemoveDuplicateStrings(g.edges[departure])
	for _, via := range intermediates {
		// An intermediate equal to either endpoint would collapse the
		// path into a direct edge or an A->A hop
		if via == departure || via == arrival {
			continue
		}

		if g.hasEdge(via, arrival) {
			candidates = append(candidates, []string{departure, via, arrival})
		}
	}

	return candidates
}
