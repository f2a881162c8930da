package voicefilter

import "fmt"

// Routing selects how a Chain connects filter A, the waveshaper and
// filter B.
type Routing int

const (
	// RoutingSerial runs A, then the waveshaper, then B.
	RoutingSerial Routing = iota
	// RoutingSerialFeedback is RoutingSerial with the saturated output of
	// the previous sample added to the input.
	RoutingSerialFeedback
	// RoutingParallel averages A and B, both fed from the input, then
	// shapes the mix.
	RoutingParallel

	numRoutings
)

var routingNames = [numRoutings]string{"serial", "serial-feedback", "parallel"}

func (r Routing) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Routing(%d)", int(r))
	}

	return routingNames[r]
}

// Valid reports whether r is a declared routing.
func (r Routing) Valid() bool {
	return r >= RoutingSerial && r < numRoutings
}

// ParseRouting resolves a name produced by Routing.String.
func ParseRouting(name string) (Routing, error) {
	for r, n := range routingNames {
		if n == name {
			return Routing(r), nil
		}
	}

	return RoutingSerial, fmt.Errorf("voicefilter: unknown routing %q", name)
}
