package terra

import (
	"time"

	"terraverse/internal/domain/geo"
)

// TravelState is derived from the agent's order and the clock; it is never
// stored. Arrived is transient: arrival processing always clears the order.
type TravelState string

const (
	StateIdle      TravelState = "idle"
	StateTraveling TravelState = "traveling"
	StateArrived   TravelState = "arrived"
)

// MovementOrder is the in-flight travel record. All four fields are set
// together when the order is issued; a nil order means the agent is idle.
type MovementOrder struct {
	Origin      geo.Coordinate `json:"origin"`
	Destination geo.Coordinate `json:"destination"`
	DepartedAt  time.Time      `json:"departed_at"`
	ArrivesAt   time.Time      `json:"arrives_at"`
}

// NewMovementOrder issues an order from origin to dest at the given speed.
// Travel time is straight-line great-circle distance over speed; no terrain cost.
func NewMovementOrder(origin, dest geo.Coordinate, now time.Time, speedKmPerSec float64) MovementOrder {
	seconds := 0.0
	if speedKmPerSec > 0 {
		seconds = geo.DistanceKm(origin, dest) / speedKmPerSec
	}
	return MovementOrder{
		Origin:      origin,
		Destination: dest,
		DepartedAt:  now,
		ArrivesAt:   now.Add(time.Duration(seconds * float64(time.Second))),
	}
}

// TravelState reports where the agent stands in the movement state machine.
func (a Agent) TravelState(now time.Time) TravelState {
	if a.Order == nil {
		return StateIdle
	}
	if now.Before(a.Order.ArrivesAt) {
		return StateTraveling
	}
	return StateArrived
}
