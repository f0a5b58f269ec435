package terra

import "terraverse/internal/domain/geo"

// DenialReason explains why a beacon request was rejected.
type DenialReason string

const (
	DenyNoCenterInRange DenialReason = "no center in range"
	DenyBeaconLimit     DenialReason = "beacon limit reached"
)

// BeaconDecision is the outcome of a beacon authorization check. When
// Authorized is true, Parent is the territory center the beacon anchors to.
type BeaconDecision struct {
	Authorized bool
	Parent     Building
	Reason     DenialReason
}

// AuthorizeBeacon decides whether the candidate location may host a new
// beacon for the owner of the given centers. Centers whose type permits no
// beacons are skipped. Each remaining center is tried in order: a range check
// against the type's beacon range, then the owner's total beacon count
// against the type's limit. The first center passing both wins.
//
// beaconCount is the owner's total beacon count, not the per-parent count;
// see the repository design notes for the partitioning decision.
func AuthorizeBeacon(centers []Building, types TypeLookup, candidate geo.Coordinate, beaconCount int) BeaconDecision {
	limitHit := false
	for _, center := range centers {
		bt, ok := types(center.TypeCode)
		if !ok || bt.MaxBeacons <= 0 {
			continue
		}
		if geo.DistanceKm(center.Position, candidate) > bt.BeaconRangeKm {
			continue
		}
		if beaconCount >= bt.MaxBeacons {
			limitHit = true
			continue
		}
		return BeaconDecision{Authorized: true, Parent: center}
	}
	reason := DenyNoCenterInRange
	if limitHit {
		reason = DenyBeaconLimit
	}
	return BeaconDecision{Reason: reason}
}
