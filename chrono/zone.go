// Package chrono combines the civil date-time types with zone offsets and
// rules into offset-aware and zone-aware date-times.
package chrono

import (
	"fmt"

	"github.com/ngrash/go-chrono/zone"
)

// Zone is a time zone identity paired with its rules. The zero value is not
// usable; construct zones with NewZone, ZoneOf or FixedZone.
type Zone struct {
	id    string
	rules zone.Rules
}

// NewZone pairs an id with its rules.
func NewZone(id string, rules zone.Rules) (Zone, error) {
	if id == "" {
		return Zone{}, fmt.Errorf("new zone: empty id")
	}
	if rules == nil {
		return Zone{}, fmt.Errorf("new zone %q: nil rules", id)
	}
	return Zone{id: id, rules: rules}, nil
}

// ZoneOf looks the id up in the provider.
func ZoneOf(id string, provider zone.Provider) (Zone, error) {
	if provider == nil {
		return Zone{}, fmt.Errorf("zone %q: nil provider", id)
	}
	rules, err := provider.Rules(id)
	if err != nil {
		return Zone{}, err
	}
	if rules == nil {
		return Zone{}, fmt.Errorf("zone %q: provider returned nil rules", id)
	}
	return Zone{id: id, rules: rules}, nil
}

// FixedZone returns the zone of a fixed offset, identified by the offset's
// text form.
func FixedZone(offset zone.Offset) Zone {
	return Zone{id: offset.String(), rules: zone.NewFixedRules(offset)}
}

// UTCZone is the fixed zone at offset zero.
var UTCZone = FixedZone(zone.UTC)

// ID returns the zone id.
func (z Zone) ID() string { return z.id }

// Rules returns the zone's rules.
func (z Zone) Rules() zone.Rules { return z.rules }

// IsFixed reports whether the zone has a constant offset.
func (z Zone) IsFixed() bool { return z.rules != nil && z.rules.IsFixed() }

func (z Zone) String() string { return z.id }
