package tzif

import (
	"fmt"
	"io"

	"github.com/ngrash/go-chrono/zone"
)

// Rules converts the decoded data into zone rules: the transition table, the
// standard-offset history derived from the non-DST types and, if the footer
// carries a TZ string with daylight saving rules, the recurring rules for
// years beyond the last transition.
func (d Data) Rules() (*zone.StandardRules, error) {
	if len(d.Types) == 0 {
		return nil, fmt.Errorf("tzif rules: no local time types")
	}

	initial := d.initialType()
	base, err := zone.OffsetOfSeconds(int(initial.OffsetSeconds))
	if err != nil {
		return nil, fmt.Errorf("tzif rules: initial type: %w", err)
	}

	var (
		transitions         []zone.Transition
		standardTransitions []zone.Transition
		wall                = base
		standard            = base
	)
	for i, at := range d.TransitionTimes {
		lt := d.Types[d.TransitionTypes[i]]
		next, err := zone.OffsetOfSeconds(int(lt.OffsetSeconds))
		if err != nil {
			return nil, fmt.Errorf("tzif rules: transition %d: %w", i, err)
		}
		// Designation-only changes do not move the clock.
		if next != wall {
			transitions = append(transitions, zone.NewTransition(at, wall, next))
			wall = next
		}
		if !lt.DST && next != standard {
			standardTransitions = append(standardTransitions, zone.NewTransition(at, standard, next))
			standard = next
		}
	}

	lastRules, err := ParseTZ(d.TZString)
	if err != nil {
		return nil, fmt.Errorf("tzif rules: %w", err)
	}

	return zone.NewStandardRules(base, standardTransitions, transitions, lastRules)
}

// initialType returns the local time type in force before the first
// transition: the first non-DST type, or the first type if all are DST.
func (d Data) initialType() LocalTimeType {
	for _, lt := range d.Types {
		if !lt.DST {
			return lt
		}
	}
	return d.Types[0]
}

// DecodeRules decodes a TZif stream and converts it into zone rules.
func DecodeRules(r io.Reader) (*zone.StandardRules, error) {
	d, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return d.Rules()
}
