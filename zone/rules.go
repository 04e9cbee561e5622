package zone

import (
	"fmt"
	"sort"

	"github.com/ngrash/go-chrono/civil"
	"github.com/ngrash/go-chrono/internal/daycount"
)

// Rules is the offset lookup of a single time zone. Instants always map to
// exactly one offset; local date-times may fall into a gap or an overlap and
// are classified by OffsetInfoAt.
//
// Implementations are immutable once constructed and safe for concurrent use.
type Rules interface {
	// OffsetAt returns the wall offset in force at the given Unix instant.
	OffsetAt(instant int64) Offset
	// StandardOffsetAt returns the standard offset, excluding daylight
	// saving, at the given Unix instant.
	StandardOffsetAt(instant int64) Offset
	// OffsetInfoAt classifies the given local date-time.
	OffsetInfoAt(dt civil.DateTime) OffsetInfo
	// Transitions returns the recorded transitions in instant order.
	Transitions() []Transition
	// TransitionRules returns the recurring rules that extend the
	// transition table indefinitely into the future.
	TransitionRules() []TransitionRule
	// IsFixed reports whether the zone has a single constant offset.
	IsFixed() bool
}

// FixedRules is a Rules implementation with one constant offset and no
// transitions.
type FixedRules struct {
	offset Offset
}

// NewFixedRules returns the rules of a fixed-offset zone.
func NewFixedRules(offset Offset) FixedRules {
	return FixedRules{offset: offset}
}

// OffsetAt returns the fixed offset.
func (r FixedRules) OffsetAt(int64) Offset { return r.offset }

// StandardOffsetAt returns the fixed offset.
func (r FixedRules) StandardOffsetAt(int64) Offset { return r.offset }

// OffsetInfoAt classifies every local date-time as Normal.
func (r FixedRules) OffsetInfoAt(dt civil.DateTime) OffsetInfo {
	return normalInfo(dt, r.offset)
}

// Transitions returns no transitions.
func (r FixedRules) Transitions() []Transition { return nil }

// TransitionRules returns no rules.
func (r FixedRules) TransitionRules() []TransitionRule { return nil }

// IsFixed reports true.
func (r FixedRules) IsFixed() bool { return true }

// StandardRules is a Rules implementation backed by a table of recorded
// transitions, an optional table of standard-offset changes and optional
// recurring rules for years beyond the last recorded transition.
type StandardRules struct {
	baseStandard        Offset
	standardTransitions []Transition
	transitions         []Transition
	lastRules           []TransitionRule
}

// NewStandardRules builds rules from a base standard offset, the history of
// standard-offset changes, the history of wall-offset transitions and the
// recurring rules applying after the last recorded transition. Transition
// slices must be ordered by instant and each transition's offset-before must
// equal its predecessor's offset-after. Recurring rules must be listed in
// the order they occur within a year.
func NewStandardRules(baseStandard Offset, standardTransitions, transitions []Transition, lastRules []TransitionRule) (*StandardRules, error) {
	if err := validateChain("standard transition", standardTransitions, baseStandard); err != nil {
		return nil, err
	}
	baseWall := baseStandard
	if len(transitions) > 0 {
		baseWall = transitions[0].before
	}
	if err := validateChain("transition", transitions, baseWall); err != nil {
		return nil, err
	}
	return &StandardRules{
		baseStandard:        baseStandard,
		standardTransitions: standardTransitions,
		transitions:         transitions,
		lastRules:           lastRules,
	}, nil
}

func validateChain(what string, ts []Transition, base Offset) error {
	prev := base
	var prevAt int64
	for i, t := range ts {
		if i > 0 && t.at <= prevAt {
			return fmt.Errorf("%s %d at %d is not after its predecessor at %d", what, i, t.at, prevAt)
		}
		if t.before != prev {
			return fmt.Errorf("%s %d offset-before %v does not continue from %v", what, i, t.before, prev)
		}
		prev = t.after
		prevAt = t.at
	}
	return nil
}

// baseWallOffset returns the wall offset in force before any transition.
func (r *StandardRules) baseWallOffset() Offset {
	if len(r.transitions) > 0 {
		return r.transitions[0].before
	}
	if len(r.lastRules) > 0 {
		return r.lastRules[0].Before
	}
	return r.baseStandard
}

// lastWallOffset returns the wall offset after the final recorded transition.
func (r *StandardRules) lastWallOffset() Offset {
	if len(r.transitions) > 0 {
		return r.transitions[len(r.transitions)-1].after
	}
	return r.baseWallOffset()
}

// OffsetAt returns the wall offset at the given instant.
func (r *StandardRules) OffsetAt(instant int64) Offset {
	last := len(r.transitions)
	if last == 0 || instant >= r.transitions[last-1].at {
		if len(r.lastRules) > 0 {
			off := r.lastWallOffset()
			for _, t := range r.ruleTransitionsAround(yearOfInstant(instant, off)) {
				// Recurring rules only extend the table beyond its end.
				if last > 0 && t.at <= r.transitions[last-1].at {
					continue
				}
				if instant >= t.at {
					off = t.after
				}
			}
			return off
		}
		return r.lastWallOffset()
	}
	idx := sort.Search(last, func(i int) bool { return r.transitions[i].at > instant })
	if idx == 0 {
		return r.baseWallOffset()
	}
	return r.transitions[idx-1].after
}

// StandardOffsetAt returns the standard offset at the given instant.
func (r *StandardRules) StandardOffsetAt(instant int64) Offset {
	idx := sort.Search(len(r.standardTransitions), func(i int) bool {
		return r.standardTransitions[i].at > instant
	})
	if idx == 0 {
		return r.baseStandard
	}
	return r.standardTransitions[idx-1].after
}

// OffsetInfoAt classifies the given local date-time by walking the
// transitions whose discontinuity windows could contain it.
func (r *StandardRules) OffsetInfoAt(dt civil.DateTime) OffsetInfo {
	current := r.baseWallOffset()
	for _, t := range r.relevantTransitions(dt.Year()) {
		lb, la := t.LocalBefore(), t.LocalAfter()
		if t.IsGap() {
			if dt.Before(lb) {
				return normalInfo(dt, current)
			}
			if dt.Before(la) {
				return transitionInfo(dt, t)
			}
		} else {
			if dt.Before(la) {
				return normalInfo(dt, current)
			}
			if dt.Before(lb) {
				return transitionInfo(dt, t)
			}
		}
		current = t.after
	}
	return normalInfo(dt, current)
}

// relevantTransitions returns the recorded transitions followed by the
// rule-generated transitions for the years surrounding the given year.
func (r *StandardRules) relevantTransitions(year int) []Transition {
	ts := r.transitions
	if len(r.lastRules) == 0 {
		return ts
	}
	all := make([]Transition, len(ts))
	copy(all, ts)
	var lastAt int64
	if len(ts) > 0 {
		lastAt = ts[len(ts)-1].at
	}
	for _, t := range r.ruleTransitionsAround(year) {
		// Recurring rules only extend the table beyond its end.
		if len(ts) > 0 && t.at <= lastAt {
			continue
		}
		all = append(all, t)
	}
	return all
}

// ruleTransitionsAround materializes the recurring rules for the given year
// and its neighbors, in instant order.
func (r *StandardRules) ruleTransitionsAround(year int) []Transition {
	var ts []Transition
	for y := year - 1; y <= year+1; y++ {
		for _, rule := range r.lastRules {
			ts = append(ts, rule.TransitionForYear(y))
		}
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].at < ts[j].at })
	return ts
}

// Transitions returns a copy of the recorded transitions.
func (r *StandardRules) Transitions() []Transition {
	ts := make([]Transition, len(r.transitions))
	copy(ts, r.transitions)
	return ts
}

// TransitionRules returns a copy of the recurring rules.
func (r *StandardRules) TransitionRules() []TransitionRule {
	rs := make([]TransitionRule, len(r.lastRules))
	copy(rs, r.lastRules)
	return rs
}

// IsFixed reports whether the rules never change the offset.
func (r *StandardRules) IsFixed() bool {
	return len(r.transitions) == 0 && len(r.lastRules) == 0 && len(r.standardTransitions) == 0
}

// yearOfInstant returns the calendar year the instant falls in at the given
// offset.
func yearOfInstant(instant int64, offset Offset) int {
	epochDay := daycount.FloorDiv(instant+int64(offset.TotalSeconds()), int64(civil.SecondsPerDay))
	y, _, _ := daycount.FromEpochDay(epochDay)
	return y
}
