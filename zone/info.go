package zone

import (
	"fmt"

	"github.com/ngrash/go-chrono/civil"
)

// InfoKind classifies how a local date-time maps onto a zone's timeline.
type InfoKind int

const (
	// Normal means the local date-time occurs exactly once.
	Normal InfoKind = iota
	// Gap means the local date-time never occurs because clocks jumped
	// forward past it.
	Gap
	// Overlap means the local date-time occurs twice because clocks fell
	// back across it.
	Overlap
)

func (k InfoKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Gap:
		return "Gap"
	case Overlap:
		return "Overlap"
	default:
		return "<UNDEFINED>"
	}
}

// OffsetInfo is the result of classifying a local date-time against a zone's
// rules. A Normal info carries the single valid offset; a Gap or Overlap
// info carries the transition that produced the discontinuity.
type OffsetInfo struct {
	kind       InfoKind
	local      civil.DateTime
	offset     Offset
	transition Transition
}

func normalInfo(local civil.DateTime, offset Offset) OffsetInfo {
	return OffsetInfo{kind: Normal, local: local, offset: offset}
}

func transitionInfo(local civil.DateTime, t Transition) OffsetInfo {
	kind := Overlap
	if t.IsGap() {
		kind = Gap
	}
	return OffsetInfo{kind: kind, local: local, transition: t}
}

// Kind returns the classification.
func (i OffsetInfo) Kind() InfoKind { return i.kind }

// Local returns the local date-time that was classified.
func (i OffsetInfo) Local() civil.DateTime { return i.local }

// Offset returns the single valid offset of a Normal info. For Gap and
// Overlap infos it returns false; use Transition instead.
func (i OffsetInfo) Offset() (Offset, bool) {
	if i.kind != Normal {
		return Offset{}, false
	}
	return i.offset, true
}

// Transition returns the discontinuity of a Gap or Overlap info and false
// for Normal infos.
func (i OffsetInfo) Transition() (Transition, bool) {
	if i.kind == Normal {
		return Transition{}, false
	}
	return i.transition, true
}

// OffsetBefore returns the offset in force before the local date-time. For a
// Normal info this is the single valid offset.
func (i OffsetInfo) OffsetBefore() Offset {
	if i.kind == Normal {
		return i.offset
	}
	return i.transition.OffsetBefore()
}

// OffsetAfter returns the offset in force after the local date-time. For a
// Normal info this is the single valid offset.
func (i OffsetInfo) OffsetAfter() Offset {
	if i.kind == Normal {
		return i.offset
	}
	return i.transition.OffsetAfter()
}

// IsValidOffset reports whether the given offset is one a zone would accept
// for the classified local date-time: the single offset for Normal, either
// surrounding offset for Overlap, and no offset at all for Gap.
func (i OffsetInfo) IsValidOffset(o Offset) bool {
	if i.kind == Normal {
		return o == i.offset
	}
	return i.transition.IsValidOffset(o)
}

func (i OffsetInfo) String() string {
	switch i.kind {
	case Normal:
		return fmt.Sprintf("%v at offset %v", i.local, i.offset)
	case Gap:
		return fmt.Sprintf("%v in gap %v to %v", i.local, i.transition.before, i.transition.after)
	default:
		return fmt.Sprintf("%v in overlap %v to %v", i.local, i.transition.before, i.transition.after)
	}
}
