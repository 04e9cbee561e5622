package zone

import (
	"errors"
	"fmt"

	"github.com/ngrash/go-chrono/civil"
)

// Sentinel causes of a failed local-to-offset resolution.
var (
	// ErrGap is reported when a local date-time falls into a gap and the
	// policy refuses to adjust it.
	ErrGap = errors.New("local date-time falls into a gap")
	// ErrOverlap is reported when a local date-time falls into an overlap
	// and the policy refuses to pick a side.
	ErrOverlap = errors.New("local date-time falls into an overlap")
)

// ConversionError reports that a local date-time could not be resolved to an
// offset under a Strict policy. It wraps ErrGap or ErrOverlap.
type ConversionError struct {
	Local civil.DateTime
	Cause error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot resolve %v: %v", e.Local, e.Cause)
}

func (e *ConversionError) Unwrap() error { return e.Cause }

// Policy decides how a local date-time that falls into a gap or overlap is
// mapped onto the zone's timeline.
type Policy int

const (
	// PostTransition resolves a gap by advancing the local time by the gap
	// duration and an overlap to the offset after the transition.
	PostTransition Policy = iota
	// PreTransition resolves a gap to the requested local time at the
	// offset before the transition and an overlap to that same offset.
	PreTransition
	// RetainOffset keeps a previously valid offset across an overlap when
	// it is still one of the two candidates, falling back to
	// PostTransition otherwise.
	RetainOffset
	// NextValid resolves a gap to the first valid local time after it and
	// an overlap to the offset after the transition.
	NextValid
	// Strict rejects gaps and overlaps with a ConversionError.
	Strict
)

func (p Policy) String() string {
	switch p {
	case PostTransition:
		return "PostTransition"
	case PreTransition:
		return "PreTransition"
	case RetainOffset:
		return "RetainOffset"
	case NextValid:
		return "NextValid"
	case Strict:
		return "Strict"
	default:
		return "<UNDEFINED>"
	}
}

// Resolve maps a local date-time onto the zone's timeline, returning the
// possibly adjusted local date-time and the offset it is valid at. For local
// date-times the rules classify as Normal the policy is irrelevant and the
// input is returned with its single offset.
//
// prior is the offset the caller held before the operation that produced dt,
// if any. Only RetainOffset consults it.
func Resolve(dt civil.DateTime, rules Rules, p Policy, prior *Offset) (civil.DateTime, Offset, error) {
	if rules == nil {
		return civil.DateTime{}, Offset{}, errors.New("resolve: nil rules")
	}
	info := rules.OffsetInfoAt(dt)
	switch info.Kind() {
	case Normal:
		off, _ := info.Offset()
		return dt, off, nil
	case Gap:
		return resolveGap(dt, info, p)
	default:
		return resolveOverlap(dt, info, p, prior)
	}
}

func resolveGap(dt civil.DateTime, info OffsetInfo, p Policy) (civil.DateTime, Offset, error) {
	t, _ := info.Transition()
	switch p {
	case Strict:
		return civil.DateTime{}, Offset{}, &ConversionError{Local: dt, Cause: ErrGap}
	case PreTransition:
		// The requested local time never occurs. Keeping it at the
		// pre-jump offset pins the result just before the transition.
		return dt, t.OffsetBefore(), nil
	case NextValid:
		return t.LocalAfter(), t.OffsetAfter(), nil
	default: // PostTransition, RetainOffset
		shifted, err := dt.PlusSeconds(int64(t.Duration()))
		if err != nil {
			return civil.DateTime{}, Offset{}, fmt.Errorf("resolve %v: %w", dt, err)
		}
		return shifted, t.OffsetAfter(), nil
	}
}

func resolveOverlap(dt civil.DateTime, info OffsetInfo, p Policy, prior *Offset) (civil.DateTime, Offset, error) {
	t, _ := info.Transition()
	switch p {
	case Strict:
		return civil.DateTime{}, Offset{}, &ConversionError{Local: dt, Cause: ErrOverlap}
	case PreTransition:
		return dt, t.OffsetBefore(), nil
	case RetainOffset:
		if prior != nil && t.IsValidOffset(*prior) {
			return dt, *prior, nil
		}
		return dt, t.OffsetAfter(), nil
	default: // PostTransition, NextValid
		return dt, t.OffsetAfter(), nil
	}
}
