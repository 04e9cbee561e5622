// Package zone provides UTC offsets, per-zone offset transition rules, the
// classification of local date-times as normal, gap or overlap, and the
// resolution policies that turn an ambiguous or nonexistent local date-time
// into a single offset.
package zone

import (
	"fmt"
	"strconv"
	"strings"
)

// Offset bounds. No time zone in recorded history is further than 18 hours
// from UTC.
const (
	maxOffsetSeconds = 18 * 60 * 60
)

// Offset is a fixed offset from UTC, such as +01:00. The zero value is UTC.
// Offsets order by their total seconds, so offsets further west sort first.
type Offset struct {
	totalSeconds int
}

// UTC is the zero offset.
var UTC = Offset{}

// OffsetOfSeconds returns the offset with the given total seconds from UTC.
// The magnitude must not exceed 18 hours.
func OffsetOfSeconds(totalSeconds int) (Offset, error) {
	if totalSeconds < -maxOffsetSeconds || totalSeconds > maxOffsetSeconds {
		return Offset{}, fmt.Errorf("offset %+d seconds exceeds +/-18:00", totalSeconds)
	}
	return Offset{totalSeconds: totalSeconds}, nil
}

// OffsetOf returns the offset built from hour, minute and second components.
// All nonzero components must share one sign.
func OffsetOf(hours, minutes, seconds int) (Offset, error) {
	if !sameSign(hours, minutes, seconds) {
		return Offset{}, fmt.Errorf("offset components %d:%d:%d have mixed signs", hours, minutes, seconds)
	}
	if minutes < -59 || minutes > 59 {
		return Offset{}, fmt.Errorf("offset minutes %d out of range [-59, 59]", minutes)
	}
	if seconds < -59 || seconds > 59 {
		return Offset{}, fmt.Errorf("offset seconds %d out of range [-59, 59]", seconds)
	}
	return OffsetOfSeconds(hours*3600 + minutes*60 + seconds)
}

// MustOffset is like OffsetOf but panics on error. It is intended for
// constants and tests.
func MustOffset(hours, minutes, seconds int) Offset {
	o, err := OffsetOf(hours, minutes, seconds)
	if err != nil {
		panic(err)
	}
	return o
}

func sameSign(vs ...int) bool {
	neg, pos := false, false
	for _, v := range vs {
		if v < 0 {
			neg = true
		}
		if v > 0 {
			pos = true
		}
	}
	return !(neg && pos)
}

// TotalSeconds returns the total offset from UTC in seconds, negative for
// offsets west of Greenwich.
func (o Offset) TotalSeconds() int { return o.totalSeconds }

// Compare orders offsets by total seconds. A more western (more negative)
// offset compares as smaller.
func (o Offset) Compare(p Offset) int {
	switch {
	case o.totalSeconds < p.totalSeconds:
		return -1
	case o.totalSeconds > p.totalSeconds:
		return 1
	default:
		return 0
	}
}

// String returns the ISO form of the offset: "Z" for UTC, otherwise
// "+hh:mm" or "+hh:mm:ss".
func (o Offset) String() string {
	if o.totalSeconds == 0 {
		return "Z"
	}
	total := o.totalSeconds
	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}
	h, m, s := total/3600, total/60%60, total%60
	if s == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, h, m)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// ParseOffset parses the forms produced by Offset.String: "Z", "+hh:mm" and
// "+hh:mm:ss".
func ParseOffset(s string) (Offset, error) {
	if s == "Z" || s == "z" {
		return UTC, nil
	}
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return Offset{}, fmt.Errorf("parse offset %q: expected 'Z' or a sign", s)
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	parts := strings.Split(s[1:], ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Offset{}, fmt.Errorf("parse offset %q: expected hh:mm or hh:mm:ss", s)
	}
	var total int
	for i, p := range parts {
		if len(p) != 2 {
			return Offset{}, fmt.Errorf("parse offset %q: component %q must have 2 digits", s, p)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Offset{}, fmt.Errorf("parse offset %q: component %q invalid", s, p)
		}
		if i > 0 && n > 59 {
			return Offset{}, fmt.Errorf("parse offset %q: component %q out of range", s, p)
		}
		total = total*60 + n
	}
	if len(parts) == 2 {
		total *= 60
	}
	return OffsetOfSeconds(sign * total)
}
