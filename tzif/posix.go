package tzif

import (
	"fmt"
	"strings"
	"time"

	"github.com/ngrash/go-chrono/internal/daycount"
	"github.com/ngrash/go-chrono/zone"
)

// ParseTZ parses the expanded format of the "TZ" environment variable as it
// appears in a TZif footer, for example "CET-1CEST,M3.5.0,M10.5.0/3", and
// returns the recurring transition rules it describes. An empty string and a
// string without a daylight saving part yield no rules.
//
// POSIX offsets are seconds west of Greenwich, the opposite sign of ISO
// offsets. The V3 extensions (rule times up to 167 hours, negative rule
// times) are accepted.
func ParseTZ(s string) ([]zone.TransitionRule, error) {
	if s == "" {
		return nil, nil
	}
	p := &tzParser{s: s}

	if _, err := p.name(); err != nil {
		return nil, fmt.Errorf("parse TZ %q: standard name: %w", s, err)
	}
	std, err := p.offset()
	if err != nil {
		return nil, fmt.Errorf("parse TZ %q: standard offset: %w", s, err)
	}
	if p.done() {
		// Standard time only.
		return nil, nil
	}

	if _, err := p.name(); err != nil {
		return nil, fmt.Errorf("parse TZ %q: dst name: %w", s, err)
	}
	dst := std + 3600
	if !p.done() && p.peek() != ',' {
		dst, err = p.offset()
		if err != nil {
			return nil, fmt.Errorf("parse TZ %q: dst offset: %w", s, err)
		}
	}
	if p.done() {
		return nil, fmt.Errorf("parse TZ %q: dst without rules", s)
	}

	stdOff, err := zone.OffsetOfSeconds(std)
	if err != nil {
		return nil, fmt.Errorf("parse TZ %q: %w", s, err)
	}
	dstOff, err := zone.OffsetOfSeconds(dst)
	if err != nil {
		return nil, fmt.Errorf("parse TZ %q: %w", s, err)
	}

	if err := p.expect(','); err != nil {
		return nil, fmt.Errorf("parse TZ %q: %w", s, err)
	}
	start, startAt, err := p.rule()
	if err != nil {
		return nil, fmt.Errorf("parse TZ %q: start rule: %w", s, err)
	}
	if err := p.expect(','); err != nil {
		return nil, fmt.Errorf("parse TZ %q: %w", s, err)
	}
	end, endAt, err := p.rule()
	if err != nil {
		return nil, fmt.Errorf("parse TZ %q: end rule: %w", s, err)
	}
	if !p.done() {
		return nil, fmt.Errorf("parse TZ %q: trailing data %q", s, p.rest())
	}

	start.At = startAt
	start.AtForm = zone.WallClock
	start.Standard = stdOff
	start.Before = stdOff
	start.After = dstOff

	end.At = endAt
	end.AtForm = zone.WallClock
	end.Standard = stdOff
	end.Before = dstOff
	end.After = stdOff

	return []zone.TransitionRule{start, end}, nil
}

type tzParser struct {
	s   string
	pos int
}

func (p *tzParser) done() bool { return p.pos >= len(p.s) }

func (p *tzParser) peek() byte { return p.s[p.pos] }

func (p *tzParser) rest() string { return p.s[p.pos:] }

func (p *tzParser) expect(c byte) error {
	if p.done() || p.s[p.pos] != c {
		return fmt.Errorf("expected %q at position %d", c, p.pos)
	}
	p.pos++
	return nil
}

// name consumes a zone designation: either a sequence of at least three
// alphabetic characters or an arbitrary sequence in angle brackets.
func (p *tzParser) name() (string, error) {
	if p.done() {
		return "", fmt.Errorf("missing name at position %d", p.pos)
	}
	if p.peek() == '<' {
		end := strings.IndexByte(p.rest(), '>')
		if end < 0 {
			return "", fmt.Errorf("unterminated quoted name at position %d", p.pos)
		}
		name := p.s[p.pos+1 : p.pos+end]
		p.pos += end + 1
		return name, nil
	}
	start := p.pos
	for !p.done() && isAlpha(p.peek()) {
		p.pos++
	}
	if p.pos-start < 3 {
		return "", fmt.Errorf("name at position %d shorter than three characters", start)
	}
	return p.s[start:p.pos], nil
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// offset consumes a POSIX offset and returns it in ISO orientation, seconds
// east of Greenwich.
func (p *tzParser) offset() (int, error) {
	west, err := p.duration(24 * 3600)
	if err != nil {
		return 0, err
	}
	return -west, nil
}

// duration consumes [+-]hh[:mm[:ss]] and returns seconds. limit bounds the
// hour part.
func (p *tzParser) duration(limit int) (int, error) {
	sign := 1
	if !p.done() && (p.peek() == '+' || p.peek() == '-') {
		if p.peek() == '-' {
			sign = -1
		}
		p.pos++
	}
	h, err := p.number()
	if err != nil {
		return 0, err
	}
	total := h * 3600
	if total > limit {
		return 0, fmt.Errorf("hour %d out of range at position %d", h, p.pos)
	}
	for _, unit := range []int{60, 1} {
		if p.done() || p.peek() != ':' {
			break
		}
		p.pos++
		n, err := p.number()
		if err != nil {
			return 0, err
		}
		if n > 59 {
			return 0, fmt.Errorf("component %d out of range at position %d", n, p.pos)
		}
		total += n * unit
	}
	return sign * total, nil
}

func (p *tzParser) number() (int, error) {
	start := p.pos
	n := 0
	for !p.done() && p.peek() >= '0' && p.peek() <= '9' {
		n = n*10 + int(p.peek()-'0')
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected digits at position %d", start)
	}
	return n, nil
}

// rule consumes a transition date, "Mm.w.d" or "Jn", with an optional
// "/time" suffix, and returns the rule's date selector and the time of day
// in seconds. The time defaults to 02:00 local.
func (p *tzParser) rule() (zone.TransitionRule, int, error) {
	var r zone.TransitionRule
	if p.done() {
		return r, 0, fmt.Errorf("missing rule at position %d", p.pos)
	}
	var err error
	switch p.peek() {
	case 'M':
		p.pos++
		r.Month, r.Day, err = p.monthWeekDay()
	case 'J':
		p.pos++
		r.Month, r.Day, err = p.julianDay()
	default:
		return r, 0, fmt.Errorf("unsupported rule form at position %d", p.pos)
	}
	if err != nil {
		return r, 0, err
	}
	at := 2 * 3600
	if !p.done() && p.peek() == '/' {
		p.pos++
		at, err = p.duration(167 * 3600)
		if err != nil {
			return r, 0, err
		}
	}
	return r, at, nil
}

// monthWeekDay parses "m.w.d": month 1-12, week 1-5 where 5 means the last
// occurrence, weekday 0-6 with 0 being Sunday.
func (p *tzParser) monthWeekDay() (time.Month, zone.Day, error) {
	m, err := p.number()
	if err != nil {
		return 0, zone.Day{}, err
	}
	if m < 1 || m > 12 {
		return 0, zone.Day{}, fmt.Errorf("month %d out of range [1, 12]", m)
	}
	if err := p.expect('.'); err != nil {
		return 0, zone.Day{}, err
	}
	w, err := p.number()
	if err != nil {
		return 0, zone.Day{}, err
	}
	if w < 1 || w > 5 {
		return 0, zone.Day{}, fmt.Errorf("week %d out of range [1, 5]", w)
	}
	if err := p.expect('.'); err != nil {
		return 0, zone.Day{}, err
	}
	d, err := p.number()
	if err != nil {
		return 0, zone.Day{}, err
	}
	if d > 6 {
		return 0, zone.Day{}, fmt.Errorf("weekday %d out of range [0, 6]", d)
	}
	weekday := time.Weekday(d)
	if w == 5 {
		return time.Month(m), zone.NewDayLast(weekday), nil
	}
	return time.Month(m), zone.NewDayAfter((w-1)*7+1, weekday), nil
}

// julianDay parses "n": a day number 1-365 that never counts February 29.
func (p *tzParser) julianDay() (time.Month, zone.Day, error) {
	n, err := p.number()
	if err != nil {
		return 0, zone.Day{}, err
	}
	if n < 1 || n > 365 {
		return 0, zone.Day{}, fmt.Errorf("julian day %d out of range [1, 365]", n)
	}
	// Resolve in a non-leap year so February 29 is never counted.
	for m := time.January; m <= time.December; m++ {
		length := daycount.DaysInMonth(2001, m)
		if n <= length {
			return m, zone.NewDayNum(n), nil
		}
		n -= length
	}
	panic("unreachable")
}
