package chrono

import (
	"fmt"
	"strings"

	"github.com/ngrash/go-chrono/civil"
	"github.com/ngrash/go-chrono/zone"
)

// ParseOffsetDateTime parses the forms produced by OffsetDateTime.String,
// for example "2008-06-30T11:30:59.123+01:00" or "2008-06-30T11:30Z".
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	dtPart, offPart, err := splitOffset(s)
	if err != nil {
		return OffsetDateTime{}, err
	}
	dt, err := civil.ParseDateTime(dtPart)
	if err != nil {
		return OffsetDateTime{}, fmt.Errorf("parse offset date-time %q: %w", s, err)
	}
	off, err := zone.ParseOffset(offPart)
	if err != nil {
		return OffsetDateTime{}, fmt.Errorf("parse offset date-time %q: %w", s, err)
	}
	return OffsetDateTime{dt: dt, offset: off}, nil
}

// ParseZonedDateTime parses the canonical zoned form
// "<offset-date-time>[<zone-id>]", looking the zone id up in the provider.
// The parsed offset disambiguates an overlap; if it is not valid for the
// local date-time the zone's rules win and the value is re-resolved.
func ParseZonedDateTime(s string, provider zone.Provider) (ZonedDateTime, error) {
	open := strings.LastIndexByte(s, '[')
	if open < 0 || !strings.HasSuffix(s, "]") {
		return ZonedDateTime{}, fmt.Errorf("parse zoned date-time %q: missing [zone-id] suffix", s)
	}
	id := s[open+1 : len(s)-1]
	odt, err := ParseOffsetDateTime(s[:open])
	if err != nil {
		return ZonedDateTime{}, fmt.Errorf("parse zoned date-time %q: %w", s, err)
	}
	z, err := ZoneOf(id, provider)
	if err != nil {
		return ZonedDateTime{}, fmt.Errorf("parse zoned date-time %q: %w", s, err)
	}
	off := odt.Offset()
	local, resolved, err := zone.Resolve(odt.DateTime(), z.Rules(), zone.RetainOffset, &off)
	if err != nil {
		return ZonedDateTime{}, fmt.Errorf("parse zoned date-time %q: %w", s, err)
	}
	return ZonedDateTime{dt: local, offset: resolved, zone: z}, nil
}

// splitOffset divides an offset date-time text into its local and offset
// parts. The offset begins at the first sign or 'Z' after the date-time
// separator.
func splitOffset(s string) (string, string, error) {
	ti := strings.IndexByte(s, 'T')
	if ti < 0 {
		return "", "", fmt.Errorf("parse offset date-time %q: missing 'T'", s)
	}
	for i := ti + 1; i < len(s); i++ {
		switch s[i] {
		case '+', '-', 'Z', 'z':
			return s[:i], s[i:], nil
		}
	}
	return "", "", fmt.Errorf("parse offset date-time %q: missing offset", s)
}
