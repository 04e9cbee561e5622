// Package tzif reads the TZif binary format defined by RFC 8536 and turns it
// into zone rules.
// https://datatracker.ietf.org/doc/html/rfc8536
package tzif

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// NOTE: All multi-octet integer values MUST be stored in network octet
// order format (high-order octet first, otherwise known as big-endian),
// with all bits significant.  Signed integer values MUST be represented
// using two's complement.
var order = binary.BigEndian

// Version identifies the version of a TZif file. In V1, time values are
// 32 bit (four octets) and in V2 upwards time values are 64 bit (eight
// octets). V2+ files carry both a V1 and a V2 data block; Decode reads the
// V2 block and skips the V1 block.
type Version byte

const (
	// V1 represents a version 1 TZif file. It contains only the version 1
	// header and data block and no footer.
	V1 Version = 0x00
	// V2 represents a version 2 TZif file. The TZ string in the footer,
	// if nonempty, MUST strictly adhere to the requirements for the TZ
	// environment variable as defined in Section 8.3 of the "Base
	// Definitions" volume of [POSIX].
	V2 Version = 0x32
	// V3 represents a version 3 TZif file. Its TZ string MAY use the
	// extensions described in Section 3.3.1 of RFC8536.
	V3 Version = 0x33
	// V4 represents a version 4 TZif file, specified in the tzfile(5) man
	// page rather than RFC8536. The differences to V3 concern only leap
	// second records, which this package skips.
	V4 Version = 0x34
)

func (v Version) String() string {
	switch v {
	case V1:
		return "V1 (0x00)"
	case V2:
		return "V2 (0x32)"
	case V3:
		return "V3 (0x33)"
	case V4:
		return "V4 (0x34)"
	default:
		return fmt.Sprintf("<undefined version (%d)>", v)
	}
}

// Magic is the four-octet ASCII sequence "TZif" (0x54 0x5A 0x69 0x66),
// which identifies the file as utilizing the Time Zone Information Format.
var Magic = [4]byte{'T', 'Z', 'i', 'f'}

// LocalTimeType is one local time type record of the data block, with its
// designation string resolved.
type LocalTimeType struct {
	// OffsetSeconds is the number of seconds to be added to UT in order
	// to determine local time.
	OffsetSeconds int32
	// DST indicates whether this type of time is daylight saving time.
	DST bool
	// Designation is the abbreviation of the type, such as "CET".
	Designation string
}

// Data is the decoded content of a TZif file, reduced to what offset lookup
// needs. Leap second records and standard/wall and UT/local indicators are
// read past but not retained.
type Data struct {
	Version Version

	// TransitionTimes is a series of UNIX time values sorted in strictly
	// ascending order. Each value is used as a transition time at which
	// the rules for computing local time change.
	TransitionTimes []int64

	// TransitionTypes holds, for each transition time, a zero-based index
	// into Types selecting the local time type in effect after the
	// transition.
	TransitionTypes []uint8

	// Types are the local time types of the zone. It is never empty.
	Types []LocalTimeType

	// TZString is the footer rule for computing local time changes after
	// the last transition, in the expanded format of the "TZ" environment
	// variable. Empty for V1 files and for files without footer rule.
	TZString string
}

// header is the fixed-size part of a TZif header following the magic.
type header struct {
	Version  Version
	Reserved [15]byte
	Isutcnt  uint32
	Isstdcnt uint32
	Leapcnt  uint32
	Timecnt  uint32
	Typecnt  uint32
	Charcnt  uint32
}

// v1BlockSize returns the size in octets of the version 1 data block
// described by the header.
func (h header) v1BlockSize() int64 {
	return int64(h.Timecnt)*5 + int64(h.Typecnt)*6 + int64(h.Charcnt) +
		int64(h.Leapcnt)*8 + int64(h.Isstdcnt) + int64(h.Isutcnt)
}

// Decode reads a TZif stream. For V2+ files the version 1 data block is
// skipped and the 64-bit block is decoded.
func Decode(r io.Reader) (Data, error) {
	var d Data
	h, err := readHeader(r)
	if err != nil {
		return d, fmt.Errorf("read v1 header: %w", err)
	}
	d.Version = h.Version

	if d.Version == V1 {
		if err := d.readBlock(r, h, 4); err != nil {
			return d, fmt.Errorf("read v1 data block: %w", err)
		}
		return d, validate(h, d)
	}

	if _, err := io.CopyN(io.Discard, r, h.v1BlockSize()); err != nil {
		return d, fmt.Errorf("skip v1 data block: %w", err)
	}
	h2, err := readHeader(r)
	if err != nil {
		return d, fmt.Errorf("read v2 header: %w", err)
	}
	if h2.Version != h.Version {
		return d, fmt.Errorf("inconsistent version: v1 header = %v, v2 header = %v", h.Version, h2.Version)
	}
	if err := d.readBlock(r, h2, 8); err != nil {
		return d, fmt.Errorf("read v2 data block: %w", err)
	}
	d.TZString, err = readFooter(r)
	if err != nil {
		return d, fmt.Errorf("read footer: %w", err)
	}
	return d, validate(h2, d)
}

func readHeader(r io.Reader) (header, error) {
	var h header
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return h, fmt.Errorf("reading magic: %w", err)
	}
	if !bytes.Equal(magic, Magic[:]) {
		return h, fmt.Errorf("invalid magic: %v", magic)
	}
	err := binary.Read(r, order, &h)
	return h, err
}

// readBlock decodes a data block with the given time value size in octets.
func (d *Data) readBlock(r io.Reader, h header, timeSize int) error {
	if h.Timecnt > 0 {
		d.TransitionTimes = make([]int64, h.Timecnt)
		if timeSize == 4 {
			times := make([]int32, h.Timecnt)
			if err := binary.Read(r, order, &times); err != nil {
				return fmt.Errorf("reading transition times: %w", err)
			}
			for i, t := range times {
				d.TransitionTimes[i] = int64(t)
			}
		} else {
			if err := binary.Read(r, order, &d.TransitionTimes); err != nil {
				return fmt.Errorf("reading transition times: %w", err)
			}
		}
		d.TransitionTypes = make([]uint8, h.Timecnt)
		if err := binary.Read(r, order, &d.TransitionTypes); err != nil {
			return fmt.Errorf("reading transition types: %w", err)
		}
	}

	type record struct {
		Utoff int32
		Dst   bool
		Idx   uint8
	}
	records := make([]record, h.Typecnt)
	for i := range records {
		if err := binary.Read(r, order, &records[i]); err != nil {
			return fmt.Errorf("reading local time type record: %w", err)
		}
	}

	designations := make([]byte, h.Charcnt)
	if _, err := io.ReadFull(r, designations); err != nil {
		return fmt.Errorf("reading time zone designations: %w", err)
	}

	d.Types = make([]LocalTimeType, h.Typecnt)
	for i, rec := range records {
		name, err := designationAt(designations, rec.Idx)
		if err != nil {
			return fmt.Errorf("local time type %d: %w", i, err)
		}
		d.Types[i] = LocalTimeType{
			OffsetSeconds: rec.Utoff,
			DST:           rec.Dst,
			Designation:   name,
		}
	}

	// Leap second records and the standard/wall and UT/local indicators
	// do not affect offset lookup.
	skip := int64(h.Leapcnt)*int64(timeSize+4) + int64(h.Isstdcnt) + int64(h.Isutcnt)
	if _, err := io.CopyN(io.Discard, r, skip); err != nil {
		return fmt.Errorf("skipping leap seconds and indicators: %w", err)
	}
	return nil
}

// designationAt extracts the NUL-terminated designation string starting at
// the given index.
func designationAt(designations []byte, idx uint8) (string, error) {
	if int(idx) >= len(designations) {
		return "", fmt.Errorf("designation index %d out of range [0, %d)", idx, len(designations))
	}
	end := bytes.IndexByte(designations[idx:], 0)
	if end < 0 {
		return "", fmt.Errorf("designation at index %d is not NUL-terminated", idx)
	}
	return string(designations[idx : int(idx)+end]), nil
}

// The footer is structured as follows (the lengths of multi-octet
// fields are shown in parentheses):
//
//	+---+--------------------+---+
//	| NL|  TZ string (0...)  |NL |
//	+---+--------------------+---+
func readFooter(r io.Reader) (string, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("reading newline: %w", err)
	}
	if buf[0] != '\n' {
		return "", fmt.Errorf("expected newline: %v", buf[0])
	}
	var b []byte
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("reading TZ string: %w", err)
		}
		if buf[0] == '\n' {
			return string(b), nil
		}
		b = append(b, buf[0])
	}
}

// validate checks the decoded data against the RFC8536 requirements that
// matter for offset lookup, accumulating all violations.
func validate(h header, d Data) error {
	var errs []error
	if h.Typecnt == 0 {
		errs = append(errs, errors.New("invalid typecnt: must not be zero"))
	}
	if h.Charcnt == 0 {
		errs = append(errs, errors.New("invalid charcnt: must not be zero"))
	}
	if h.Isutcnt != 0 && h.Isutcnt != h.Typecnt {
		errs = append(errs, fmt.Errorf("invalid isutcnt (%d): must be 0 or equal to typecnt (%d)", h.Isutcnt, h.Typecnt))
	}
	if h.Isstdcnt != 0 && h.Isstdcnt != h.Typecnt {
		errs = append(errs, fmt.Errorf("invalid isstdcnt (%d): must be 0 or equal to typecnt (%d)", h.Isstdcnt, h.Typecnt))
	}
	for i, t := range d.TransitionTimes {
		if i > 0 && t <= d.TransitionTimes[i-1] {
			errs = append(errs, fmt.Errorf("transition time %d (%d) is not after its predecessor (%d)", i, t, d.TransitionTimes[i-1]))
		}
	}
	for i, idx := range d.TransitionTypes {
		if int(idx) >= len(d.Types) {
			errs = append(errs, fmt.Errorf("transition type %d: index %d out of range [0, %d)", i, idx, len(d.Types)))
		}
	}
	for i, lt := range d.Types {
		// SHOULD be in the range [-89999, 93599] (i.e., its value SHOULD
		// be more than -25 hours and less than 26 hours).
		if lt.OffsetSeconds <= -90000 || lt.OffsetSeconds >= 93600 {
			errs = append(errs, fmt.Errorf("local time type %d: offset %d out of range (-90000, 93600)", i, lt.OffsetSeconds))
		}
	}
	return errors.Join(errs...)
}
