package tzdb_test

import (
	"bytes"
	"encoding/binary"
	"testing"
	"testing/fstest"

	"github.com/ngrash/go-chrono/tzdb"
	"github.com/ngrash/go-chrono/tzif"
	"github.com/ngrash/go-chrono/zone"
)

// fixedV1 encodes a minimal V1 file with a single standard type at the
// given offset and no transitions.
func fixedV1(offsetSeconds int32, designation string) []byte {
	var buf bytes.Buffer
	buf.Write(tzif.Magic[:])
	buf.WriteByte(0)
	buf.Write(make([]byte, 15))
	for _, v := range []uint32{0, 0, 0, 0, 1, uint32(len(designation) + 1)} {
		binary.Write(&buf, binary.BigEndian, v)
	}
	binary.Write(&buf, binary.BigEndian, offsetSeconds)
	buf.Write([]byte{0, 0})
	buf.WriteString(designation + "\x00")
	return buf.Bytes()
}

func testDB() *tzdb.DB {
	return tzdb.New(fstest.MapFS{
		"Europe/Paris":  {Data: fixedV1(3600, "CET")},
		"Etc/UTC":       {Data: fixedV1(0, "UTC")},
		"+VERSION":      {Data: []byte("2024a\n")},
		"zone.tab":      {Data: []byte("# country codes\n")},
		"posix/Etc/UTC": {Data: fixedV1(0, "UTC")},
	})
}

func TestDBRules(t *testing.T) {
	db := testDB()

	r, err := db.Rules("Europe/Paris")
	if err != nil {
		t.Fatalf("Rules: %v", err)
	}
	if got, want := r.OffsetAt(0), zone.MustOffset(1, 0, 0); got != want {
		t.Errorf("OffsetAt(0) = %v, want %v", got, want)
	}

	// Decoded rules are cached and shared.
	again, err := db.Rules("Europe/Paris")
	if err != nil {
		t.Fatalf("Rules: %v", err)
	}
	if again != r {
		t.Error("second lookup returned different rules")
	}

	// A version suffix selects the same zone.
	versioned, err := db.Rules("Europe/Paris#2024a")
	if err != nil {
		t.Fatalf("Rules with version suffix: %v", err)
	}
	if versioned != r {
		t.Error("versioned lookup returned different rules")
	}
}

func TestDBRulesErrors(t *testing.T) {
	db := testDB()
	for _, id := range []string{"Europe/Berlin", "../etc/passwd", "/Etc/UTC", "", "zone.tab"} {
		if _, err := db.Rules(id); err == nil {
			t.Errorf("Rules(%q) succeeded, want error", id)
		}
	}
}

func TestDBVersion(t *testing.T) {
	if got := testDB().Version(); got != "2024a" {
		t.Errorf("Version() = %q, want %q", got, "2024a")
	}
	empty := tzdb.New(fstest.MapFS{})
	if got := empty.Version(); got != "" {
		t.Errorf("Version() = %q, want empty", got)
	}
}

func TestDBIDs(t *testing.T) {
	ids, err := testDB().IDs()
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	want := []string{"Etc/UTC", "Europe/Paris"}
	if len(ids) != len(want) || ids[0] != want[0] || ids[1] != want[1] {
		t.Errorf("IDs() = %v, want %v", ids, want)
	}
}
