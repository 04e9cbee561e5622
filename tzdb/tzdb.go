// Package tzdb loads time zone rules from a compiled zone database
// directory, such as the /usr/share/zoneinfo tree installed on most
// Unix systems. Each file in the tree is a TZif-encoded zone keyed by
// its path, for example "Europe/Paris".
//
// Rules are decoded lazily and cached. A DB is safe for concurrent use.
package tzdb

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/ngrash/go-chrono/tzif"
	"github.com/ngrash/go-chrono/zone"
)

// DefaultPaths lists the directories searched by OpenSystem, in order.
var DefaultPaths = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/etc/zoneinfo",
}

// versionFilename is the name of the version file shipped with the
// database, holding a release name such as "2024a".
const versionFilename = "+VERSION"

// DB is a zone database backed by a file system of TZif files. It
// implements the provider interface expected by zone lookups.
type DB struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]zone.Rules
}

// New returns a database reading from the given file system.
func New(fsys fs.FS) *DB {
	return &DB{fsys: fsys, cache: make(map[string]zone.Rules)}
}

// Open returns a database reading from the given directory.
func Open(dir string) (*DB, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("tzdb: %s is not a directory", dir)
	}
	return New(os.DirFS(dir)), nil
}

// OpenSystem returns a database reading from the first of DefaultPaths
// that exists.
func OpenSystem() (*DB, error) {
	for _, dir := range DefaultPaths {
		db, err := Open(dir)
		if err == nil {
			return db, nil
		}
	}
	return nil, fmt.Errorf("tzdb: no zone database found in %v", DefaultPaths)
}

// Rules returns the rules of the zone with the given id, decoding its
// TZif file on first use. A version suffix introduced by '#' is
// ignored.
func (db *DB) Rules(id string) (zone.Rules, error) {
	name, _, _ := strings.Cut(id, "#")
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("tzdb: invalid zone id %q", id)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if r, ok := db.cache[name]; ok {
		return r, nil
	}

	f, err := db.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("tzdb: unknown zone %q: %w", id, err)
	}
	defer f.Close()

	r, err := tzif.DecodeRules(f)
	if err != nil {
		return nil, fmt.Errorf("tzdb: zone %q: %w", id, err)
	}
	db.cache[name] = r
	return r, nil
}

// Version returns the release name of the database, or an empty string
// if the database does not carry a version file.
func (db *DB) Version() string {
	b, err := fs.ReadFile(db.fsys, versionFilename)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// IDs returns the ids of all zones in the database, sorted by path.
// Files that do not start with the TZif magic are skipped, as are the
// posix/ and right/ variant trees some distributions install.
func (db *DB) IDs() ([]string, error) {
	var ids []string
	err := fs.WalkDir(db.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == "posix" || path == "right" {
				return fs.SkipDir
			}
			return nil
		}
		ok, err := db.isTZif(path)
		if err != nil {
			return err
		}
		if ok {
			ids = append(ids, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tzdb: %w", err)
	}
	return ids, nil
}

func (db *DB) isTZif(path string) (bool, error) {
	f, err := db.fsys.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	var magic [4]byte
	if _, err := f.Read(magic[:]); err != nil {
		return false, nil
	}
	return magic == tzif.Magic, nil
}
