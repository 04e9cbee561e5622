package zone

import (
	"fmt"
	"sort"
	"strings"
)

// Provider supplies zone rules by id. The tzif package and the Registry both
// implement it.
type Provider interface {
	// Rules returns the rules of the named zone or an error if the id is
	// unknown.
	Rules(id string) (Rules, error)
}

// Registry resolves zone ids to rules. Besides registered ids it understands
// the fixed-offset forms "Z", "UT", "UTC", "GMT", those prefixes followed by
// an offset ("UTC+01:00") and a bare offset ("+01:00"), as well as a
// "#version" suffix on registered ids ("Europe/Paris#2024a").
//
// A Registry is populated once and read-only afterwards; lookups are safe for
// concurrent use.
type Registry struct {
	rules map[string]Rules
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rules)}
}

// Register adds the rules under the given id, replacing any previous
// registration of that id.
func (g *Registry) Register(id string, rules Rules) error {
	if id == "" {
		return fmt.Errorf("register: empty zone id")
	}
	if rules == nil {
		return fmt.Errorf("register %q: nil rules", id)
	}
	g.rules[id] = rules
	return nil
}

// IDs returns the registered zone ids in lexical order.
func (g *Registry) IDs() []string {
	ids := make([]string, 0, len(g.rules))
	for id := range g.rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Rules looks up the rules for the given id.
func (g *Registry) Rules(id string) (Rules, error) {
	if id == "" {
		return nil, fmt.Errorf("lookup: empty zone id")
	}
	if r, ok := g.rules[id]; ok {
		return r, nil
	}
	if base, _, ok := strings.Cut(id, "#"); ok {
		if r, ok := g.rules[base]; ok {
			return r, nil
		}
	}
	if r, ok := fixedRulesForID(id); ok {
		return r, nil
	}
	return nil, fmt.Errorf("lookup: unknown zone id %q", id)
}

// fixedRulesForID recognizes the fixed-offset zone id forms.
func fixedRulesForID(id string) (Rules, bool) {
	if id == "Z" || id == "UT" || id == "UTC" || id == "GMT" {
		return NewFixedRules(UTC), true
	}
	rest := id
	for _, prefix := range []string{"UTC", "UT", "GMT"} {
		if strings.HasPrefix(id, prefix) {
			rest = id[len(prefix):]
			break
		}
	}
	if rest == "" {
		return nil, false
	}
	off, err := ParseOffset(rest)
	if err != nil {
		return nil, false
	}
	return NewFixedRules(off), true
}
