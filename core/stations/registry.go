// Package stations canonicalizes raw location codes so that distinct codes
// referring to the same physical stop compare equal. Two trips can only be
// chained when the canonical identity of the first trip's destination matches
// the canonical identity of the second trip's origin.
package stations

import (
	"strings"

	"github.com/transitops/omloop/core/model"
)

// Registry maps station codes and display names to a canonical identity.
// It is built once from the trip set and is read-only afterwards.
type Registry struct {
	codeToCanonical map[string]string
	nameToCanonical map[string]string
	display         map[string]string
}

// NewRegistry returns an empty registry. Unknown codes canonicalize to their
// own lowercased form, so an empty registry is a valid identity mapping.
func NewRegistry() *Registry {
	return &Registry{
		codeToCanonical: make(map[string]string),
		nameToCanonical: make(map[string]string),
		display:         make(map[string]string),
	}
}

// Build constructs a registry from the trip set, registering every origin and
// destination code together with its display name when available.
func Build(trips []model.Trip) *Registry {
	r := NewRegistry()
	for _, t := range trips {
		r.Register(t.Origin, t.OriginName)
		r.Register(t.Destination, t.DestinationName)
	}
	return r
}

// Register records a station code with its display name. Codes sharing a name
// collapse onto the same canonical identity.
func (r *Registry) Register(code, name string) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return
	}
	name = strings.TrimSpace(name)
	canonical := code
	if name != "" {
		canonical = canonicalName(name)
	}
	r.codeToCanonical[code] = canonical
	r.nameToCanonical[canonical] = canonical
	if name != "" {
		if _, ok := r.display[canonical]; !ok {
			r.display[canonical] = name
		}
	}
}

// RegisterName records a bare station name, as used by reserve duties that
// reference stations by name rather than code.
func (r *Registry) RegisterName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	canonical := canonicalName(name)
	r.nameToCanonical[canonical] = canonical
	if _, ok := r.display[canonical]; !ok {
		r.display[canonical] = name
	}
}

// Canonical maps a raw station code to its canonical identity. Codes that
// were never registered fall back to their lowercased, trimmed form.
func (r *Registry) Canonical(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if c, ok := r.codeToCanonical[code]; ok {
		return c
	}
	return code
}

// CanonicalName maps a station display name to its canonical identity.
func (r *Registry) CanonicalName(name string) string {
	key := canonicalName(name)
	if c, ok := r.nameToCanonical[key]; ok {
		return c
	}
	return key
}

// Display returns the display name for a canonical identity, or the identity
// itself when no name was registered.
func (r *Registry) Display(canonical string) string {
	if d, ok := r.display[canonical]; ok {
		return d
	}
	return canonical
}

func canonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
