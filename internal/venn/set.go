// Package venn computes the overlap regions of named identifier sets and
// assigns the fixed diagram geometry used to render them. All operations
// are pure: inputs are snapshotted at construction and nothing in this
// package holds state between calls.
package venn

import (
	"sort"
	"strings"
)

// NamedSet is a labeled, deduplicated collection of identifiers. When built
// case-insensitively the fold key is the upper-cased identifier and the
// first-seen spelling is kept for display. Immutable after construction.
type NamedSet struct {
	label         string
	display       map[string]string
	caseSensitive bool
}

// NewNamedSet builds a NamedSet from raw cell values. Values are trimmed,
// blanks dropped, and duplicates collapsed onto their first occurrence.
func NewNamedSet(label string, identifiers []string, caseSensitive bool) NamedSet {
	set := NamedSet{
		label:         strings.TrimSpace(label),
		display:       make(map[string]string, len(identifiers)),
		caseSensitive: caseSensitive,
	}

	for _, id := range identifiers {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		key := set.foldKey(id)
		if _, seen := set.display[key]; !seen {
			set.display[key] = id
		}
	}

	return set
}

// Label returns the set's display label
func (ns NamedSet) Label() string {
	return ns.label
}

// Len returns the number of distinct identifiers
func (ns NamedSet) Len() int {
	return len(ns.display)
}

// Contains reports whether the identifier belongs to the set
func (ns NamedSet) Contains(identifier string) bool {
	_, ok := ns.display[ns.foldKey(strings.TrimSpace(identifier))]
	return ok
}

// Identifiers returns the distinct identifiers in sorted display form
func (ns NamedSet) Identifiers() []string {
	ids := make([]string, 0, len(ns.display))
	for _, display := range ns.display {
		ids = append(ids, display)
	}
	sort.Strings(ids)
	return ids
}

func (ns NamedSet) foldKey(identifier string) string {
	if ns.caseSensitive {
		return identifier
	}
	return strings.ToUpper(identifier)
}

// keys returns the fold keys of all members
func (ns NamedSet) keys() map[string]struct{} {
	keys := make(map[string]struct{}, len(ns.display))
	for key := range ns.display {
		keys[key] = struct{}{}
	}
	return keys
}
