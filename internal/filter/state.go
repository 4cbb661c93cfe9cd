// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package filter holds the account list view state: tri-state filters,
// search text and sort order. State transitions go through [Apply], which
// never mutates its input, so the whole view can be tested without a UI.
package filter

import (
	"cmp"
	"maps"
	"slices"

	"github.com/MKhiriev/accbox/models"
)

// Kind is the dimension a filter key belongs to.
type Kind int

const (
	// KindType filters by account type.
	KindType Kind = iota + 1
	// KindValue filters by property value membership.
	KindValue
	// KindNoGroup matches accounts without any value of a property group.
	KindNoGroup
	// KindView is a named shortcut such as favorites.
	KindView
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindValue:
		return "value"
	case KindNoGroup:
		return "nogroup"
	case KindView:
		return "view"
	default:
		return "unknown"
	}
}

// View identifies a named shortcut.
type View int64

const (
	ViewFavorites View = iota + 1
	ViewNoCombo
	ViewRecent
)

func (v View) String() string {
	switch v {
	case ViewFavorites:
		return "favorites"
	case ViewNoCombo:
		return "nocombo"
	case ViewRecent:
		return "recent"
	default:
		return "unknown"
	}
}

// Key identifies one filterable item.
type Key struct {
	Kind Kind
	ID   int64
}

// TypeKey is the key of account type id.
func TypeKey(id int64) Key { return Key{Kind: KindType, ID: id} }

// ValueKey is the key of property value id.
func ValueKey(id models.ValueID) Key { return Key{Kind: KindValue, ID: int64(id)} }

// NoGroupKey is the key of the "no property in group" filter.
func NoGroupKey(groupID int64) Key { return Key{Kind: KindNoGroup, ID: groupID} }

// ViewKey is the key of a named shortcut.
func ViewKey(v View) Key { return Key{Kind: KindView, ID: int64(v)} }

// Mode is the tri-state value of a key.
type Mode int

const (
	Unset Mode = iota
	Included
	Excluded
)

func (m Mode) String() string {
	switch m {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return "unset"
	}
}

// next is the primary activation cycle.
func (m Mode) next() Mode {
	switch m {
	case Unset:
		return Included
	case Included:
		return Excluded
	default:
		return Unset
	}
}

// SortField selects the list order.
type SortField int

const (
	SortRecent SortField = iota
	SortName
	SortCreated
)

func (f SortField) String() string {
	switch f {
	case SortName:
		return "name"
	case SortCreated:
		return "created"
	default:
		return "recent"
	}
}

// State is the complete list view state. The zero value has no filters
// and sorts by recent use, newest first.
type State struct {
	filters map[Key]Mode
	search  string
	sort    SortField
	asc     bool
}

// NewState returns an empty state.
func NewState() State {
	return State{}
}

// Mode returns the mode of k.
func (s State) Mode(k Key) Mode {
	return s.filters[k]
}

// Active returns the set keys ordered by kind then id.
func (s State) Active() []Key {
	keys := slices.Collect(maps.Keys(s.filters))
	slices.SortFunc(keys, func(a, b Key) int {
		return cmp.Or(cmp.Compare(a.Kind, b.Kind), cmp.Compare(a.ID, b.ID))
	})
	return keys
}

// HasFilters reports whether any key is set.
func (s State) HasFilters() bool {
	return len(s.filters) > 0
}

// Search returns the raw search text.
func (s State) Search() string {
	return s.search
}

// Sort returns the sort field and whether the order is ascending.
func (s State) Sort() (SortField, bool) {
	return s.sort, s.asc
}

func (s State) withFilters() State {
	s.filters = maps.Clone(s.filters)
	if s.filters == nil {
		s.filters = make(map[Key]Mode)
	}
	return s
}

func (s State) set(k Key, m Mode) State {
	s = s.withFilters()
	if m == Unset {
		delete(s.filters, k)
	} else {
		s.filters[k] = m
	}
	return s
}
