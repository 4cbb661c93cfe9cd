// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package combo interprets account combos against the property catalog:
// canonical ordering, equality, badge display, membership predicates and
// batch edits. All functions are pure; inputs are never modified.
package combo

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/accbox/models"
)

// position of a value in the catalog: group index, then index within group.
type position struct {
	group int
	value int
}

func (p position) compare(o position) int {
	if c := cmp.Compare(p.group, o.group); c != 0 {
		return c
	}
	return cmp.Compare(p.value, o.value)
}

type entry struct {
	pos   position
	value models.PropertyValue
	group models.PropertyGroup
}

// Catalog indexes property groups by value identifier. Group and value
// order is taken as given.
type Catalog struct {
	groups      []models.PropertyGroup
	index       map[models.ValueID]entry
	groupValues map[int64][]models.ValueID
}

// NewCatalog builds a Catalog over groups in display order.
func NewCatalog(groups []models.PropertyGroup) *Catalog {
	c := &Catalog{
		groups:      groups,
		index:       make(map[models.ValueID]entry),
		groupValues: make(map[int64][]models.ValueID, len(groups)),
	}
	for gi, g := range groups {
		ids := make([]models.ValueID, 0, len(g.Values))
		for vi, v := range g.Values {
			if _, dup := c.index[v.ID]; !dup {
				c.index[v.ID] = entry{pos: position{group: gi, value: vi}, value: v, group: g}
			}
			ids = append(ids, v.ID)
		}
		c.groupValues[g.ID] = ids
	}
	return c
}

// SortGroups returns a copy of groups ordered by sort order then id, with
// the values of each group ordered the same way.
func SortGroups(groups []models.PropertyGroup) []models.PropertyGroup {
	out := make([]models.PropertyGroup, len(groups))
	for i, g := range groups {
		g.Values = slices.Clone(g.Values)
		slices.SortStableFunc(g.Values, func(a, b models.PropertyValue) int {
			return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), cmp.Compare(a.ID, b.ID))
		})
		out[i] = g
	}
	slices.SortStableFunc(out, func(a, b models.PropertyGroup) int {
		return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Groups returns the groups in catalog order.
func (c *Catalog) Groups() []models.PropertyGroup {
	return c.groups
}

// Value resolves id.
func (c *Catalog) Value(id models.ValueID) (models.PropertyValue, bool) {
	e, ok := c.index[id]
	return e.value, ok
}

// GroupOf returns the group owning id.
func (c *Catalog) GroupOf(id models.ValueID) (models.PropertyGroup, bool) {
	e, ok := c.index[id]
	return e.group, ok
}

// HasGroup reports whether groupID exists.
func (c *Catalog) HasGroup(groupID int64) bool {
	_, ok := c.groupValues[groupID]
	return ok
}

// GroupValues returns the value identifiers of groupID in catalog order.
func (c *Catalog) GroupValues(groupID int64) []models.ValueID {
	return c.groupValues[groupID]
}

// Normalize returns combo sorted by (group index, value index). Unknown
// identifiers go last in their original relative order.
func (c *Catalog) Normalize(combo models.Combo) models.Combo {
	out := combo.Clone()
	slices.SortStableFunc(out, func(a, b models.ValueID) int {
		ea, okA := c.index[a]
		eb, okB := c.index[b]
		switch {
		case okA && okB:
			return ea.pos.compare(eb.pos)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Equal reports whether a and b hold the same identifiers once normalized.
// Raw slice comparison is not a substitute.
func (c *Catalog) Equal(a, b models.Combo) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(c.Normalize(a), c.Normalize(b))
}

// Valid reports whether combo is non-empty and every identifier resolves.
func (c *Catalog) Valid(combo models.Combo) bool {
	if len(combo) == 0 {
		return false
	}
	for _, id := range combo {
		if _, ok := c.index[id]; !ok {
			return false
		}
	}
	return true
}
