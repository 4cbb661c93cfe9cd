package filter

import "github.com/MKhiriev/accbox/models"

// Counts are the sidebar badges. They are computed over the unfiltered
// account set so a count never depends on the active filters.
type Counts struct {
	Total     int
	Favorites int
	NoCombo   int
	Recent    int
	Types     map[int64]int
	Values    map[models.ValueID]int
	NoGroup   map[int64]int
}

// Count tallies accounts for every type, value, group and view.
func (m *Matcher) Count(accounts []models.Account) Counts {
	c := Counts{
		Total:   len(accounts),
		Types:   make(map[int64]int),
		Values:  make(map[models.ValueID]int),
		NoGroup: make(map[int64]int),
	}
	groups := m.catalog.Groups()

	for _, a := range accounts {
		c.Types[a.TypeID]++
		if a.IsFavorite {
			c.Favorites++
		}
		if a.HasNoCombos() {
			c.NoCombo++
		}
		if m.recent(a) {
			c.Recent++
		}

		seen := make(map[models.ValueID]struct{})
		for _, cb := range a.Combos {
			for _, id := range cb {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				c.Values[id]++
			}
		}
		for _, g := range groups {
			if m.catalog.LacksGroup(a, g.ID) {
				c.NoGroup[g.ID]++
			}
		}
	}
	return c
}

// Of returns the count shown next to k.
func (c Counts) Of(k Key) int {
	switch k.Kind {
	case KindType:
		return c.Types[k.ID]
	case KindValue:
		return c.Values[models.ValueID(k.ID)]
	case KindNoGroup:
		return c.NoGroup[k.ID]
	case KindView:
		switch View(k.ID) {
		case ViewFavorites:
			return c.Favorites
		case ViewNoCombo:
			return c.NoCombo
		case ViewRecent:
			return c.Recent
		}
	}
	return 0
}
