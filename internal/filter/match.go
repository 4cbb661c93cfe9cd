package filter

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/MKhiriev/accbox/internal/combo"
	"github.com/MKhiriev/accbox/models"
)

// RecentWindow is how far back the recent view looks.
const RecentWindow = 7 * 24 * time.Hour

// Matcher evaluates a [State] against accounts for one catalog snapshot.
// It is not safe for concurrent use.
type Matcher struct {
	catalog *combo.Catalog
	types   map[int64]struct{}
	now     time.Time
	fold    cases.Caser
}

// NewMatcher returns a Matcher for the given catalog and account types.
// now anchors the recent view.
func NewMatcher(catalog *combo.Catalog, types []models.AccountType, now time.Time) *Matcher {
	known := make(map[int64]struct{}, len(types))
	for _, t := range types {
		known[t.ID] = struct{}{}
	}
	return &Matcher{
		catalog: catalog,
		types:   known,
		now:     now,
		fold:    cases.Fold(),
	}
}

// Match reports whether a passes every active filter and the search text.
// A key that references a deleted type, value or group matches nothing.
func (m *Matcher) Match(s State, a models.Account) bool {
	for k, mode := range s.filters {
		if !m.known(k) {
			return false
		}
		hit := m.hit(k, a)
		if mode == Included && !hit || mode == Excluded && hit {
			return false
		}
	}
	return m.searchMatch(s.search, a)
}

// Filter returns the accounts matching s in the order s selects.
func (m *Matcher) Filter(s State, accounts []models.Account) []models.Account {
	out := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if m.Match(s, a) {
			out = append(out, a)
		}
	}
	m.sort(s, out)
	return out
}

func (m *Matcher) known(k Key) bool {
	switch k.Kind {
	case KindType:
		_, ok := m.types[k.ID]
		return ok
	case KindValue:
		_, ok := m.catalog.Value(models.ValueID(k.ID))
		return ok
	case KindNoGroup:
		return m.catalog.HasGroup(k.ID)
	case KindView:
		switch View(k.ID) {
		case ViewFavorites, ViewNoCombo, ViewRecent:
			return true
		}
	}
	return false
}

// hit is the raw membership test that Included requires and Excluded
// negates.
func (m *Matcher) hit(k Key, a models.Account) bool {
	switch k.Kind {
	case KindType:
		return combo.HasType(a, k.ID)
	case KindValue:
		return combo.HasValue(a, models.ValueID(k.ID))
	case KindNoGroup:
		return m.catalog.LacksGroup(a, k.ID)
	case KindView:
		switch View(k.ID) {
		case ViewFavorites:
			return a.IsFavorite
		case ViewNoCombo:
			return a.HasNoCombos()
		case ViewRecent:
			return m.recent(a)
		}
	}
	return false
}

func (m *Matcher) recent(a models.Account) bool {
	if a.LastUsed.IsZero() {
		return false
	}
	return m.now.Sub(a.LastUsed.Time) < RecentWindow
}

func (m *Matcher) searchMatch(query string, a models.Account) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	needle := m.fold.String(query)
	if strings.Contains(m.fold.String(a.Email), needle) ||
		strings.Contains(m.fold.String(a.CustomName), needle) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(m.fold.String(tag), needle) {
			return true
		}
	}
	return false
}

// sort orders accounts in place. Descending means newest first for time
// fields and Z to A for names. Ties fall back to id.
func (m *Matcher) sort(s State, accounts []models.Account) {
	slices.SortStableFunc(accounts, func(a, b models.Account) int {
		var c int
		switch s.sort {
		case SortName:
			c = strings.Compare(m.fold.String(a.DisplayName()), m.fold.String(b.DisplayName()))
		case SortCreated:
			c = a.CreatedAt.Compare(b.CreatedAt.Time)
		default:
			c = cmp.Or(
				a.LastUsed.Compare(b.LastUsed.Time),
				a.CreatedAt.Compare(b.CreatedAt.Time),
			)
		}
		if !s.asc {
			c = -c
		}
		return cmp.Or(c, cmp.Compare(a.ID, b.ID))
	})
}
