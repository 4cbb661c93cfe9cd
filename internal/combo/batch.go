package combo

import (
	"slices"

	"github.com/MKhiriev/accbox/models"
)

// Mode selects how a batch of values is applied to an account.
type Mode int

const (
	// ModeCompound treats the selected values as one combo.
	ModeCompound Mode = iota
	// ModeIndependent treats each selected value as its own singleton combo.
	ModeIndependent
)

func (m Mode) String() string {
	if m == ModeIndependent {
		return "independent"
	}
	return "compound"
}

// Add applies values to combos and reports whether anything changed.
//
// Compound: the normalized set is appended unless an equal combo exists.
// Independent: [v] is appended for every v no combo contains yet.
func (c *Catalog) Add(combos []models.Combo, values []models.ValueID, mode Mode) ([]models.Combo, bool) {
	values = dedupe(values)
	if len(values) == 0 {
		return cloneCombos(combos), false
	}

	out := cloneCombos(combos)
	switch mode {
	case ModeIndependent:
		changed := false
		for _, v := range values {
			if containsValue(out, v) {
				continue
			}
			out = append(out, models.Combo{v})
			changed = true
		}
		return out, changed
	default:
		set := c.Normalize(values)
		for _, existing := range out {
			if c.Equal(existing, set) {
				return out, false
			}
		}
		return append(out, set), true
	}
}

// Remove deletes combos matching values and reports whether anything
// changed.
//
// Compound: combos equal to the normalized set are deleted.
// Independent: only singleton combos [v] are deleted; multi-value combos
// holding v stay.
func (c *Catalog) Remove(combos []models.Combo, values []models.ValueID, mode Mode) ([]models.Combo, bool) {
	values = dedupe(values)
	if len(values) == 0 {
		return cloneCombos(combos), false
	}

	var drop func(models.Combo) bool
	switch mode {
	case ModeIndependent:
		drop = func(combo models.Combo) bool {
			return len(combo) == 1 && slices.Contains(values, combo[0])
		}
	default:
		set := models.Combo(values)
		drop = func(combo models.Combo) bool {
			return c.Equal(combo, set)
		}
	}

	out := make([]models.Combo, 0, len(combos))
	for _, combo := range combos {
		if !drop(combo) {
			out = append(out, combo.Clone())
		}
	}
	return out, len(out) != len(combos)
}

// RemoveInvalid deletes empty combos and combos with dangling identifiers,
// returning the remaining combos and how many were removed. Only explicit,
// user-confirmed cleanup should call it.
func (c *Catalog) RemoveInvalid(combos []models.Combo) ([]models.Combo, int) {
	out := make([]models.Combo, 0, len(combos))
	for _, combo := range combos {
		if c.Valid(combo) {
			out = append(out, combo.Clone())
		}
	}
	return out, len(combos) - len(out)
}

func containsValue(combos []models.Combo, v models.ValueID) bool {
	for _, combo := range combos {
		if combo.Contains(v) {
			return true
		}
	}
	return false
}

func dedupe(values []models.ValueID) models.Combo {
	out := make(models.Combo, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func cloneCombos(combos []models.Combo) []models.Combo {
	out := make([]models.Combo, 0, len(combos))
	for _, combo := range combos {
		out = append(out, combo.Clone())
	}
	return out
}
