package combo

import "github.com/MKhiriev/accbox/models"

// HasValue reports whether any combo of a contains id. Membership is by
// identity and needs no normalization.
func HasValue(a models.Account, id models.ValueID) bool {
	for _, combo := range a.Combos {
		if combo.Contains(id) {
			return true
		}
	}
	return false
}

// LacksValue reports whether no combo of a contains id.
func LacksValue(a models.Account, id models.ValueID) bool {
	return !HasValue(a, id)
}

// HasType reports whether a has account type typeID.
func HasType(a models.Account, typeID int64) bool {
	return a.TypeID == typeID
}

// LacksGroup reports whether no combo of a contains a value of groupID.
func (c *Catalog) LacksGroup(a models.Account, groupID int64) bool {
	for _, id := range c.GroupValues(groupID) {
		if HasValue(a, id) {
			return false
		}
	}
	return true
}

// HasInvalid reports whether a carries at least one invalid combo.
func (c *Catalog) HasInvalid(a models.Account) bool {
	for _, combo := range a.Combos {
		if !c.Valid(combo) {
			return true
		}
	}
	return false
}
