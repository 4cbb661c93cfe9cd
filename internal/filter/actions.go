package filter

// Action is a state transition consumed by [Apply].
type Action interface {
	apply(State) State
}

// Apply returns the state that results from a. s is not modified.
func Apply(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// Activate cycles a key Unset, Included, Excluded and back to Unset.
// Including an account type first clears every other type key.
type Activate struct{ Key Key }

func (a Activate) apply(s State) State {
	next := s.Mode(a.Key).next()
	if next == Included && a.Key.Kind == KindType {
		s = clearKind(s, KindType, a.Key)
	}
	return s.set(a.Key, next)
}

// Secondary toggles a key between Unset and Excluded. An Included key
// becomes Excluded.
type Secondary struct{ Key Key }

func (a Secondary) apply(s State) State {
	if s.Mode(a.Key) == Excluded {
		return s.set(a.Key, Unset)
	}
	return s.set(a.Key, Excluded)
}

// ClearKey unsets one key.
type ClearKey struct{ Key Key }

func (a ClearKey) apply(s State) State {
	return s.set(a.Key, Unset)
}

// ClearAll unsets every key. Search text and sort order are kept.
type ClearAll struct{}

func (ClearAll) apply(s State) State {
	s.filters = nil
	return s
}

// SetSearch replaces the search text.
type SetSearch struct{ Text string }

func (a SetSearch) apply(s State) State {
	s.search = a.Text
	return s
}

// SetSort selects a sort field. Selecting the current field flips the
// direction; a new field starts descending.
type SetSort struct{ Field SortField }

func (a SetSort) apply(s State) State {
	if s.sort == a.Field {
		s.asc = !s.asc
		return s
	}
	s.sort = a.Field
	s.asc = false
	return s
}

func clearKind(s State, kind Kind, keep Key) State {
	s = s.withFilters()
	for k := range s.filters {
		if k.Kind == kind && k != keep {
			delete(s.filters, k)
		}
	}
	return s
}
