// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueID identifies a [PropertyValue]. Identifiers are unique across all
// property groups.
//
// It decodes from a JSON number or from a numeric string, since older
// front-ends stored combo members as strings.
type ValueID int64

// UnmarshalJSON implements [json.Unmarshaler].
func (v *ValueID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("decode value id %q: %w", s, err)
		}
		*v = ValueID(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode value id: %w", err)
	}
	*v = ValueID(n)
	return nil
}

// Combo is one compound tag: a set of property value identifiers stored as
// an array. The stored order carries no meaning; see package combo for the
// canonical order.
type Combo []ValueID

// Contains reports whether id is a member of c.
func (c Combo) Contains(id ValueID) bool {
	for _, v := range c {
		if v == id {
			return true
		}
	}
	return false
}

// Clone returns a copy of c that does not share its backing array.
func (c Combo) Clone() Combo {
	if c == nil {
		return nil
	}
	out := make(Combo, len(c))
	copy(out, c)
	return out
}

// PropertyGroup is a named category of property values, e.g. "Status".
type PropertyGroup struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	SortOrder int             `json:"sort_order"`
	Values    []PropertyValue `json:"values"`
}

// PropertyValue is one selectable value of a [PropertyGroup].
type PropertyValue struct {
	ID        ValueID `json:"id"`
	GroupID   int64   `json:"group_id"`
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	SortOrder int     `json:"sort_order"`

	// Hidden values still color a combo badge but their name is not shown.
	Hidden bool `json:"hidden"`
}
