package combo

import (
	"strings"

	"github.com/MKhiriev/accbox/models"
)

// DefaultColor is the badge color when no identifier resolves.
const DefaultColor = "#8b5cf6"

// Display is how one combo is rendered.
type Display struct {
	// Color of the first resolved value.
	Color string
	// Text is the space-joined names of resolved values that are not
	// hidden, or the first resolved name when all are hidden.
	Text string
	// Invalid combos render as a warning instead of a badge.
	Invalid bool
	// Missing lists identifiers that resolve to nothing.
	Missing []models.ValueID
}

// Display computes the badge for combo.
func (c *Catalog) Display(combo models.Combo) Display {
	d := Display{Color: DefaultColor}
	if len(combo) == 0 {
		d.Invalid = true
		return d
	}

	var names []string
	first := ""
	for _, id := range c.Normalize(combo) {
		v, ok := c.Value(id)
		if !ok {
			d.Missing = append(d.Missing, id)
			continue
		}
		if first == "" {
			first = v.Name
			if v.Color != "" {
				d.Color = v.Color
			}
		}
		if !v.Hidden {
			names = append(names, v.Name)
		}
	}

	d.Invalid = len(d.Missing) > 0
	if len(names) == 0 {
		d.Text = first
	} else {
		d.Text = strings.Join(names, " ")
	}
	return d
}
