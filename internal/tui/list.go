package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/accbox/internal/combo"
	"github.com/MKhiriev/accbox/internal/filter"
	"github.com/MKhiriev/accbox/models"
)

const listNameWidth = 28

func renderAccountRow(a models.Account, snap models.Snapshot, catalog *combo.Catalog, selected, batchMode bool) string {
	var b strings.Builder

	if batchMode {
		if selected {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
	}
	if a.IsFavorite {
		b.WriteString("★ ")
	} else {
		b.WriteString("  ")
	}

	fmt.Fprintf(&b, "%-*s", listNameWidth, fitText(a.DisplayName(), listNameWidth))
	if a.CustomName != "" {
		b.WriteString(" ")
		b.WriteString(helpStyle.Render(fitText(a.Email, 32)))
	}

	if t, ok := snap.Type(a.TypeID); ok {
		b.WriteString("  ")
		b.WriteString(badgeStyle(orDefaultColor(t.Color)).Render(strings.TrimSpace(t.Icon + " " + t.Name)))
	}
	if a.Has2FA {
		b.WriteString("  2FA")
	}
	if badges := renderCombos(a.Combos, catalog); badges != "" {
		b.WriteString("  ")
		b.WriteString(badges)
	}
	if len(a.Tags) > 0 {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render("#" + strings.Join(a.Tags, " #")))
	}

	line := b.String()
	if selected {
		line = selectedStyle.Render(line)
	}
	return line
}

// renderCombos draws one badge per combo. Dangling combos show as a
// warning so the user can run the cleanup.
func renderCombos(combos []models.Combo, catalog *combo.Catalog) string {
	parts := make([]string, 0, len(combos))
	for _, c := range combos {
		d := catalog.Display(c)
		if d.Invalid {
			parts = append(parts, invalidStyle.Render("[! invalid]"))
			continue
		}
		parts = append(parts, badgeStyle(d.Color).Render("["+d.Text+"]"))
	}
	return strings.Join(parts, " ")
}

func renderFilterBar(state filter.State, labels map[filter.Key]string) string {
	var parts []string
	for _, k := range state.Active() {
		label, ok := labels[k]
		if !ok {
			label = "?" + k.Kind.String()
		}
		if state.Mode(k) == filter.Excluded {
			parts = append(parts, excludedStyle.Render("not "+label))
		} else {
			parts = append(parts, includedStyle.Render(label))
		}
	}
	if q := state.Search(); q != "" {
		parts = append(parts, fmt.Sprintf("search %q", q))
	}

	field, asc := state.Sort()
	dir := "desc"
	if asc {
		dir = "asc"
	}
	parts = append(parts, helpStyle.Render(fmt.Sprintf("sort: %s %s", field, dir)))
	return strings.Join(parts, "  ")
}

func orDefaultColor(c string) string {
	if c == "" {
		return combo.DefaultColor
	}
	return c
}
