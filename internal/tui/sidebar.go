package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/accbox/internal/combo"
	"github.com/MKhiriev/accbox/internal/filter"
	"github.com/MKhiriev/accbox/models"
)

type sidebarEntry struct {
	section string
	key     filter.Key
	label   string
	color   string
	count   int
}

// buildSidebar lists every filter key in display order: views, account
// types, then each property group with its values and its "no value" key.
func buildSidebar(snap models.Snapshot, catalog *combo.Catalog, counts filter.Counts) []sidebarEntry {
	entries := []sidebarEntry{
		{section: "Views", key: filter.ViewKey(filter.ViewFavorites), label: "★ Favorites"},
		{section: "Views", key: filter.ViewKey(filter.ViewNoCombo), label: "No properties"},
		{section: "Views", key: filter.ViewKey(filter.ViewRecent), label: "Recently used"},
	}

	for _, t := range snap.Types {
		label := t.Name
		if t.Icon != "" {
			label = t.Icon + " " + t.Name
		}
		entries = append(entries, sidebarEntry{section: "Types", key: filter.TypeKey(t.ID), label: label, color: t.Color})
	}

	for _, g := range catalog.Groups() {
		for _, v := range g.Values {
			entries = append(entries, sidebarEntry{section: g.Name, key: filter.ValueKey(v.ID), label: v.Name, color: v.Color})
		}
		entries = append(entries, sidebarEntry{section: g.Name, key: filter.NoGroupKey(g.ID), label: "No " + g.Name})
	}

	for i := range entries {
		entries[i].count = counts.Of(entries[i].key)
	}
	return entries
}

func renderSidebar(entries []sidebarEntry, state filter.State, counts filter.Counts, cursor int, focused bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "All accounts (%d)\n", counts.Total)

	for i, e := range entries {
		if i == 0 || entries[i-1].section != e.section {
			b.WriteString("\n")
			b.WriteString(titleStyle.Render(e.section))
			b.WriteString("\n")
		}

		label := fitText(e.label, 20)
		if e.color != "" {
			label = badgeStyle(e.color).Render(label)
		}
		line := fmt.Sprintf("%s %s (%d)", modeMark(state.Mode(e.key)), label, e.count)
		switch state.Mode(e.key) {
		case filter.Included:
			line = includedStyle.Render(line)
		case filter.Excluded:
			line = excludedStyle.Render(line)
		}
		if focused && i == cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return sidebarStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func modeMark(m filter.Mode) string {
	switch m {
	case filter.Included:
		return "+"
	case filter.Excluded:
		return "-"
	default:
		return " "
	}
}
