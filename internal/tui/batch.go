package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/accbox/internal/combo"
	"github.com/MKhiriev/accbox/internal/service"
	"github.com/MKhiriev/accbox/models"
)

type batchValue struct {
	group string
	id    models.ValueID
	name  string
	color string
}

// batchModel picks the property values of a batch edit.
type batchModel struct {
	values     []batchValue
	chosen     map[models.ValueID]bool
	cursor     int
	mode       combo.Mode
	submitting bool
}

func newBatchModel(catalog *combo.Catalog) batchModel {
	m := batchModel{chosen: make(map[models.ValueID]bool)}
	for _, g := range catalog.Groups() {
		for _, v := range g.Values {
			m.values = append(m.values, batchValue{group: g.Name, id: v.ID, name: v.Name, color: v.Color})
		}
	}
	return m
}

func (m *batchModel) move(delta int) {
	if len(m.values) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.values)) % len(m.values)
}

func (m *batchModel) toggle() {
	if len(m.values) == 0 {
		return
	}
	id := m.values[m.cursor].id
	if m.chosen[id] {
		delete(m.chosen, id)
	} else {
		m.chosen[id] = true
	}
}

func (m *batchModel) switchMode() {
	if m.mode == combo.ModeCompound {
		m.mode = combo.ModeIndependent
	} else {
		m.mode = combo.ModeCompound
	}
}

// request lists the chosen values in catalog order.
func (m batchModel) request(remove bool) service.BatchRequest {
	req := service.BatchRequest{Mode: m.mode, Remove: remove}
	for _, v := range m.values {
		if m.chosen[v.id] {
			req.Values = append(req.Values, v.id)
		}
	}
	return req
}

func (m batchModel) View(selected int) string {
	var b strings.Builder
	b.WriteString(viewTitle(fmt.Sprintf("Batch edit: %d account(s), %s mode", selected, m.mode)))

	if len(m.values) == 0 {
		b.WriteString("No property values defined\n")
	}
	for i, v := range m.values {
		if i == 0 || m.values[i-1].group != v.group {
			b.WriteString(titleStyle.Render(v.group))
			b.WriteString("\n")
		}
		mark := "[ ]"
		if m.chosen[v.id] {
			mark = "[x]"
		}
		line := mark + " " + badgeStyle(orDefaultColor(v.color)).Render(v.name)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\nSaving...\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space: toggle │ m: mode │ a: add │ r: remove │ esc: cancel"))
	return overlayBoxStyle.Render(b.String())
}
