package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/accbox/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the f1 about window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(msg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(msg, keys.esc):
			r.showBuildInfo = false
			return r, nil
		}
		if r.showBuildInfo {
			return r, nil
		}
	case quitMsg:
		r.quitByUser = true
		return r, tea.Quit
	case tea.WindowSizeMsg:
		var cmds []tea.Cmd
		for name, page := range r.pages {
			updated, cmd := page.Update(msg)
			r.pages[name] = updated
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			if page, ok := r.pages[r.current]; ok {
				r.pages[r.current], _ = page.Update(msg)
			}
			return r.navigate(NavigateTo{Page: pageAccounts})
		}
	}

	return r.delegate(msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("ACCBOX", "", "")
	}
	return page.View()
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page
	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}
