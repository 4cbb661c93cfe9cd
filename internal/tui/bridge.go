package tui

import (
	"sync"

	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/MKhiriev/accbox/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Bridge forwards notices and popup frames produced outside the event loop
// into the running program. Nothing is delivered while no program runs.
type Bridge struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewBridge creates a detached Bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Notify implements [models.Notify]. It never blocks.
func (b *Bridge) Notify(n models.Notice) {
	b.send(noticeMsg{notice: n})
}

// Frame is the popup listener. It never blocks.
func (b *Bridge) Frame(f popup.Frame) {
	b.send(popupFrameMsg{frame: f})
}

func (b *Bridge) attach(p *tea.Program) {
	b.mu.Lock()
	b.program = p
	b.mu.Unlock()
}

func (b *Bridge) detach() {
	b.attach(nil)
}

func (b *Bridge) send(msg tea.Msg) {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()
	if p == nil {
		return
	}
	// Send blocks until the loop reads the message, and callers may hold
	// no locks but still run on the tick goroutine.
	go p.Send(msg)
}
