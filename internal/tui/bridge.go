package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/dogyears/internal/submission"
)

// programRef survives bubbletea's model copies so goroutines outside the
// update loop can Send to the program.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the program reference.
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program, or drops it before SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// tuiNotifier turns controller notifications into FactUnavailableMsg.
type tuiNotifier struct {
	ref *programRef
}

var _ submission.Notifier = tuiNotifier{}

// FactUnavailable implements submission.Notifier. Send blocks on the
// program's message channel, so it is dispatched on its own goroutine.
func (n tuiNotifier) FactUnavailable(err error) {
	go n.ref.Send(FactUnavailableMsg{Err: err})
}

// waitForViewCmd resolves to the FactMsg for one submission.
func waitForViewCmd(views <-chan submission.View, gen uint64) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-views
		if !ok {
			return nil
		}
		return FactMsg{Generation: gen, View: v}
	}
}
