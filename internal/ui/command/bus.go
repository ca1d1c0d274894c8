package command

import (
	"github.com/atomicstack/places-popup/internal/logging/events"
	"github.com/atomicstack/places-popup/internal/places"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates one activation of a navigation entry.
type Request struct {
	ID       string
	Label    string
	Location places.Location
	Handler  func(places.Location)
}

// Bus runs activations off the UI loop.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
// The command produces no message; launch outcomes are logged by the handler.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		req.Handler(req.Location)
		events.Command.Result(req.ID, req.Label, req.Location.String())
		return nil
	}
}
