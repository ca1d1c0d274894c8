package ui

import (
	"reflect"

	"github.com/atomicstack/places-popup/internal/backend"
	"github.com/atomicstack/places-popup/internal/data/dispatcher"
	"github.com/atomicstack/places-popup/internal/places"
	"github.com/atomicstack/places-popup/internal/popup"
	"github.com/atomicstack/places-popup/internal/state"
	"github.com/atomicstack/places-popup/internal/theme"
	"github.com/atomicstack/places-popup/internal/ui/command"
	uistate "github.com/atomicstack/places-popup/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type list = uistate.List

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Launcher opens a location. Implementations must not block for long; they
// run inside a tea.Cmd.
type Launcher interface {
	Dispatch(places.Location)
}

// Options configure a Model.
type Options struct {
	Controller      *state.Controller
	Lifecycle       *popup.Lifecycle
	Launcher        Launcher
	Watcher         *backend.Watcher
	Anchor          popup.Anchor
	CloseOnActivate bool
	Width           int
	Height          int
}

// TogglePopupMsg is sent when the panel button is pressed.
type TogglePopupMsg struct{}

// PopupClosedMsg reports that the popup with ID went away without a toggle.
type PopupClosedMsg struct {
	ID popup.ID
}

// ActivateMsg asks for the entry at Index of the given list generation to be
// opened.
type ActivateMsg struct {
	Generation uint64
	Index      int
}

// Model implements the Bubble Tea model for the places applet: a panel
// button plus the popup list it toggles.
type Model struct {
	controller *state.Controller
	dispatcher *dispatcher.Dispatcher
	lifecycle  *popup.Lifecycle
	launcher   Launcher
	bus        *command.Bus
	backend    *backend.Watcher

	anchor          popup.Anchor
	closeOnActivate bool

	list         *list
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	filterCursor cursor.Model
	keys         keyMap

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the model to its collaborators. Controller and Lifecycle are
// required.
func NewModel(opts Options) *Model {
	lifecycle := opts.Lifecycle
	if lifecycle == nil {
		lifecycle = popup.New()
	}
	m := &Model{
		controller:      opts.Controller,
		dispatcher:      dispatcher.New(opts.Controller),
		lifecycle:       lifecycle,
		launcher:        opts.Launcher,
		bus:             command.New(),
		backend:         opts.Watcher,
		anchor:          opts.Anchor,
		closeOnActivate: opts.CloseOnActivate,
		keys:            defaultKeyMap(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	c.Focus()
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(TogglePopupMsg{}):    m.handleToggleMsg,
		reflect.TypeOf(PopupClosedMsg{}):    m.handlePopupClosedMsg,
		reflect.TypeOf(ActivateMsg{}):       m.handleActivateMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// List exposes the open popup's list, or nil when the popup is closed.
func (m *Model) List() *uistate.List {
	return m.list
}

// Lifecycle exposes the popup state machine.
func (m *Model) Lifecycle() *popup.Lifecycle {
	return m.lifecycle
}
