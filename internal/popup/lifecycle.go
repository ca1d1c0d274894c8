// Package popup tracks whether the places popup exists. The popup is either
// closed or open under exactly one identifier; there are no in-between states.
package popup

import "github.com/google/uuid"

// ID names one live popup surface. A new ID is minted on every open.
type ID string

// Op is the side effect a transition asks the renderer to perform.
type Op int

const (
	OpNone Op = iota
	OpCreate
	OpDestroy
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpDestroy:
		return "destroy"
	default:
		return "none"
	}
}

// Limits are the popup size constraints in device-independent units.
type Limits struct {
	MinWidth  float32 `json:"minWidth"`
	MaxWidth  float32 `json:"maxWidth"`
	MinHeight float32 `json:"minHeight"`
	MaxHeight float32 `json:"maxHeight"`
}

const (
	minMaxWidth = 200
	maxMaxWidth = 300
)

// DefaultLimits matches the panel's standard popup size.
func DefaultLimits() Limits {
	return Limits{MinWidth: 100, MaxWidth: minMaxWidth, MinHeight: 200, MaxHeight: 1080}
}

// WithMaxWidth returns a copy with the maximum width clamped to [200, 300].
func (l Limits) WithMaxWidth(width float32) Limits {
	if width < minMaxWidth {
		width = minMaxWidth
	}
	if width > maxMaxWidth {
		width = maxMaxWidth
	}
	l.MaxWidth = width
	return l
}

// Transition describes what a Toggle asked for.
type Transition struct {
	Op     Op
	ID     ID
	Limits Limits
}

// Lifecycle is the closed/open state machine.
type Lifecycle struct {
	current ID
	open    bool
	limits  Limits
	newID   func() ID
}

type Option func(*Lifecycle)

// WithLimits sets the constraints passed on creation.
func WithLimits(limits Limits) Option {
	return func(l *Lifecycle) { l.limits = limits }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() ID) Option {
	return func(l *Lifecycle) {
		if fn != nil {
			l.newID = fn
		}
	}
}

// New returns a closed lifecycle.
func New(opts ...Option) *Lifecycle {
	l := &Lifecycle{
		limits: DefaultLimits(),
		newID:  func() ID { return ID(uuid.NewString()) },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Toggle opens a closed popup under a fresh ID or closes an open one.
func (l *Lifecycle) Toggle() Transition {
	if l.open {
		id := l.current
		l.open = false
		l.current = ""
		return Transition{Op: OpDestroy, ID: id}
	}
	l.current = l.newID()
	l.open = true
	return Transition{Op: OpCreate, ID: l.current, Limits: l.limits}
}

// ExternalClose records that the renderer tore the popup down on its own.
// Notifications for any other ID, or while closed, are ignored and reported
// as false.
func (l *Lifecycle) ExternalClose(id ID) bool {
	if !l.open || id != l.current {
		return false
	}
	l.open = false
	l.current = ""
	return true
}

// Current returns the live ID, if any.
func (l *Lifecycle) Current() (ID, bool) {
	return l.current, l.open
}

func (l *Lifecycle) IsOpen() bool {
	return l.open
}

func (l *Lifecycle) Limits() Limits {
	return l.limits
}
