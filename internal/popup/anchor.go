package popup

import (
	"fmt"
	"strings"
)

// Anchor is the panel edge the applet sits on.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorBottom
	AnchorLeft
	AnchorRight
)

func (a Anchor) String() string {
	switch a {
	case AnchorBottom:
		return "bottom"
	case AnchorLeft:
		return "left"
	case AnchorRight:
		return "right"
	default:
		return "top"
	}
}

// Vertical reports whether the panel runs along a side edge.
func (a Anchor) Vertical() bool {
	return a == AnchorLeft || a == AnchorRight
}

// ParseAnchor accepts the edge names case-insensitively.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return AnchorTop, nil
	case "bottom":
		return AnchorBottom, nil
	case "left":
		return AnchorLeft, nil
	case "right":
		return AnchorRight, nil
	default:
		return AnchorTop, fmt.Errorf("unknown anchor %q", s)
	}
}
