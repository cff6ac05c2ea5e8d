// Package core defines the graph, agent, and plan data model for the
// heading-aware PIBT solver.
package core

// Heading is one of the four cardinal directions an agent can face.
type Heading int

const (
	XPlus  Heading = iota // 0 degrees
	YPlus                 // 90 degrees
	XMinus                // 180 degrees
	YMinus                // 270 degrees
)

func (h Heading) String() string {
	switch h {
	case XPlus:
		return "X_PLUS"
	case XMinus:
		return "X_MINUS"
	case YPlus:
		return "Y_PLUS"
	case YMinus:
		return "Y_MINUS"
	default:
		return "UNKNOWN"
	}
}

// Angle returns the heading's angle in degrees, matching the mapping used
// throughout the solver: X_PLUS=0, Y_PLUS=90, X_MINUS=180, Y_MINUS=270.
func (h Heading) Angle() int {
	switch h {
	case XPlus:
		return 0
	case YPlus:
		return 90
	case XMinus:
		return 180
	case YMinus:
		return 270
	default:
		return 0
	}
}

// AngleDiff returns the absolute angular difference between two headings,
// folded into {0, 90, 180}.
func AngleDiff(a, b Heading) int {
	diff := a.Angle() - b.Angle()
	if diff < 0 {
		diff = -diff
	}
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// CounterClockwise returns the heading reached by rotating 90 degrees
// counter-clockwise from h.
func CounterClockwise(h Heading) Heading {
	switch h {
	case XPlus:
		return YPlus
	case YPlus:
		return XMinus
	case XMinus:
		return YMinus
	case YMinus:
		return XPlus
	default:
		return XPlus
	}
}

// AllHeadings lists the four cardinal headings in a fixed order, used to
// size and address the per-vertex distance table.
func AllHeadings() [4]Heading {
	return [4]Heading{XPlus, YPlus, XMinus, YMinus}
}

// ParseHeading parses the String() form back into a Heading, for instance
// files and other text serializations.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "X_PLUS":
		return XPlus, nil
	case "X_MINUS":
		return XMinus, nil
	case "Y_PLUS":
		return YPlus, nil
	case "Y_MINUS":
		return YMinus, nil
	default:
		return 0, &ConfigError{Agent: -1, Msg: "unknown heading: " + s}
	}
}
