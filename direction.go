package shimmer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognized names.
var ErrUnknownDirection = errors.New("shimmer: unknown direction")

// Direction is the axis and sense of the sweep.
type Direction int

const (
	// LeftToRight sweeps along the x axis towards increasing x.
	LeftToRight Direction = iota
	// RightToLeft sweeps along the x axis towards decreasing x.
	RightToLeft
	// TopToBottom sweeps along the y axis towards increasing y.
	TopToBottom
	// BottomToTop sweeps along the y axis towards decreasing y.
	BottomToTop
)

var directionNames = [...]string{
	LeftToRight: "left-to-right",
	RightToLeft: "right-to-left",
	TopToBottom: "top-to-bottom",
	BottomToTop: "bottom-to-top",
}

// String returns the kebab-case name of the direction.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// IsHorizontal reports whether the sweep runs along the x axis.
// Unknown values sweep like LeftToRight and so count as horizontal.
func (d Direction) IsHorizontal() bool {
	return d != TopToBottom && d != BottomToTop
}

// ParseDirection parses a direction name as produced by String.
// Matching ignores case, and "_" or " " may replace "-"; the short
// forms "ltr", "rtl", "ttb" and "btt" are accepted too.
func ParseDirection(s string) (Direction, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	switch norm {
	case "ltr":
		return LeftToRight, nil
	case "rtl":
		return RightToLeft, nil
	case "ttb":
		return TopToBottom, nil
	case "btt":
		return BottomToTop, nil
	}
	for d, name := range directionNames {
		if norm == name {
			return Direction(d), nil
		}
	}
	return LeftToRight, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
