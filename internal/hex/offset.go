package hex

import (
	"errors"
	"fmt"
)

// ErrUnknownLayout is returned when parsing an unrecognised layout name.
var ErrUnknownLayout = errors.New("unknown offset layout")

// Layout is the row/column parity convention of an offset grid.
type Layout uint8

const (
	// OddRowsRight shoves odd rows half a hex to the right (pointy top).
	OddRowsRight Layout = iota
	// EvenRowsRight shoves even rows half a hex to the right (pointy top).
	EvenRowsRight
	// OddColumnsDown shoves odd columns half a hex down (flat top).
	OddColumnsDown
	// EvenColumnsDown shoves even columns half a hex down (flat top).
	EvenColumnsDown
)

var layoutNames = [...]string{
	OddRowsRight:    "odd-rows-right",
	EvenRowsRight:   "even-rows-right",
	OddColumnsDown:  "odd-columns-down",
	EvenColumnsDown: "even-columns-down",
}

func (l Layout) String() string {
	if l.Valid() {
		return layoutNames[l]
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// Valid reports whether l is one of the four known layouts.
func (l Layout) Valid() bool {
	return int(l) < len(layoutNames)
}

// ParseLayout resolves a layout from its text form, e.g. "odd-rows-right".
func ParseLayout(s string) (Layout, error) {
	for i, name := range layoutNames {
		if name == s {
			return Layout(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayout, uint8(l))
	}
	return []byte(layoutNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layout) UnmarshalText(text []byte) error {
	parsed, err := ParseLayout(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Offset is a (column, row) position tagged with the layout it was taken in.
// It only round-trips through Cube under the same layout.
type Offset struct {
	Col    int
	Row    int
	Layout Layout
}

// NewOffset builds an offset coordinate for layout.
func NewOffset(layout Layout, col, row int) Offset {
	return Offset{Col: col, Row: row, Layout: layout}
}

// Cube converts the offset to cube coordinates using its layout.
// Go's % truncates toward zero, which the formulas rely on for negative rows.
func (o Offset) Cube() Cube {
	switch o.Layout {
	case OddRowsRight:
		return fromXZ(o.Col-(o.Row-o.Row%2)/2, o.Row)
	case EvenRowsRight:
		return fromXZ(o.Col-(o.Row+o.Row%2)/2, o.Row)
	case OddColumnsDown:
		return fromXZ(o.Col, o.Row-(o.Col-o.Col%2)/2)
	case EvenColumnsDown:
		return fromXZ(o.Col, o.Row-(o.Col+o.Col%2)/2)
	default:
		panic(fmt.Sprintf("hex: %v", o.Layout))
	}
}

// String formats the offset as "[col, row]".
func (o Offset) String() string {
	return fmt.Sprintf("[%d, %d]", o.Col, o.Row)
}

// ToOffset converts c to offset coordinates under layout.
func ToOffset(layout Layout, c Cube) Offset {
	switch layout {
	case OddRowsRight:
		return Offset{Col: c.x + (c.z-c.z%2)/2, Row: c.z, Layout: layout}
	case EvenRowsRight:
		return Offset{Col: c.x + (c.z+c.z%2)/2, Row: c.z, Layout: layout}
	case OddColumnsDown:
		return Offset{Col: c.x, Row: c.z + (c.x-c.x%2)/2, Layout: layout}
	case EvenColumnsDown:
		return Offset{Col: c.x, Row: c.z + (c.x+c.x%2)/2, Layout: layout}
	default:
		panic(fmt.Sprintf("hex: %v", layout))
	}
}

// Offset is shorthand for ToOffset(layout, c).
func (c Cube) Offset(layout Layout) Offset {
	return ToOffset(layout, c)
}

// Cubes converts a batch of offsets, each under its own layout.
func Cubes(offsets []Offset) []Cube {
	out := make([]Cube, len(offsets))
	for i, o := range offsets {
		out[i] = o.Cube()
	}
	return out
}

// Offsets converts a batch of cubes to offsets under layout.
func Offsets(layout Layout, cubes []Cube) []Offset {
	out := make([]Offset, len(cubes))
	for i, c := range cubes {
		out[i] = ToOffset(layout, c)
	}
	return out
}
