package movement

import (
	"fmt"
	"strconv"
)

// Delta is a signed displacement along one axis.
type Delta int

// DeltaBetween returns the displacement leading from coordinate from to coordinate to.
func DeltaBetween(from, to int) Delta { return Delta(to - from) }

// Abs returns the number of unit steps the delta spans.
func (d Delta) Abs() int {
	if d < 0 {
		return int(-d)
	}
	return int(d)
}

func (d Delta) String() string {
	if d < 0 {
		return strconv.Itoa(int(d))
	}
	return "+" + strconv.Itoa(int(d))
}

// Order selects which axis of a movement is traversed first.
type Order uint8

const (
	// RowThenCol moves vertically first, then horizontally.
	RowThenCol Order = iota
	// ColThenRow moves horizontally first, then vertically.
	ColThenRow
)

func (o Order) String() string {
	switch o {
	case RowThenCol:
		return "row-col"
	case ColThenRow:
		return "col-row"
	default:
		return "order(" + strconv.Itoa(int(o)) + ")"
	}
}

// Direction is a directional keypad button.
type Direction rune

const (
	Up    Direction = '^'
	Down  Direction = 'v'
	Left  Direction = '<'
	Right Direction = '>'
)

// Step returns the single-cell offset produced by pressing d.
func (d Direction) Step() Step {
	switch d {
	case Up:
		return Step{Row: -1}
	case Down:
		return Step{Row: 1}
	case Left:
		return Step{Col: -1}
	case Right:
		return Step{Col: 1}
	default:
		return Step{}
	}
}

// Step is a unit offset in (row, col) space.
type Step struct {
	Row, Col int
}

// Displacement is an unordered 2-D offset between two grid cells.
type Displacement struct {
	Rows, Cols Delta
}

// OrderedMovement is a displacement with a committed traversal order.
// The zero value is the empty row-first movement: confirm only.
type OrderedMovement struct {
	Rows  Delta
	Cols  Delta
	Order Order
}

func (m OrderedMovement) String() string {
	return fmt.Sprintf("%s(%s,%s)", m.Order, m.Rows, m.Cols)
}
