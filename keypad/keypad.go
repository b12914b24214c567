package keypad

import (
	"fmt"

	"github.com/katalvlaran/robokeys/movement"
)

// New builds a Keypad from a non-empty, rectangular layout where every rune
// is a distinct button except a single Gap.
// It deep-copies the input so the keypad stays immutable.
func New(name string, rows []string) (*Keypad, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	h, w := len(rows), len([]rune(rows[0]))
	cells := make([][]rune, h)
	buttons := make(map[rune]Position, h*w)
	gaps := 0
	var gap Position
	for r, row := range rows {
		cells[r] = []rune(row)
		if len(cells[r]) != w {
			return nil, ErrNonRectangular
		}
		for c, b := range cells[r] {
			p := Position{Row: r, Col: c}
			if b == Gap {
				gaps++
				gap = p
				continue
			}
			if _, dup := buttons[b]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateButton, b)
			}
			buttons[b] = p
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGapCount, gaps)
	}

	return &Keypad{
		name:    name,
		width:   w,
		height:  h,
		cells:   cells,
		buttons: buttons,
		gap:     gap,
	}, nil
}

func mustNew(name string, rows []string) *Keypad {
	k, err := New(name, rows)
	if err != nil {
		panic(err)
	}
	return k
}

// Name returns the label given at construction.
func (k *Keypad) Name() string { return k.name }

// Width returns the number of columns.
func (k *Keypad) Width() int { return k.width }

// Height returns the number of rows.
func (k *Keypad) Height() int { return k.height }

// Gap returns the position of the forbidden cell.
func (k *Keypad) Gap() Position { return k.gap }

// InBounds reports whether p lies within the grid, gap included.
func (k *Keypad) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < k.height && p.Col >= 0 && p.Col < k.width
}

// Position returns where button b sits.
func (k *Keypad) Position(b rune) (Position, bool) {
	p, ok := k.buttons[b]
	return p, ok
}

// Buttons returns all buttons in row-major order.
func (k *Keypad) Buttons() []rune {
	out := make([]rune, 0, len(k.buttons))
	for _, row := range k.cells {
		for _, b := range row {
			if b != Gap {
				out = append(out, b)
			}
		}
	}
	return out
}

// MaxDisplacement returns the largest per-axis distance between two cells.
func (k *Keypad) MaxDisplacement() (rows, cols int) {
	return k.height - 1, k.width - 1
}

// OrderedMovements returns the safe ordered movements leading from origin to
// target: one or two of the row-first and column-first candidates, in that order.
func (k *Keypad) OrderedMovements(origin, target rune) ([]movement.OrderedMovement, error) {
	from, ok := k.buttons[origin]
	if !ok {
		return nil, fmt.Errorf("%w: %s origin %q", ErrButtonMissing, k.name, origin)
	}
	to, ok := k.buttons[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s target %q", ErrButtonMissing, k.name, target)
	}

	d := movement.Displacement{
		Rows: movement.DeltaBetween(from.Row, to.Row),
		Cols: movement.DeltaBetween(from.Col, to.Col),
	}
	safe := make([]movement.OrderedMovement, 0, 2)
	for _, m := range movement.CreateFrom(d) {
		ok, err := k.isSafe(from, to, m)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q->%q via %v", err, k.name, origin, target, m)
		}
		if ok {
			safe = append(safe, m)
		}
	}
	if len(safe) == 0 {
		return nil, fmt.Errorf("%w: %s %q->%q", ErrNoSafeOrderedMovements, k.name, origin, target)
	}
	return safe, nil
}

// isSafe walks m one cell at a time from origin and reports whether it avoids the gap.
func (k *Keypad) isSafe(origin, target Position, m movement.OrderedMovement) (bool, error) {
	pos := origin
	for _, s := range m.UnitSteps() {
		pos = Position{Row: pos.Row + s.Row, Col: pos.Col + s.Col}
		if !k.InBounds(pos) {
			return false, ErrSafetyCheckCritical
		}
		if pos == k.gap {
			return false, nil
		}
	}
	if pos != target {
		return false, ErrSafetyCheckCritical
	}
	return true, nil
}
