package movement

// CreateFrom returns both traversal orders of d, row-first then column-first.
// Both are returned even when one axis is zero and the paths coincide.
func CreateFrom(d Displacement) [2]OrderedMovement {
	return [2]OrderedMovement{
		{Rows: d.Rows, Cols: d.Cols, Order: RowThenCol},
		{Rows: d.Rows, Cols: d.Cols, Order: ColThenRow},
	}
}

// Displacement drops the traversal order.
func (m OrderedMovement) Displacement() Displacement {
	return Displacement{Rows: m.Rows, Cols: m.Cols}
}

// Magnitude returns the total number of unit steps of m.
func (m OrderedMovement) Magnitude() int {
	return m.Rows.Abs() + m.Cols.Abs()
}

// Buttons expands m into directional keystrokes in traversal order.
// The trailing confirm press is not included.
func (m OrderedMovement) Buttons() []Direction {
	rowButton, colButton := Down, Right
	if m.Rows < 0 {
		rowButton = Up
	}
	if m.Cols < 0 {
		colButton = Left
	}

	first, firstCount := rowButton, m.Rows.Abs()
	second, secondCount := colButton, m.Cols.Abs()
	if m.Order == ColThenRow {
		first, firstCount, second, secondCount = second, secondCount, first, firstCount
	}

	buttons := make([]Direction, 0, firstCount+secondCount)
	for i := 0; i < firstCount; i++ {
		buttons = append(buttons, first)
	}
	for i := 0; i < secondCount; i++ {
		buttons = append(buttons, second)
	}
	return buttons
}

// UnitSteps expands m into single-cell steps, in the same order as Buttons.
func (m OrderedMovement) UnitSteps() []Step {
	buttons := m.Buttons()
	steps := make([]Step, len(buttons))
	for i, b := range buttons {
		steps[i] = b.Step()
	}
	return steps
}

// Domain returns every ordered movement whose per-axis magnitude is below scope:
// deltas in [-(scope-1), scope-1] on both axes, in both traversal orders.
// A non-positive scope yields an empty domain.
func Domain(scope int) []OrderedMovement {
	if scope <= 0 {
		return nil
	}
	side := 2*scope - 1
	domain := make([]OrderedMovement, 0, 2*side*side)
	for r := -(scope - 1); r < scope; r++ {
		for c := -(scope - 1); c < scope; c++ {
			for _, m := range CreateFrom(Displacement{Rows: Delta(r), Cols: Delta(c)}) {
				domain = append(domain, m)
			}
		}
	}
	return domain
}
