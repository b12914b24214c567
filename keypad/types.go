package keypad

const (
	// Gap marks the forbidden cell in a layout.
	Gap = ' '
	// Activate is the confirm button present on both built-in keypads.
	Activate = 'A'
)

// Position identifies a grid cell; rows grow downwards, columns to the right.
type Position struct {
	Row, Col int
}

// Keypad is an immutable button grid with exactly one gap cell.
type Keypad struct {
	name          string
	width, height int
	cells         [][]rune
	buttons       map[rune]Position
	gap           Position
}

var (
	numericRows     = []string{"789", "456", "123", " 0A"}
	directionalRows = []string{" ^A", "<v>"}

	numeric     = mustNew("numeric", numericRows)
	directional = mustNew("directional", directionalRows)
)

// Numeric returns the door keypad: digits and 'A', gap bottom-left.
func Numeric() *Keypad { return numeric }

// Directional returns the arrow keypad: '^', 'v', '<', '>' and 'A', gap top-left.
func Directional() *Keypad { return directional }
