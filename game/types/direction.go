package types

// Direction rappresenta una direzione cardinale
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

var deltas = [...]Point{
	NONE:  {X: 0, Y: 0},
	UP:    {X: 0, Y: -1},
	RIGHT: {X: 1, Y: 0},
	DOWN:  {X: 0, Y: 1},
	LEFT:  {X: -1, Y: 0},
}

var opposites = [...]Direction{
	NONE:  NONE,
	UP:    DOWN,
	RIGHT: LEFT,
	DOWN:  UP,
	LEFT:  RIGHT,
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= UP && d <= LEFT
}

// ToPoint converte una Direction in un vettore di spostamento
func (d Direction) ToPoint() Point {
	if d < NONE || int(d) >= len(deltas) {
		return Point{}
	}
	return deltas[d]
}

// Opposite returns the reverse of d. NONE is its own opposite.
func (d Direction) Opposite() Direction {
	if d < NONE || int(d) >= len(opposites) {
		return NONE
	}
	return opposites[d]
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}
