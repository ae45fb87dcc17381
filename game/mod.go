package game

// Cell is the content of one square of the padded board.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
	Outer
)

// Player is the side to move. Only Black and White are players.
type Player = Cell

// Square is a flat index into the padded 10x10 board.
type Square int

// NoMove marks an absent move (leaf, terminal or pass results).
const NoMove Square = -1

const (
	BoardSize = 100 // 10x10 with a one-cell border
	Stride    = 10
)

// Direction offsets in the padded addressing scheme.
const (
	Up        Square = -Stride
	Down      Square = Stride
	Left      Square = -1
	Right     Square = 1
	UpRight   Square = -Stride + 1
	DownRight Square = Stride + 1
	DownLeft  Square = Stride - 1
	UpLeft    Square = -Stride - 1
)

var directions = [8]Square{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

var squares = func() []Square {
	s := make([]Square, 0, 64)
	for i := Square(11); i < 89; i++ {
		if col := i % Stride; col >= 1 && col <= 8 {
			s = append(s, i)
		}
	}
	return s
}()

// Squares returns the 64 playable squares in row-major order.
func Squares() []Square {
	out := make([]Square, len(squares))
	copy(out, squares)
	return out
}

// Opponent returns the other player.
func Opponent(p Player) Player {
	if p == White {
		return Black
	}
	return White
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	case Outer:
		return "Outer"
	}
	return "Unknown"
}

func (c Cell) symbol() byte {
	switch c {
	case Black:
		return '@'
	case White:
		return 'o'
	case Empty:
		return '.'
	}
	return '?'
}
