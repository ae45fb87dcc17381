package game

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Board is the padded 10x10 grid. Border cells are always Outer and are
// never written by game logic. Board is a value type: assigning it copies it.
type Board [BoardSize]Cell

// EmptyBoard returns a board with the border set and no pieces placed.
func EmptyBoard() Board {
	var b Board
	for i := range b {
		b[i] = Outer
	}
	for _, sq := range squares {
		b[sq] = Empty
	}
	return b
}

// NewBoard returns the standard opening position.
func NewBoard() Board {
	b := EmptyBoard()
	b[44], b[55] = White, White
	b[45], b[54] = Black, Black
	return b
}

// Copy returns a private copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// IsValid reports whether move is one of the 64 playable squares.
func IsValid(move Square) bool {
	return slices.Contains(squares, move)
}

// FindBracket returns the square that closes a line of opponent pieces
// starting next to square in direction d, or NoMove if there is none.
func FindBracket(square Square, player Player, b *Board, d Square) Square {
	bracket := square + d
	if b[bracket] == player {
		return NoMove
	}
	opp := Opponent(player)
	for b[bracket] == opp {
		bracket += d
	}
	if b[bracket] == Outer || b[bracket] == Empty {
		return NoMove
	}
	return bracket
}

// IsLegal reports whether player may place a piece on move.
func IsLegal(move Square, player Player, b *Board) bool {
	if b[move] != Empty {
		return false
	}
	for _, d := range directions {
		if FindBracket(move, player, b, d) != NoMove {
			return true
		}
	}
	return false
}

// LegalMoves returns the legal squares for player in row-major order.
func LegalMoves(player Player, b *Board) []Square {
	var moves []Square
	for _, sq := range squares {
		if IsLegal(sq, player, b) {
			moves = append(moves, sq)
		}
	}
	return moves
}

// AnyLegalMove reports whether player has at least one legal move.
func AnyLegalMove(player Player, b *Board) bool {
	for _, sq := range squares {
		if IsLegal(sq, player, b) {
			return true
		}
	}
	return false
}

// IsTerminal reports whether neither player has a legal move.
func IsTerminal(b *Board) bool {
	return !AnyLegalMove(Black, b) && !AnyLegalMove(White, b)
}

// MakeMove places player's piece on move and flips every bracketed line.
// It mutates b in place; callers that need the original must pass a copy.
func MakeMove(move Square, player Player, b *Board) *Board {
	b[move] = player
	for _, d := range directions {
		makeFlips(move, player, b, d)
	}
	return b
}

func makeFlips(move Square, player Player, b *Board, d Square) {
	bracket := FindBracket(move, player, b, d)
	if bracket == NoMove {
		return
	}
	for sq := move + d; sq != bracket; sq += d {
		b[sq] = player
	}
}

// Count returns the number of pieces player has on the board.
func (b *Board) Count(player Player) int {
	n := 0
	for _, sq := range squares {
		if b[sq] == player {
			n++
		}
	}
	return n
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  1 2 3 4 5 6 7 8\n")
	for row := 1; row <= 8; row++ {
		sb.WriteByte(byte('0' + row))
		for col := 1; col <= 8; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(b[row*Stride+col].symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
