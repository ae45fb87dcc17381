package game

import (
	"errors"
	"fmt"
)

var (
	ErrBoardSize = errors.New("external board must have 64 cells")
	ErrCellValue = errors.New("invalid cell value")
)

// rowOffsets maps a padded row (1..8) to the value subtracted from a padded
// square to obtain its external 0-based index.
var rowOffsets = [9]Square{0, 11, 13, 15, 17, 19, 21, 23, 25}

// ParseBoard converts the external row-major 64-cell board (0 empty,
// 1 black, 2 white) into the padded representation.
func ParseBoard(cells []int) (Board, error) {
	if len(cells) != len(squares) {
		return Board{}, fmt.Errorf("%w: got %d", ErrBoardSize, len(cells))
	}
	b := EmptyBoard()
	for i, sq := range squares {
		if v := cells[i]; v < int(Empty) || v > int(White) {
			return Board{}, fmt.Errorf("%w %d at index %d", ErrCellValue, v, i)
		}
		b[sq] = Cell(cells[i])
	}
	return b, nil
}

// Cells is the inverse of ParseBoard.
func (b *Board) Cells() []int {
	out := make([]int, len(squares))
	for i, sq := range squares {
		out[i] = int(b[sq])
	}
	return out
}

// ExternalMove converts a padded square into the external 0-based index.
// It returns -1 for squares outside the playable set.
func ExternalMove(move Square) int {
	if !IsValid(move) {
		return -1
	}
	return int(move - rowOffsets[move/Stride])
}

// InternalMove converts an external 0-based index into a padded square.
// It returns NoMove for indices outside [0, 64).
func InternalMove(index int) Square {
	if index < 0 || index >= len(squares) {
		return NoMove
	}
	row, col := index/8, index%8
	return Square((row+1)*Stride + col + 1)
}
