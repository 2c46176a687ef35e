package engine

import (
	"fmt"
	"strings"
)

// emptyCells lists empty positions in row-major order
func emptyCells(b Board) []Position {
	var res []Position
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == 0 {
				res = append(res, Position{Row: r, Col: c})
			}
		}
	}
	return res
}

func countEmpty(b Board) int {
	count := 0
	for _, row := range b {
		for _, v := range row {
			if v == 0 {
				count++
			}
		}
	}
	return count
}

func hasValue(b Board, value int) bool {
	for _, row := range b {
		for _, v := range row {
			if v == value {
				return true
			}
		}
	}
	return false
}

func maxTile(b Board) int {
	best := 0
	for _, row := range b {
		for _, v := range row {
			if v > best {
				best = v
			}
		}
	}
	return best
}

// TileSum adds every value on the board.
func TileSum(b Board) int {
	sum := 0
	for _, row := range b {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// CountTiles counts the non-empty cells of a board.
func CountTiles(b Board) int {
	return Size*Size - countEmpty(b)
}

// MaxTileOf returns the largest value on the board.
func MaxTileOf(b Board) int {
	return maxTile(b)
}

// HasAvailableMoves reports whether the loss condition is not yet reached.
func HasAvailableMoves(b Board) bool {
	return hasAvailableMoves(b)
}

// Rows converts a board to nested slices, the shape used in JSON presets.
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := range b {
		rows[r] = make([]int, Size)
		copy(rows[r], b[r][:])
	}
	return rows
}

// String renders the board as a fixed-width grid, "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				sb.WriteString(fmt.Sprintf("%5s", "."))
			} else {
				sb.WriteString(fmt.Sprintf("%5d", v))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// isTileValue accepts 2, 4, 8, ...
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
