package engine

// compactLine slides a line toward index 0, merging equal neighbours. A
// tile takes part in at most one merge per call. It returns the new line,
// the score gained and the number of merges.
func compactLine(line [Size]int) ([Size]int, int, int) {
	dense := make([]int, 0, Size)
	for _, v := range line {
		if v != 0 {
			dense = append(dense, v)
		}
	}

	var result [Size]int
	gained := 0
	merges := 0
	w := 0

	for i := 0; i < len(dense); i++ {
		cur := dense[i]
		if i+1 < len(dense) && dense[i+1] == cur {
			merged := cur * 2
			result[w] = merged
			gained += merged
			merges++
			i++ // the partner is consumed
		} else {
			result[w] = cur
		}
		w++
	}

	return result, gained, merges
}

func reverseLine(line [Size]int) [Size]int {
	var out [Size]int
	for i := 0; i < Size; i++ {
		out[i] = line[Size-1-i]
	}
	return out
}

// moveBoard applies a move to a copy of b and returns the result together
// with the total gained score and merge count. b itself is never modified.
func moveBoard(b Board, dir Direction) (Board, int, int) {
	out := b
	gainedTotal := 0
	mergesTotal := 0

	for i := 0; i < Size; i++ {
		var line [Size]int
		switch dir {
		case Left, Right:
			line = out[i]
		case Up, Down:
			for r := 0; r < Size; r++ {
				line[r] = out[r][i]
			}
		default:
			return b, 0, 0
		}

		reversed := dir == Right || dir == Down
		if reversed {
			line = reverseLine(line)
		}

		moved, gained, merges := compactLine(line)
		gainedTotal += gained
		mergesTotal += merges

		if reversed {
			moved = reverseLine(moved)
		}

		switch dir {
		case Left, Right:
			out[i] = moved
		case Up, Down:
			for r := 0; r < Size; r++ {
				out[r][i] = moved[r]
			}
		}
	}

	return out, gainedTotal, mergesTotal
}

// hasAvailableMoves is a conservative check: any empty cell, or any cell
// equal to its right or lower neighbour.
func hasAvailableMoves(b Board) bool {
	if countEmpty(b) > 0 {
		return true
	}

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b[r][c]
			if c+1 < Size && b[r][c+1] == v {
				return true
			}
			if r+1 < Size && b[r+1][c] == v {
				return true
			}
		}
	}

	return false
}
