package tictactoe

func mapCells(b BitBoard, f func(row, col int) (int, int)) BitBoard {
	var out BitBoard
	for b != EmptyBoard {
		sq := b.Pop()
		r, c := f(rowOf(sq), colOf(sq))
		out.Set(indexOf(r, c))
	}
	return out
}

// Rotate turns the field a quarter turn.
func (b BitBoard) Rotate() BitBoard {
	return mapCells(b, func(row, col int) (int, int) { return col, Cols - 1 - row })
}

// Mirror swaps files a and c.
func (b BitBoard) Mirror() BitBoard {
	return mapCells(b, func(row, col int) (int, int) { return row, Cols - 1 - col })
}

func (b Board) Rotate() Board { return Board{X: b.X.Rotate(), O: b.O.Rotate()} }
func (b Board) Mirror() Board { return Board{X: b.X.Mirror(), O: b.O.Mirror()} }

// Symmetries returns the eight images of b under the dihedral group,
// starting with b itself.
func (b Board) Symmetries() [8]Board {
	var out [8]Board
	cur := b
	for i := 0; i < 4; i++ {
		out[i] = cur
		out[i+4] = cur.Mirror()
		cur = cur.Rotate()
	}
	return out
}
