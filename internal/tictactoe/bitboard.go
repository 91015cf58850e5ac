package tictactoe

import (
	"fmt"
	"math/bits"
	"strings"
)

const NumCells = 9

// BitBoard holds one player's marks: bit i set means cell i is occupied.
// Only the low 9 bits are used.
type BitBoard uint16

const (
	EmptyBoard BitBoard = 0
	Full       BitBoard = 0b111_111_111

	BottomRow BitBoard = 0b111
	MiddleRow BitBoard = 0b111 << 3
	TopRow    BitBoard = 0b111 << 6

	LeftColumn   BitBoard = 0b001_001_001
	MiddleColumn BitBoard = 0b010_010_010
	RightColumn  BitBoard = 0b100_100_100

	// a1-b2-c3 and c1-b2-a3
	MainDiagonal BitBoard = 0b100_010_001
	AntiDiagonal BitBoard = 0b001_010_100
)

// Lines are the eight winning lines.
var Lines = [8]BitBoard{
	BottomRow, MiddleRow, TopRow,
	LeftColumn, MiddleColumn, RightColumn,
	MainDiagonal, AntiDiagonal,
}

func checkCell(i int) {
	if i < 0 || i >= NumCells {
		panic(fmt.Sprintf("tictactoe: cell %d out of range", i))
	}
}

// Set marks cell i. The caller guarantees the cell is free.
func (b *BitBoard) Set(i int) {
	checkCell(i)
	*b |= 1 << i
}

func (b BitBoard) Get(i int) bool {
	checkCell(i)
	return b&(1<<i) != 0
}

// Contains reports whether every bit of mask is also set in b.
func (b BitBoard) Contains(mask BitBoard) bool {
	return b&mask == mask
}

func (b BitBoard) Count() int {
	return bits.OnesCount16(uint16(b))
}

// Not is the complement restricted to the nine cells.
func (b BitBoard) Not() BitBoard {
	return ^b & Full
}

func (b BitBoard) IsEmpty() bool {
	return b == EmptyBoard
}

// First returns the lowest set cell. Panics on an empty field.
func (b BitBoard) First() int {
	if b == EmptyBoard {
		panic("tictactoe: First on empty BitBoard")
	}
	return bits.TrailingZeros16(uint16(b))
}

// Pop clears and returns the lowest set cell. Panics on an empty field.
func (b *BitBoard) Pop() int {
	i := b.First()
	*b &= *b - 1
	return i
}

func (b BitBoard) HasWon() bool {
	for _, line := range Lines {
		if b.Contains(line) {
			return true
		}
	}
	return false
}

// String draws the field as a 3x3 grid of 0/1, rank 3 first.
func (b BitBoard) String() string {
	var sb strings.Builder
	for row := 2; row >= 0; row-- {
		for col := 0; col < 3; col++ {
			if b.Get(row*3 + col) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if col != 2 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
