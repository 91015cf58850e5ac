package tictactoe

import "strings"

// ParseCell reads a move token such as "b2": file a-c, then rank 1-3.
// Surrounding whitespace is ignored; anything else is rejected.
func ParseCell(token string) (int, bool) {
	token = strings.TrimSpace(token)
	if len(token) != 2 {
		return 0, false
	}
	col := int(token[0]) - 'a'
	row := int(token[1]) - '1'
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return 0, false
	}
	return indexOf(row, col), true
}

// CellName is the inverse of ParseCell.
func CellName(i int) string {
	checkCell(i)
	return string([]byte{byte('a' + colOf(i)), byte('1' + rowOf(i))})
}
