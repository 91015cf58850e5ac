package report

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

func solvedTable(t *testing.T) *engine.Table {
	t.Helper()
	e := engine.NewEngine()
	require.Equal(t, engine.Drawing, e.Solve().Score)
	return e.Table()
}

func TestDecodeUsesXPointOfView(t *testing.T) {
	xWon := tictactoe.Board{X: tictactoe.TopRow, O: 0b000_000_011}
	e := Decode(xWon.Index(), engine.Losing)
	assert.False(t, e.XToMove)
	assert.Equal(t, XWins, e.Outcome)

	oWon := tictactoe.Board{X: 0b000_011_001, O: tictactoe.TopRow}
	e = Decode(oWon.Index(), engine.Losing)
	assert.True(t, e.XToMove)
	assert.Equal(t, XLoses, e.Outcome)

	e = Decode(0, engine.Drawing)
	assert.Equal(t, Draw, e.Outcome)
	assert.Equal(t, tictactoe.Empty, e.Board)
}

func TestWriteText(t *testing.T) {
	tab := solvedTable(t)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, tab))

	out := buf.String()
	assert.Equal(t, tab.Known(), strings.Count(out, separator+"\n\n"))
	assert.True(t, strings.HasPrefix(out, tictactoe.Empty.String()+"\nThis can be drawn\n"+separator+"\n\n"), out[:80])
	assert.Contains(t, out, "X is winning\n")
	assert.Contains(t, out, "O is winning\n")
}

func TestSummarize(t *testing.T) {
	tab := solvedTable(t)
	s := Summarize(tab)
	assert.Equal(t, tab.Known(), s.Positions)
	assert.Equal(t, s.Positions, s.XWins+s.Draws+s.XLoses)
	assert.Positive(t, s.XWins)
	assert.Positive(t, s.XLoses)
	assert.Positive(t, s.Draws)
}

func TestWriteGoSourceParses(t *testing.T) {
	tab := solvedTable(t)
	var buf bytes.Buffer
	require.NoError(t, WriteGoSource(&buf, tab, "oracle"))

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "lookup.go", buf.Bytes(), 0)
	require.NoError(t, err)
	assert.Equal(t, "oracle", f.Name.Name)

	var cases, values int
	ast.Inspect(f, func(n ast.Node) bool {
		if cc, ok := n.(*ast.CaseClause); ok {
			cases++
			values += len(cc.List)
		}
		return true
	})
	assert.Equal(t, 3, cases)
	assert.Equal(t, tab.Known(), values)
}

func TestWriteGoSourceDefaultsPackage(t *testing.T) {
	tab := engine.NewTable()
	tab.Store(0, engine.Drawing)
	var buf bytes.Buffer
	require.NoError(t, WriteGoSource(&buf, tab, ""))
	assert.Contains(t, buf.String(), "package lookup")
	assert.Contains(t, buf.String(), "case 0:")
}
