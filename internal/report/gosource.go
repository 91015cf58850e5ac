package report

import (
	"bytes"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"tictactoe/internal/engine"
)

const indicesPerLine = 12

var sourceTmpl = template.Must(template.New("lookup").Parse(`// Code generated by tictactoe report; DO NOT EDIT.

package {{.Package}}

// Outcome is the value of a position for X with perfect play.
type Outcome int8

const (
	XLoses Outcome = -1
	Draw   Outcome = 0
	XWins  Outcome = 1
)

// Lookup maps a board index (X in bits 0-8, O in bits 9-17) to its outcome.
// ok is false for positions that cannot occur in a legal game.
func Lookup(index uint32) (outcome Outcome, ok bool) {
	switch index {
{{- range .Groups}}
	case {{.Cases}}:
		return {{.Name}}, true
{{- end}}
	}
	return Draw, false
}
`))

type caseGroup struct {
	Name  string
	Cases string
}

// WriteGoSource generates a Go file whose Lookup switch groups the raw
// table indices by outcome.
func WriteGoSource(w io.Writer, t *engine.Table, pkg string) error {
	if pkg == "" {
		pkg = "lookup"
	}
	grouped := lo.GroupBy(Entries(t), func(e Entry) Outcome { return e.Outcome })

	var groups []caseGroup
	for _, o := range []Outcome{XWins, Draw, XLoses} {
		entries := grouped[o]
		if len(entries) == 0 {
			continue
		}
		lines := lo.Map(lo.Chunk(entries, indicesPerLine), func(chunk []Entry, _ int) string {
			return strings.Join(lo.Map(chunk, func(e Entry, _ int) string {
				return strconv.FormatUint(uint64(e.Index), 10)
			}), ", ")
		})
		groups = append(groups, caseGroup{
			Name:  outcomeIdent(o),
			Cases: strings.Join(lines, ",\n\t\t"),
		})
	}

	var buf bytes.Buffer
	if err := sourceTmpl.Execute(&buf, struct {
		Package string
		Groups  []caseGroup
	}{pkg, groups}); err != nil {
		return errors.Wrap(err, "render lookup source")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "gofmt lookup source")
	}
	_, err = w.Write(src)
	return errors.Wrap(err, "write lookup source")
}

func outcomeIdent(o Outcome) string {
	switch o {
	case XWins:
		return "XWins"
	case XLoses:
		return "XLoses"
	}
	return "Draw"
}
