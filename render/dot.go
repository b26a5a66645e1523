package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

const tmplDOT = `graph G {
  layout=neato;
  node [shape=circle style=filled fontcolor=white color=white];
{{- range .Nodes}}
  {{quote .ID}} [fillcolor="{{.Color}}" pos="{{pos .Position}}"];
{{- end}}
{{- range .Edges}}
  {{quote .From}} -- {{quote .To}} [color="{{.Style.Color}}" penwidth={{width .Style.Width}}{{with .Label}} label="{{.}}"{{end}}];
{{- end}}
}
`

var dotTemplate = template.Must(template.New("dot").Funcs(template.FuncMap{
	"quote": dotQuote,
	"pos":   pinned,
	"width": func(w float64) string { return core.FormatWeight(w) },
}).Parse(tmplDOT))

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote renders s as a DOT double-quoted ID. Only the backslash and the
// quote are escaped; every other rune is written as is.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// pinned formats p as a neato position. neato's y axis grows upwards and the
// canvas's grows downwards.
func pinned(p core.Point) string {
	y := -p.Y
	if y == 0 {
		y = 0 // no "-0"
	}

	return fmt.Sprintf("%s,%s!", core.FormatWeight(p.X), core.FormatWeight(y))
}

type dotNode struct {
	ID       string
	Color    core.Color
	Position core.Point
}

type dotEdge struct {
	From, To string
	Style    core.EdgeStyle
	// Label is the weight, left empty for default-weighted edges.
	Label string
}

// WriteDOT renders g with the styles in sc as a Graphviz document. Each
// unordered pair is drawn once.
func WriteDOT(w io.Writer, g *core.Graph, sc *core.Scene) error {
	data := struct {
		Nodes []dotNode
		Edges []dotEdge
	}{}
	for _, id := range g.Vertices() {
		data.Nodes = append(data.Nodes, dotNode{ID: id, Color: sc.NodeColor(id), Position: g.Position(id)})
	}
	for _, e := range uniqueEdges(g) {
		de := dotEdge{From: e.From, To: e.To, Style: sc.EdgeStyle(e.From, e.To)}
		if e.Weight != core.DefaultWeight {
			de.Label = core.FormatWeight(e.Weight)
		}
		data.Edges = append(data.Edges, de)
	}

	var buf bytes.Buffer
	if err := dotTemplate.Execute(&buf, data); err != nil {
		return errors.Wrap(err, "render: dot template")
	}
	_, err := buf.WriteTo(w)

	return err
}

// DOT is a renderer that rewrites a whole DOT document on every frame, which
// suits a sink that keeps only the latest frame.
type DOT struct {
	w io.Writer
}

// NewDOT returns a DOT renderer writing to w.
func NewDOT(w io.Writer) *DOT { return &DOT{w: w} }

// Draw writes the frame as a DOT document.
func (d *DOT) Draw(g *core.Graph, sc *core.Scene) error {
	return WriteDOT(d.w, g, sc)
}
