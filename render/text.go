package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// Text writes each frame as a single line:
//
//	#3  A:green B:blue C:amber D E F  |  A-C:orange/3
//
// In colour mode vertex tokens are painted and the ":name" suffix is dropped.
// Untouched vertices are printed bare; untouched edges are omitted.
type Text struct {
	w       io.Writer
	edges   bool
	noColor bool
	frame   int
}

// TextOption configures a Text renderer.
type TextOption func(*Text)

// WithEdges toggles the edge section of each frame. It is on by default.
func WithEdges(on bool) TextOption {
	return func(t *Text) { t.edges = on }
}

// WithNoColor forces plain output regardless of the terminal.
func WithNoColor(on bool) TextOption {
	return func(t *Text) { t.noColor = on }
}

// NewText returns a Text renderer writing to w. Colour follows color.NoColor
// unless WithNoColor says otherwise.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{w: w, edges: true, noColor: color.NoColor}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Frames returns how many frames have been drawn.
func (t *Text) Frames() int { return t.frame }

// Draw writes the current frame.
func (t *Text) Draw(g *core.Graph, sc *core.Scene) error {
	t.frame++
	var b strings.Builder
	fmt.Fprintf(&b, "#%d ", t.frame)
	for _, id := range g.Vertices() {
		b.WriteByte(' ')
		b.WriteString(t.node(id, sc.NodeColor(id)))
	}
	if t.edges {
		if hl := highlighted(g, sc); len(hl) > 0 {
			b.WriteString("  | ")
			for _, e := range hl {
				st := sc.EdgeStyle(e.From, e.To)
				b.WriteByte(' ')
				b.WriteString(t.paint(st.Color, fmt.Sprintf("%s-%s", e.From, e.To)))
				fmt.Fprintf(&b, ":%s/%s", ColorName(st.Color), core.FormatWeight(st.Width))
			}
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(t.w, b.String())

	return err
}

func (t *Text) node(id string, c core.Color) string {
	if c == core.ColorDefault {
		return id
	}
	if t.noColor {
		return id + ":" + ColorName(c)
	}

	return t.paint(c, id)
}

func (t *Text) paint(c core.Color, s string) string {
	if t.noColor {
		return s
	}
	p := color.New(Attribute(c), color.Bold)
	p.EnableColor()

	return p.Sprint(s)
}

// highlighted lists each unordered pair once, in declaration order, when its
// style differs from the default.
func highlighted(g *core.Graph, sc *core.Scene) []core.Edge {
	var out []core.Edge
	for _, e := range uniqueEdges(g) {
		if sc.EdgeStyle(e.From, e.To) != core.DefaultEdgeStyle {
			out = append(out, e)
		}
	}

	return out
}
