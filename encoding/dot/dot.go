// Package dot exports a game tree as a Graphviz graph.
package dot

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/godash/game"
	wq "github.com/gorgonia/godash/game/wq"
	"github.com/gorgonia/godash/sgf"
	"github.com/pkg/errors"
)

const graphName = "G"

// Options controls what goes into each node's label.
type Options struct {
	// Boards replays the tree and draws the position after each node.
	Boards bool
}

type labelled struct {
	ID      int
	Move    string
	Comment string
	board   *wq.Board
}

// State draws the board one row per line.
func (l *labelled) State() string {
	if l.board == nil {
		return ""
	}
	var buf bytes.Buffer
	size := l.board.Size()
	for x := 0; x < size; x++ {
		fmt.Fprint(&buf, "⎢ ")
		for y := 0; y < size; y++ {
			fmt.Fprintf(&buf, "%s ", l.board.At(game.Coord{X: x, Y: y}))
		}
		fmt.Fprint(&buf, "⎥<BR />")
	}
	return buf.String()
}

type exporter struct {
	g    *gographviz.Graph
	opts Options
	next int
	buf  bytes.Buffer
}

// ToDot returns the DOT source for the tree rooted at v. Every node is a graph node,
// with edges following the order of play and forking at each variation.
func ToDot(v *sgf.Variation, opts Options) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	e := &exporter{g: g, opts: opts}
	var board *wq.Board
	if opts.Boards {
		size, err := sgf.BoardSize(v.Root())
		if err != nil {
			return "", err
		}
		if board, err = wq.NewBoard(size); err != nil {
			return "", err
		}
	}
	if err := e.walk(v, "", board); err != nil {
		return "", err
	}
	return g.String(), nil
}

func (e *exporter) walk(v *sgf.Variation, parent string, board *wq.Board) error {
	for _, n := range v.Nodes {
		if board != nil {
			var err error
			if board, err = sgf.PlayNode(board, n); err != nil {
				return errors.WithMessagef(err, "node %d", e.next)
			}
		}
		name, err := e.addNode(n, board)
		if err != nil {
			return err
		}
		if parent != "" {
			if err := e.g.AddEdge(parent, name, true, nil); err != nil {
				return errors.WithStack(err)
			}
		}
		parent = name
	}
	for _, b := range v.Branches {
		if err := e.walk(b, parent, board); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) addNode(n sgf.Node, board *wq.Board) (string, error) {
	l := &labelled{
		ID:      e.next,
		Move:    describe(n),
		Comment: n.Get("C"),
		board:   board,
	}
	e.next++

	e.buf.Reset()
	if err := tmpl.Execute(&e.buf, l); err != nil {
		return "", errors.WithStack(err)
	}
	attrs := map[string]string{
		"fontname": "Monaco",
		"shape":    "none",
		"label":    e.buf.String(),
	}
	name := fmt.Sprintf("n%d", l.ID)
	if err := e.g.AddNode(graphName, name, attrs); err != nil {
		return "", errors.WithStack(err)
	}
	return name, nil
}

func describe(n sgf.Node) string {
	m, ok, err := sgf.MoveOf(n, sgf.DefaultSize)
	switch {
	case err != nil:
		return "?"
	case !ok:
		return "-"
	case wq.IsPass(m.Coord):
		return fmt.Sprintf("%v pass", m.Colour)
	}
	return fmt.Sprintf("%v", m)
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Node</TD><TD>{{.ID}}</TD></TR>
<TR><TD>Move</TD><TD>{{.Move | html}}</TD></TR>
{{- if .Comment}}
<TR><TD>Comment</TD><TD>{{.Comment | html}}</TD></TR>
{{- end}}
{{- with .State}}
<TR><TD>State</TD><TD>{{.}}</TD></TR>
{{- end}}
</TABLE>
>`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("node").Parse(tmplRaw))
}
