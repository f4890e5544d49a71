package sgf

import (
	"io"
	"strings"
)

func writeVariation(w *strings.Builder, v *Variation) {
	w.WriteByte('(')
	for _, n := range v.Nodes {
		writeNode(w, n)
	}
	for _, b := range v.Branches {
		writeVariation(w, b)
	}
	w.WriteByte(')')
}

func writeNode(w *strings.Builder, n Node) {
	w.WriteByte(';')
	for _, k := range n.Keys() {
		w.WriteString(k)
		for _, v := range n[k] {
			w.WriteByte('[')
			w.WriteString(escape(v))
			w.WriteByte(']')
		}
	}
}

// Write writes the game trees to w as one SGF collection.
func Write(w io.Writer, trees ...*Variation) error {
	var buf strings.Builder
	for i, t := range trees {
		if i > 0 {
			buf.WriteByte('\n')
		}
		writeVariation(&buf, t)
	}
	buf.WriteByte('\n')
	_, err := io.WriteString(w, buf.String())
	return err
}
