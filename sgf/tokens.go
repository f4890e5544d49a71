// Package sgf reads and writes game records in the Smart Game Format.
//
// Parsing happens in three steps. Tokenize scans raw text into a flat stream of tokens.
// CompactMoves collects the properties that follow each ';' into a Node. Parse then
// assembles the nodes into a tree of Variations using the parentheses.
//
// See https://www.red-bean.com/sgf/ for the format.
package sgf

import (
	"fmt"
	"sort"
	"strings"
)

// TokenType is the kind of a Token.
type TokenType int

const (
	StartVariation TokenType = iota // (
	EndVariation                    // )
	NewNode                         // ;
	Property                        // KEY[value]
)

func (t TokenType) String() string {
	switch t {
	case StartVariation:
		return "("
	case EndVariation:
		return ")"
	case NewNode:
		return ";"
	case Property:
		return "Property"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one lexical element of an SGF string. Key and Value are only set for Property tokens.
// Value is unescaped.
type Token struct {
	Type   TokenType
	Key    string
	Value  string
	Offset int // byte offset of the token in the input
}

func (t Token) String() string {
	if t.Type == Property {
		return fmt.Sprintf("%s[%s]", t.Key, escape(t.Value))
	}
	return t.Type.String()
}

// Node is a set of properties. Each key maps to its values in the order they were written;
// most properties have exactly one.
type Node map[string][]string

// Get returns the first value of key, or "" if the node does not have it.
func (n Node) Get(key string) string {
	if vs := n[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Has returns true if the node carries key.
func (n Node) Has(key string) bool {
	_, ok := n[key]
	return ok
}

// Keys returns the property keys in sorted order.
func (n Node) Keys() []string {
	retVal := make([]string, 0, len(n))
	for k := range n {
		retVal = append(retVal, k)
	}
	sort.Strings(retVal)
	return retVal
}

func (n Node) String() string {
	var buf strings.Builder
	writeNode(&buf, n)
	return buf.String()
}

// Item is an element of a compacted token stream: a structural token or a whole node.
type Item struct {
	Type   TokenType // StartVariation, EndVariation or NewNode
	Node   Node      // set when Type is NewNode
	Offset int
}

func (it Item) String() string {
	if it.Type == NewNode {
		return it.Node.String()
	}
	return it.Type.String()
}
