package sgf

import (
	"strings"
)

// Variation is a sequence of nodes shared by all of its lines, optionally followed by branches.
// Each branch is itself a Variation.
type Variation struct {
	Nodes    []Node
	Branches []*Variation
}

// MainLine follows the first branch at every fork and returns the nodes along the way.
func (v *Variation) MainLine() []Node {
	var retVal []Node
	for cur := v; cur != nil; {
		retVal = append(retVal, cur.Nodes...)
		if len(cur.Branches) == 0 {
			break
		}
		cur = cur.Branches[0]
	}
	return retVal
}

// Root returns the first node of the variation, or nil if it has none.
func (v *Variation) Root() Node {
	if len(v.Nodes) == 0 {
		return nil
	}
	return v.Nodes[0]
}

// Nested returns the variation as plain nested data: the nodes in order, followed by
// a []interface{} of branches if there are any, each branch nested the same way.
func (v *Variation) Nested() []interface{} {
	retVal := make([]interface{}, 0, len(v.Nodes)+1)
	for _, n := range v.Nodes {
		retVal = append(retVal, flatten(n))
	}
	if len(v.Branches) > 0 {
		branches := make([]interface{}, 0, len(v.Branches))
		for _, b := range v.Branches {
			branches = append(branches, b.Nested())
		}
		retVal = append(retVal, branches)
	}
	return retVal
}

// flatten keeps the first value of every property.
func flatten(n Node) map[string]string {
	retVal := make(map[string]string, len(n))
	for k := range n {
		retVal[k] = n.Get(k)
	}
	return retVal
}

// String writes the variation back out as SGF.
func (v *Variation) String() string {
	var buf strings.Builder
	writeVariation(&buf, v)
	return buf.String()
}

// CompactMoves groups the properties following each NewNode token into a Node.
// Structural tokens pass through unchanged.
func CompactMoves(tokens []Token) ([]Item, error) {
	var retVal []Item
	var current *Item

	flush := func() {
		if current != nil {
			retVal = append(retVal, *current)
			current = nil
		}
	}

	for _, tok := range tokens {
		switch tok.Type {
		case StartVariation, EndVariation:
			flush()
			retVal = append(retVal, Item{Type: tok.Type, Offset: tok.Offset})
		case NewNode:
			flush()
			current = &Item{Type: NewNode, Node: make(Node), Offset: tok.Offset}
		case Property:
			if current == nil {
				return nil, parseErrorf(tok.Offset, "property %s outside of a node", tok.Key)
			}
			current.Node[tok.Key] = append(current.Node[tok.Key], tok.Value)
		default:
			return nil, parseErrorf(tok.Offset, "unknown token %v", tok.Type)
		}
	}
	flush()
	return retVal, nil
}

// Parse parses an SGF string into its first game tree.
func Parse(sgf string) (*Variation, error) {
	trees, err := ParseCollection(sgf)
	if err != nil {
		return nil, err
	}
	return trees[0], nil
}

// ParseCollection parses every game tree in an SGF string.
func ParseCollection(sgf string) ([]*Variation, error) {
	tokens, err := Tokenize(sgf)
	if err != nil {
		return nil, err
	}
	items, err := CompactMoves(tokens)
	if err != nil {
		return nil, err
	}
	return assemble(items)
}

// assemble builds variations from compacted items with a stack of the variations being filled.
func assemble(items []Item) ([]*Variation, error) {
	var trees []*Variation
	var stack []*Variation

	for _, it := range items {
		switch it.Type {
		case StartVariation:
			next := &Variation{}
			if len(stack) == 0 {
				trees = append(trees, next)
			} else {
				current := stack[len(stack)-1]
				current.Branches = append(current.Branches, next)
			}
			stack = append(stack, next)
		case EndVariation:
			if len(stack) == 0 {
				return nil, parseErrorf(it.Offset, "unbalanced ')'")
			}
			stack = stack[:len(stack)-1]
		case NewNode:
			if len(stack) == 0 {
				return nil, parseErrorf(it.Offset, "node outside of a game tree")
			}
			current := stack[len(stack)-1]
			if len(current.Branches) > 0 {
				return nil, parseErrorf(it.Offset, "node after variations")
			}
			current.Nodes = append(current.Nodes, it.Node)
		}
	}

	if len(stack) > 0 {
		return nil, parseErrorf(-1, "%d unclosed '('", len(stack))
	}
	if len(trees) == 0 {
		return nil, parseErrorf(-1, "no game tree")
	}
	return trees, nil
}
