package sgf

import (
	"strconv"
	"strings"

	"github.com/gorgonia/godash/game"
	wq "github.com/gorgonia/godash/game/wq"
	"github.com/pkg/errors"
)

// DefaultSize is the board size used when the root node has no SZ.
const DefaultSize = 19

// BoardSize returns the board size declared by the root node.
func BoardSize(root Node) (int, error) {
	sz := root.Get("SZ")
	if sz == "" {
		return DefaultSize, nil
	}
	if i := strings.IndexByte(sz, ':'); i >= 0 {
		if sz[:i] != sz[i+1:] {
			return 0, errors.Errorf("Only square boards are supported. Got SZ[%s]", sz)
		}
		sz = sz[:i]
	}
	size, err := strconv.Atoi(strings.TrimSpace(sz))
	if err != nil {
		return 0, errors.WithMessagef(err, "Invalid SZ[%s]", sz)
	}
	return size, nil
}

// Points expands a list of SGF points, including compressed rectangles such as "aa:cc".
func Points(values []string) ([]game.Coord, error) {
	var retVal []game.Coord
	for _, v := range values {
		i := strings.IndexByte(v, ':')
		if i < 0 {
			c, err := PointToCoord(v)
			if err != nil {
				return nil, err
			}
			retVal = append(retVal, c)
			continue
		}

		from, err := PointToCoord(v[:i])
		if err != nil {
			return nil, err
		}
		to, err := PointToCoord(v[i+1:])
		if err != nil {
			return nil, err
		}
		if from.X > to.X {
			from.X, to.X = to.X, from.X
		}
		if from.Y > to.Y {
			from.Y, to.Y = to.Y, from.Y
		}
		for x := from.X; x <= to.X; x++ {
			for y := from.Y; y <= to.Y; y++ {
				retVal = append(retVal, game.Coord{X: x, Y: y})
			}
		}
	}
	return retVal, nil
}

// MoveOf returns the move recorded in a node. ok is false if the node has no B or W.
// A pass is reported with wq.Pass.
func MoveOf(n Node, size int) (m game.Move, ok bool, err error) {
	switch {
	case n.Has("B"):
		m.Colour = game.Black
	case n.Has("W"):
		m.Colour = game.White
	default:
		return m, false, nil
	}

	key := "B"
	if m.Colour == game.White {
		key = "W"
	}
	v := n.Get(key)
	if v == "" || (v == "tt" && size <= 19) {
		m.Coord = wq.Pass
		return m, true, nil
	}
	if m.Coord, err = PointToCoord(v); err != nil {
		return m, true, err
	}
	return m, true, nil
}

// Replay plays the main line of v onto a board and returns the position after each node.
// The first board is the position after the root node's setup.
func Replay(v *Variation) ([]*wq.Board, error) {
	nodes := v.MainLine()
	if len(nodes) == 0 {
		return nil, errors.New("Cannot replay an empty variation")
	}

	size, err := BoardSize(nodes[0])
	if err != nil {
		return nil, err
	}
	board, err := wq.NewBoard(size)
	if err != nil {
		return nil, err
	}

	retVal := make([]*wq.Board, 0, len(nodes))
	for i, n := range nodes {
		if board, err = PlayNode(board, n); err != nil {
			return nil, errors.WithMessagef(err, "node %d", i)
		}
		retVal = append(retVal, board)
	}
	return retVal, nil
}

// PlayNode applies the setup properties and the move of a node to board.
func PlayNode(board *wq.Board, n Node) (*wq.Board, error) {
	setup := []struct {
		key    string
		colour game.Colour
	}{
		{"AB", game.Black},
		{"AW", game.White},
	}
	for _, s := range setup {
		if !n.Has(s.key) {
			continue
		}
		cs, err := Points(n[s.key])
		if err != nil {
			return nil, err
		}
		if board, err = board.PlaceStones(cs, s.colour, true); err != nil {
			return nil, err
		}
	}
	if n.Has("AE") {
		cs, err := Points(n["AE"])
		if err != nil {
			return nil, err
		}
		board = board.RemoveStones(cs)
	}

	m, ok, err := MoveOf(n, board.Size())
	if err != nil {
		return nil, err
	}
	if !ok || wq.IsPass(m.Coord) {
		return board, nil
	}
	return board.AddMove(m.Coord, m.Colour)
}

// ToGame replays the main line into a Game. Setup properties are only honoured in the root node.
// At most moves moves are played; a negative moves plays them all.
func ToGame(v *Variation, moves int) (*wq.Game, error) {
	nodes := v.MainLine()
	if len(nodes) == 0 {
		return nil, errors.New("Cannot replay an empty variation")
	}
	root := nodes[0]
	size, err := BoardSize(root)
	if err != nil {
		return nil, err
	}
	board, err := wq.NewBoard(size)
	if err != nil {
		return nil, err
	}
	setup := make(Node)
	for _, k := range setupKeys {
		if vs, ok := root[k]; ok {
			setup[k] = vs
		}
	}
	if board, err = PlayNode(board, setup); err != nil {
		return nil, errors.WithMessage(err, "root setup")
	}

	g := wq.FromBoard(board, firstToMove(nodes, size))
	if km := root.Get("KM"); km != "" {
		komi, err := strconv.ParseFloat(strings.TrimSpace(km), 64)
		if err != nil {
			return nil, errors.WithMessagef(err, "Invalid KM[%s]", km)
		}
		g.SetKomi(komi)
	}

	played := 0
	for i, n := range nodes {
		if i > 0 && hasSetup(n) {
			return nil, errors.Errorf("node %d: setup properties after the root are not supported", i)
		}
		m, ok, err := MoveOf(n, size)
		if err != nil {
			return nil, errors.WithMessagef(err, "node %d", i)
		}
		if !ok {
			continue
		}
		if moves >= 0 && played >= moves {
			break
		}
		if err := g.Apply(m); err != nil {
			return nil, errors.WithMessagef(err, "node %d", i)
		}
		played++
	}
	return g, nil
}

var setupKeys = []string{"AB", "AW", "AE"}

func hasSetup(n Node) bool {
	for _, k := range setupKeys {
		if n.Has(k) {
			return true
		}
	}
	return false
}

// firstToMove is PL if the root has it, else the colour of the first move, else black.
func firstToMove(nodes []Node, size int) game.Colour {
	switch strings.ToUpper(nodes[0].Get("PL")) {
	case "B":
		return game.Black
	case "W":
		return game.White
	}
	for _, n := range nodes {
		if m, ok, err := MoveOf(n, size); ok && err == nil {
			return m.Colour
		}
	}
	return game.Black
}
