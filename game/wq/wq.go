// package 围碁 implements Go (the board game) related code
//
// 围碁 is a bastardized word.
// The first character is read "wei" in Chinese. The second is read "qi" in Chinese.
// However, the charcter 碁 is no longer actively used in Chinese.
// It is however, actively used in Japanese. Specifically, it's read "go" in Japanese.
//
// The main reason why this package is named with unicode characters instead of `package go`
// is because the standard library of the Go language have the prefix "go"
package 围碁

import (
	"fmt"

	"github.com/gorgonia/godash/game"
	"github.com/pkg/errors"
)

const (
	None  = game.None
	Black = game.Black
	White = game.White
)

// Board represents a board position.
//
// A Board is immutable. Every operation that would change the position returns a new *Board
// and leaves the receiver untouched, so boards may be freely shared between goroutines and
// kept around as history.
//
// Only stones are stored; an absent coordinate is empty.
type Board struct {
	size   int
	stones map[game.Coord]game.Colour
	hash   uint32
	z      *zobrist
}

// NewBoard creates a size x size board with the given stones on it.
// Stones are placed as-is; no capturing happens.
func NewBoard(size int, moves ...game.Move) (*Board, error) {
	if size <= 0 {
		return nil, validationErrorf("board size must be a positive integer. Got %d", size)
	}
	b := &Board{
		size:   size,
		stones: make(map[game.Coord]game.Colour, len(moves)),
		z:      zobristFor(size),
	}
	for _, m := range moves {
		if !game.IsValid(m.Colour) {
			return nil, validationErrorf("cannot place %v", m)
		}
		if !b.isCoordValid(m.Coord) {
			return nil, validationErrorf("%v is outside of a %dx%d board", m.Coord, size, size)
		}
		b.set(m.Coord, m.Colour)
	}
	return b, nil
}

// Size returns the length of a side of the board.
func (b *Board) Size() int { return b.size }

// At returns the colour of the stone at c, or None.
func (b *Board) At(c game.Coord) game.Colour { return b.stones[c] }

// Len returns the number of stones on the board.
func (b *Board) Len() int { return len(b.stones) }

// Hash returns the Zobrist hash of the position.
func (b *Board) Hash() uint32 { return b.hash }

// Moves returns the stones on the board in row-major order.
func (b *Board) Moves() []game.Move {
	retVal := make([]game.Move, 0, len(b.stones))
	for c, colour := range b.stones {
		retVal = append(retVal, game.Move{Coord: c, Colour: colour})
	}
	game.SortMoves(retVal)
	return retVal
}

// Dense returns the position as a row-major slice of size*size colours.
func (b *Board) Dense() []game.Colour {
	retVal := make([]game.Colour, b.size*b.size)
	for c, colour := range b.stones {
		retVal[c.X*b.size+c.Y] = colour
	}
	return retVal
}

// Eq checks that both boards hold the same position.
func (b *Board) Eq(other *Board) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	// easy to check stuff
	if b.size != other.size ||
		b.hash != other.hash ||
		len(b.stones) != len(other.stones) {
		return false
	}
	for c, colour := range b.stones {
		if oc, ok := other.stones[c]; !ok || oc != colour {
			return false
		}
	}
	return true
}

// Format implements fmt.Formatter
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		data := b.Dense()
		it := game.MakeIterator(data, b.size, b.size)
		defer game.ReturnIterator(b.size, b.size, it)
		for _, row := range it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

// clone copies the board so that the copy may be edited before it is handed out.
func (b *Board) clone() *Board {
	stones := make(map[game.Coord]game.Colour, len(b.stones)+1)
	for c, colour := range b.stones {
		stones[c] = colour
	}
	return &Board{
		size:   b.size,
		stones: stones,
		hash:   b.hash,
		z:      b.z,
	}
}

// set and del must only be called on a board that has not been handed out yet.
func (b *Board) set(c game.Coord, colour game.Colour) {
	if old, ok := b.stones[c]; ok {
		b.hash ^= b.z.key(c, old)
	}
	b.stones[c] = colour
	b.hash ^= b.z.key(c, colour)
}

func (b *Board) del(c game.Coord) {
	if old, ok := b.stones[c]; ok {
		b.hash ^= b.z.key(c, old)
		delete(b.stones, c)
	}
}

// adjacentsCoord returns the in-bounds positions adjacent to c.
func (b *Board) adjacentsCoord(c game.Coord) []game.Coord {
	retVal := make([]game.Coord, 0, len(adjacents))
	for _, adj := range adjacents {
		a := c.Add(adj)
		if b.isCoordValid(a) {
			retVal = append(retVal, a)
		}
	}
	return retVal
}

func (b *Board) isCoordValid(c game.Coord) bool { return c.In(b.size) }

func (b *Board) checkCoord(c game.Coord) error {
	if !b.isCoordValid(c) {
		return validationErrorf("%v is outside of a %dx%d board", c, b.size, b.size)
	}
	return nil
}

func checkColour(m game.Move) error {
	if !game.IsValid(m.Colour) {
		return errors.WithMessage(validationErrorf("cannot place %v", m), "Impossible colour")
	}
	return nil
}

var adjacents = [4]game.Coord{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}
