package game

import (
	"fmt"
	"sort"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

// Opponent returns the opposing colour. The opponent of None is None.
func Opponent(c Colour) Colour {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return None
}

// IsValid checks that a colour can be placed on a board.
func IsValid(c Colour) bool { return c == Black || c == White }

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Coord represents a (row, col) coordinate.
//
// The Coord uses a standard computer cartesian coordinates
//		- (0, 0) represents the top left
//		- (18, 18) represents the bottom right of a 19x19 board
//
// A Coord carries no bound. Whether it fits a board is up to the board.
type Coord struct {
	X, Y int
}

func (c Coord) Add(other Coord) Coord { return Coord{c.X + other.X, c.Y + other.Y} }

func (c Coord) Eq(other Coord) bool { return c == other }

// In returns true if the coordinate lies on a size x size board.
func (c Coord) In(size int) bool { return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size }

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// less orders coordinates row-major.
func (c Coord) less(other Coord) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}

// Move is a tuple indicating the colour and the coordinate of a stone.
type Move struct {
	Coord
	Colour
}

// Eq returns true if both are equal
func (m Move) Eq(other Move) bool { return m == other }

func (m Move) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%v", m.Colour, m.Coord) }

// SortMoves sorts moves row-major by coordinate, then by colour.
func SortMoves(ms []Move) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Coord != ms[j].Coord {
			return ms[i].Coord.less(ms[j].Coord)
		}
		return ms[i].Colour < ms[j].Colour
	})
}

// CoordSet is a set of coordinates. Iteration order of the underlying map is
// not stable; use Sorted when order matters.
type CoordSet map[Coord]struct{}

// NewCoordSet makes a set out of the given coordinates.
func NewCoordSet(cs ...Coord) CoordSet {
	retVal := make(CoordSet, len(cs))
	for _, c := range cs {
		retVal[c] = struct{}{}
	}
	return retVal
}

func (s CoordSet) Add(c Coord) { s[c] = struct{}{} }
func (s CoordSet) Len() int    { return len(s) }

func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Union adds every member of other to s.
func (s CoordSet) Union(other CoordSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Eq checks that both sets hold the same coordinates.
func (s CoordSet) Eq(other CoordSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the members in row-major order.
func (s CoordSet) Sorted() []Coord {
	retVal := make([]Coord, 0, len(s))
	for c := range s {
		retVal = append(retVal, c)
	}
	sort.Slice(retVal, func(i, j int) bool { return retVal[i].less(retVal[j]) })
	return retVal
}
