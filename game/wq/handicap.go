package 围碁

import (
	"github.com/gorgonia/godash/game"
	"github.com/pkg/errors"
)

// MaxHandicap is the largest fixed handicap.
const MaxHandicap = 9

var (
	Tengen9  = game.Coord{X: 4, Y: 4}
	Tengen13 = game.Coord{X: 6, Y: 6}
	Tengen19 = game.Coord{X: 9, Y: 9}
)

// HandicapPoints are the fixed handicap points of one board size.
// Stars are listed in the order they are filled; the tengen is used for odd handicaps above 4.
type HandicapPoints struct {
	Stars  [8]game.Coord
	Tengen game.Coord
}

// HandicapTable maps a board size to its fixed handicap points.
type HandicapTable map[int]HandicapPoints

// StandardHandicaps are the usual fixed handicap points for 9x9, 13x13 and 19x19.
var StandardHandicaps = HandicapTable{
	9: {
		Stars: [8]game.Coord{
			{X: 2, Y: 2}, {X: 6, Y: 6}, {X: 2, Y: 6}, {X: 6, Y: 2},
			{X: 6, Y: 4}, {X: 2, Y: 4}, {X: 4, Y: 2}, {X: 4, Y: 6},
		},
		Tengen: Tengen9,
	},
	13: {
		Stars: [8]game.Coord{
			{X: 3, Y: 3}, {X: 9, Y: 9}, {X: 3, Y: 9}, {X: 9, Y: 3},
			{X: 9, Y: 6}, {X: 3, Y: 6}, {X: 6, Y: 3}, {X: 6, Y: 9},
		},
		Tengen: Tengen13,
	},
	19: {
		Stars: [8]game.Coord{
			{X: 3, Y: 3}, {X: 15, Y: 15}, {X: 15, Y: 3}, {X: 3, Y: 15},
			{X: 15, Y: 9}, {X: 3, Y: 9}, {X: 9, Y: 3}, {X: 9, Y: 15},
		},
		Tengen: Tengen19,
	},
}

// Points returns the black stones for a fixed handicap on a board of the given size.
func (t HandicapTable) Points(size, handicap int) ([]game.Coord, error) {
	pts, ok := t[size]
	if !ok {
		return nil, validationErrorf("no fixed handicap points for a %dx%d board", size, size)
	}
	if handicap < 0 || handicap > MaxHandicap {
		return nil, validationErrorf("handicap must be an integer between 0 and %d. Got %d", MaxHandicap, handicap)
	}

	var retVal []game.Coord
	switch {
	case handicap < 5:
		retVal = append(retVal, pts.Stars[:handicap]...)
	case handicap == 5:
		retVal = append(retVal, pts.Stars[:4]...)
		retVal = append(retVal, pts.Tengen)
	case handicap == 6 || handicap == 8:
		retVal = append(retVal, pts.Stars[:handicap]...)
	default: // 7 and 9
		retVal = append(retVal, pts.Stars[:handicap-1]...)
		retVal = append(retVal, pts.Tengen)
	}
	return retVal, nil
}

// Board returns an empty board with the handicap stones placed.
func (t HandicapTable) Board(size, handicap int) (*Board, error) {
	pts, err := t.Points(size, handicap)
	if err != nil {
		return nil, err
	}
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return b.PlaceStones(pts, Black, false)
}

// HandicapBoard is StandardHandicaps.Board.
func HandicapBoard(size, handicap int) (*Board, error) {
	b, err := StandardHandicaps.Board(size, handicap)
	return b, errors.WithMessage(err, "Unable to make handicap board")
}

// ConstructBoard plays the coordinates in order onto b, alternating colours and starting with start.
// A nil b means an empty 19x19 board.
func ConstructBoard(cs []game.Coord, b *Board, start game.Colour) (*Board, error) {
	if b == nil {
		var err error
		if b, err = NewBoard(19); err != nil {
			return nil, err
		}
	}
	colour := start
	for i, c := range cs {
		var err error
		if b, err = b.AddMove(c, colour); err != nil {
			return nil, errors.WithMessagef(err, "move %d", i)
		}
		colour = game.Opponent(colour)
	}
	return b, nil
}
