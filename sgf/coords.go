package sgf

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gorgonia/godash/game"
	"github.com/pkg/errors"
)

// MaxPoint is the largest coordinate an SGF point can express.
const MaxPoint = 51

func pointIndex(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 26, true
	}
	return 0, false
}

func pointByte(i int) (byte, bool) {
	switch {
	case i >= 0 && i < 26:
		return byte('a' + i), true
	case i >= 26 && i <= MaxPoint:
		return byte('A' + i - 26), true
	}
	return 0, false
}

// PointToCoord converts a two letter SGF point to a Coord: "hi" is (7, 8).
// Lowercase letters are 0-25 and uppercase letters are 26-51.
func PointToCoord(point string) (game.Coord, error) {
	if len(point) != 2 {
		return game.Coord{}, errors.Errorf("SGF point must be 2 characters long. Got %q", point)
	}
	x, okx := pointIndex(point[0])
	y, oky := pointIndex(point[1])
	if !okx || !oky {
		return game.Coord{}, errors.Errorf("invalid SGF point %q", point)
	}
	return game.Coord{X: x, Y: y}, nil
}

// CoordToPoint converts a Coord to a two letter SGF point: (0, 0) is "aa".
func CoordToPoint(c game.Coord) (string, error) {
	x, okx := pointByte(c.X)
	y, oky := pointByte(c.Y)
	if !okx || !oky {
		return "", errors.Errorf("%v cannot be written as an SGF point", c)
	}
	return string([]byte{x, y}), nil
}

// columns used by chess-like notation. There is no I.
const columns = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

var chessLike = regexp.MustCompile(`^([A-Za-z]{1,2})([1-9][0-9]*)$`)

func columnIndex(c byte) (int, bool) {
	i := strings.IndexByte(columns, c&^0x20) // upper case
	return i, i >= 0
}

// ChessLikeToCoord converts notation such as "D4" to a Coord. The letters give X and the number gives Y+1.
//
// Letters are case insensitive and skip I. Columns past Z are written with two letters, so "AA10" is (25, 9).
func ChessLikeToCoord(s string) (game.Coord, error) {
	m := chessLike.FindStringSubmatch(s)
	if m == nil {
		return game.Coord{}, errors.Errorf("invalid coordinate %q", s)
	}

	letters := m[1]
	x, ok := columnIndex(letters[0])
	if !ok {
		return game.Coord{}, errors.Errorf("invalid column in %q", s)
	}
	if len(letters) == 2 {
		second, ok := columnIndex(letters[1])
		if !ok {
			return game.Coord{}, errors.Errorf("invalid column in %q", s)
		}
		x = len(columns)*(x+1) + second
	}

	row, err := strconv.Atoi(m[2])
	if err != nil {
		return game.Coord{}, errors.WithMessagef(err, "invalid row in %q", s)
	}
	return game.Coord{X: x, Y: row - 1}, nil
}

// CoordToChessLike is the inverse of ChessLikeToCoord. Letters are upper case.
func CoordToChessLike(c game.Coord) (string, error) {
	if c.X < 0 || c.Y < 0 || c.X >= len(columns)*(len(columns)+1) {
		return "", errors.Errorf("%v cannot be written in chess-like notation", c)
	}
	var col string
	if c.X < len(columns) {
		col = columns[c.X : c.X+1]
	} else {
		x := c.X - len(columns)
		col = string([]byte{columns[x/len(columns)], columns[x%len(columns)]})
	}
	return col + strconv.Itoa(c.Y+1), nil
}
