package sgf

import (
	"testing"

	"github.com/gorgonia/godash/game"
)

func TestPointToCoord(t *testing.T) {
	tests := []struct {
		point string
		want  game.Coord
	}{
		{"aa", game.Coord{X: 0, Y: 0}},
		{"hi", game.Coord{X: 7, Y: 8}},
		{"sa", game.Coord{X: 18, Y: 0}},
		{"Az", game.Coord{X: 26, Y: 25}},
		{"ZZ", game.Coord{X: 51, Y: 51}},
	}
	for _, tt := range tests {
		got, err := PointToCoord(tt.point)
		if err != nil {
			t.Errorf("%q: %v", tt.point, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v. Got %v", tt.point, tt.want, got)
		}

		back, err := CoordToPoint(got)
		if err != nil {
			t.Errorf("%v: %v", got, err)
			continue
		}
		if back != tt.point {
			t.Errorf("Expected %v to convert back to %q. Got %q", got, tt.point, back)
		}
	}

	for _, bad := range []string{"", "a", "roar", "a1", "[]"} {
		if _, err := PointToCoord(bad); err == nil {
			t.Errorf("Expected %q to fail", bad)
		}
	}
	for _, bad := range []game.Coord{{X: -1, Y: 0}, {X: 0, Y: 52}} {
		if _, err := CoordToPoint(bad); err == nil {
			t.Errorf("Expected %v to fail", bad)
		}
	}
}

func TestChessLikeToCoord(t *testing.T) {
	tests := []struct {
		s    string
		want game.Coord
	}{
		{"a1", game.Coord{X: 0, Y: 0}},
		{"f5", game.Coord{X: 5, Y: 4}},
		{"A13", game.Coord{X: 0, Y: 12}},
		{"J9", game.Coord{X: 8, Y: 8}},
		{"aa10", game.Coord{X: 25, Y: 9}},
		{"AD20", game.Coord{X: 28, Y: 19}},
	}
	for _, tt := range tests {
		got, err := ChessLikeToCoord(tt.s)
		if err != nil {
			t.Errorf("%q: %v", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v. Got %v", tt.s, tt.want, got)
		}
	}

	for _, bad := range []string{"WTF", "I9", "A0", "A00", "", "9A", "ABC1"} {
		if _, err := ChessLikeToCoord(bad); err == nil {
			t.Errorf("Expected %q to fail", bad)
		}
	}
}

func TestCoordToChessLike(t *testing.T) {
	tests := []struct {
		c    game.Coord
		want string
	}{
		{game.Coord{X: 0, Y: 0}, "A1"},
		{game.Coord{X: 8, Y: 8}, "J9"},
		{game.Coord{X: 18, Y: 18}, "T19"},
		{game.Coord{X: 25, Y: 9}, "AA10"},
		{game.Coord{X: 28, Y: 19}, "AD20"},
	}
	for _, tt := range tests {
		got, err := CoordToChessLike(tt.c)
		if err != nil {
			t.Errorf("%v: %v", tt.c, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v: expected %q. Got %q", tt.c, tt.want, got)
		}
		back, err := ChessLikeToCoord(got)
		if err != nil || back != tt.c {
			t.Errorf("Expected %q to convert back to %v. Got %v (%v)", got, tt.c, back, err)
		}
	}

	if _, err := CoordToChessLike(game.Coord{X: -1, Y: -1}); err == nil {
		t.Error("Expected a pass to have no chess-like form")
	}
}
