package 围碁

import (
	"fmt"

	"github.com/gorgonia/godash/game"
	"github.com/pkg/errors"
)

// Pass is the coordinate used to represent a pass.
var Pass = game.Coord{X: -1, Y: -1}

// IsPass returns true when the coordinate represents a pass.
func IsPass(c game.Coord) bool { return c == Pass }

type historical struct {
	board  *Board
	move   game.Move
	ko     game.Coord
	hasKo  bool
	passes int
}

// Game is a sequence of positions played by the rules.
//
// Unlike a Board, a Game is mutable: Apply and UndoLastMove change it in place.
// It forbids immediately retaking a simple ko.
type Game struct {
	board      *Board
	history    []historical
	nextToMove game.Colour

	komi     float32 // komidashi
	passes   int     // count of consecutive passes
	handicap int
	captures [2]int // stones taken by black, by white

	ko    game.Coord
	hasKo bool
}

// New creates a game on an empty board. A non-zero handicap places the fixed handicap stones
// and gives white the first move.
func New(boardSize, handicap int, komi float64) (*Game, error) {
	var b *Board
	var err error
	if handicap > 0 {
		b, err = HandicapBoard(boardSize, handicap)
	} else {
		b, err = NewBoard(boardSize)
	}
	if err != nil {
		return nil, err
	}
	g := FromBoard(b, Black)
	g.komi = float32(komi)
	g.handicap = handicap
	if handicap > 0 {
		g.nextToMove = White
	}
	return g, nil
}

// FromBoard starts a game from an arbitrary position.
func FromBoard(b *Board, toMove game.Colour) *Game {
	return &Game{
		board:      b,
		nextToMove: toMove,
		history:    make([]historical, 0, b.size),
	}
}

func (g *Game) Board() *Board           { return g.board }
func (g *Game) BoardSize() int          { return g.board.size }
func (g *Game) ToMove() game.Colour     { return g.nextToMove }
func (g *Game) SetToMove(c game.Colour) { g.nextToMove = c }
func (g *Game) Passes() int             { return g.passes }
func (g *Game) MoveNumber() int         { return len(g.history) }
func (g *Game) Handicap() int           { return g.handicap }
func (g *Game) Komi() float32           { return g.komi }
func (g *Game) SetKomi(komi float64)    { g.komi = float32(komi) }

// Captures returns the number of stones taken by the given colour.
func (g *Game) Captures(c game.Colour) int {
	if !game.IsValid(c) {
		return 0
	}
	return g.captures[c-1]
}

// Ko returns the point that may not be played on the next move, if any.
func (g *Game) Ko() (game.Coord, bool) { return g.ko, g.hasKo }

// LastMove returns the last move that was made, or a pass by None if nothing has been played.
func (g *Game) LastMove() game.Move {
	if len(g.history) > 0 {
		return g.history[len(g.history)-1].move
	}
	return game.Move{Coord: Pass, Colour: None}
}

// Historical returns the position before the ith move.
func (g *Game) Historical(i int) *Board { return g.history[i].board }

// Check returns true if the move may be applied.
func (g *Game) Check(m game.Move) bool {
	if !game.IsValid(m.Colour) {
		return false
	}
	if IsPass(m.Coord) {
		return true
	}
	if g.hasKo && m.Coord == g.ko {
		return false
	}
	if _, ok := g.board.stones[m.Coord]; ok {
		return false
	}
	return g.board.IsLegalMove(m.Coord, m.Colour)
}

// Apply plays the move. The player to move becomes the opponent of m.Colour.
func (g *Game) Apply(m game.Move) error {
	if !game.IsValid(m.Colour) {
		return errors.WithMessage(IllegalMoveError(m), "Impossible player")
	}
	h := historical{board: g.board, move: m, ko: g.ko, hasKo: g.hasKo, passes: g.passes}

	if IsPass(m.Coord) {
		g.passes++
		g.hasKo = false
	} else {
		if g.hasKo && m.Coord == g.ko {
			return errors.WithMessage(IllegalMoveError(m), "Cannot retake the ko immediately")
		}
		next, err := g.board.AddMove(m.Coord, m.Colour)
		if err != nil {
			return err
		}
		taken, _ := Difference(g.board, next)
		g.captures[m.Colour-1] += len(taken)
		g.ko, g.hasKo = g.board.FollowupKo(m.Coord, m.Colour)
		g.board = next
		g.passes = 0
	}

	g.history = append(g.history, h)
	g.nextToMove = game.Opponent(m.Colour)
	return nil
}

// UndoLastMove takes back the last move. It returns false if there was nothing to undo.
func (g *Game) UndoLastMove() bool {
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	if !IsPass(last.move.Coord) {
		taken, _ := Difference(last.board, g.board)
		g.captures[last.move.Colour-1] -= len(taken)
	}
	g.passes = last.passes
	g.board = last.board
	g.ko, g.hasKo = last.ko, last.hasKo
	g.nextToMove = last.move.Colour
	return true
}

// Reset clears the board, keeping its size, komi and handicap.
func (g *Game) Reset() error {
	ng, err := New(g.board.size, g.handicap, float64(g.komi))
	if err != nil {
		return err
	}
	*g = *ng
	return nil
}

// Ended returns true after two consecutive passes.
func (g *Game) Ended() bool { return g.passes >= 2 }

func (g *Game) Eq(other *Game) bool {
	// easy to check stuff first
	if g.nextToMove != other.nextToMove ||
		g.komi != other.komi ||
		g.passes != other.passes ||
		g.handicap != other.handicap ||
		g.captures != other.captures ||
		g.hasKo != other.hasKo ||
		g.ko != other.ko ||
		len(g.history) != len(other.history) {
		return false
	}

	// heavier checks
	if !g.board.Eq(other.board) {
		return false
	}
	for i := range g.history {
		if !g.history[i].move.Eq(other.history[i].move) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the game. Boards are immutable so they are shared.
func (g *Game) Clone() *Game {
	retVal := *g
	retVal.history = make([]historical, len(g.history), len(g.history)+1)
	copy(retVal.history, g.history)
	return &retVal
}

// Format implements fmt.Formatter
func (g *Game) Format(s fmt.State, c rune) {
	g.board.Format(s, c)
	if c == 'v' {
		fmt.Fprintf(s, "To move: %v. Captures: Black %d, White %d\n", g.nextToMove, g.captures[0], g.captures[1])
	}
}
