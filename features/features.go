// Package features turns positions into float32 planes, the usual input of a Go playing network.
//
// Every plane is a row-major size×size slice, laid out the same way as (*wq.Board).Dense.
package features

import (
	"github.com/chewxy/math32"
	"github.com/gorgonia/godash/game"
	wq "github.com/gorgonia/godash/game/wq"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// MaxLiberties is the liberty count at which the liberty plane saturates.
const MaxLiberties = 8

// DefaultLookback is the number of positions encoded by Encode when none is given.
const DefaultLookback = 8

// EncodeTwoPlayerBoard encodes black as 1, white as -1 for each stone placed
func EncodeTwoPlayerBoard(a []game.Colour, prealloc []float32) []float32 {
	if len(prealloc) != len(a) {
		prealloc = make([]float32, len(a))
	}

	for i := range a {
		switch a[i] {
		case game.Black:
			prealloc[i] = 1
		case game.White:
			prealloc[i] = -1
		default:
			prealloc[i] = 0
		}
	}
	return prealloc
}

// Perspective encodes the stones of colour as 1 and the opponent's as -1.
func Perspective(b *wq.Board, colour game.Colour, prealloc []float32) []float32 {
	retVal := EncodeTwoPlayerBoard(b.Dense(), prealloc)
	if colour == game.White {
		vecf32.Scale(retVal, -1)
	}
	return retVal
}

// Liberties encodes, for every stone, the liberties of its group scaled into (0, 1].
// Groups with MaxLiberties or more are all 1. Empty points are 0.
func Liberties(b *wq.Board, prealloc []float32) []float32 {
	size := b.Size()
	if len(prealloc) != size*size {
		prealloc = make([]float32, size*size)
	}
	for i := range prealloc {
		prealloc[i] = 0
	}

	seen := make(game.CoordSet)
	for _, m := range b.Moves() {
		if seen.Has(m.Coord) {
			continue
		}
		group := b.Group(m.Coord)
		libs := math32.Min(float32(b.LibertyCount(m.Coord)), MaxLiberties) / MaxLiberties
		for c := range group {
			prealloc[c.X*size+c.Y] = libs
			seen.Add(c)
		}
	}
	return prealloc
}

// Legal marks the points where the player to move may play: empty, not suicide and not the ko point.
func Legal(g *wq.Game, prealloc []float32) []float32 {
	size := g.BoardSize()
	if len(prealloc) != size*size {
		prealloc = make([]float32, size*size)
	}
	colour := g.ToMove()
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			var v float32
			if g.Check(game.Move{Coord: game.Coord{X: x, Y: y}, Colour: colour}) {
				v = 1
			}
			prealloc[x*size+y] = v
		}
	}
	return prealloc
}

// NumPlanes is the number of planes Encode produces for the given lookback.
func NumPlanes(lookback int) int { return lookback + 3 }

// Encode encodes a game from the point of view of the player to move.
//
// The planes are, in order:
//	lookback planes of stones (current position first, then one move back, and so on; 0 before the game started)
//	the player to move (all 1 for black, all -1 for white)
//	liberties of the current position
//	legal moves for the player to move
func Encode(g *wq.Game, lookback int) ([]float32, error) {
	if lookback <= 0 {
		return nil, errors.Errorf("Expected a positive lookback. Got %d", lookback)
	}
	size := g.BoardSize()
	area := size * size
	retVal := make([]float32, NumPlanes(lookback)*area)
	next := g.ToMove()
	if !game.IsValid(next) {
		return nil, errors.Errorf("Cannot encode a game with %v to move", next)
	}

	moves := g.MoveNumber()
	for i := 0; i < lookback && i <= moves; i++ {
		past := g.Board()
		if i > 0 {
			past = g.Historical(moves - i)
		}
		Perspective(past, next, retVal[i*area:(i+1)*area])
	}

	toMove := retVal[lookback*area : (lookback+1)*area]
	encodedPlayer := float32(1)
	if next == game.White {
		encodedPlayer = -1
	}
	for i := range toMove {
		toMove[i] = encodedPlayer
	}

	Liberties(g.Board(), retVal[(lookback+1)*area:(lookback+2)*area])
	Legal(g, retVal[(lookback+2)*area:])
	return retVal, nil
}

// Planes is Encode shaped as a (planes, size, size) tensor.
func Planes(g *wq.Game, lookback int) (*tensor.Dense, error) {
	data, err := Encode(g, lookback)
	if err != nil {
		return nil, err
	}
	size := g.BoardSize()
	return tensor.New(tensor.WithBacking(data), tensor.WithShape(NumPlanes(lookback), size, size)), nil
}

// Batch encodes several games into a single (batch, planes, size, size) tensor.
// All games must be played on the same board size.
func Batch(games []*wq.Game, lookback int) (*tensor.Dense, error) {
	if len(games) == 0 {
		return nil, errors.New("Cannot make an empty batch")
	}
	size := games[0].BoardSize()
	var backing []float32
	for i, g := range games {
		if g.BoardSize() != size {
			return nil, errors.Errorf("Game %d is played on %dx%d. Expected %dx%d", i, g.BoardSize(), g.BoardSize(), size, size)
		}
		data, err := Encode(g, lookback)
		if err != nil {
			return nil, errors.WithMessagef(err, "Game %d", i)
		}
		backing = append(backing, data...)
	}
	return tensor.New(tensor.WithBacking(backing), tensor.WithShape(len(games), NumPlanes(lookback), size, size)), nil
}
