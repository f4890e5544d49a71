package 围碁

import (
	"github.com/gorgonia/godash/game"
	"github.com/pkg/errors"
)

// IsLegalMove checks whether colour may play at c. Occupancy is not checked here; see AddMove.
//
// The stone's liberties are counted before anything it captures is taken off the board.
// A move that leaves no liberties is still legal when it takes the last liberty of an
// adjacent opposing group.
func (b *Board) IsLegalMove(c game.Coord, colour game.Colour) bool {
	if !game.IsValid(colour) || !b.isCoordValid(c) {
		return false
	}

	hypothetical := b.clone()
	hypothetical.set(c, colour)
	willHaveLiberties := hypothetical.LibertyCount(c) > 0

	return willHaveLiberties || b.willKillSomething(c, colour)
}

func (b *Board) willKillSomething(c game.Coord, colour game.Colour) bool {
	for _, a := range b.matchingAdjacents(c, game.Opponent(colour)) {
		if b.LibertyCount(a) == 1 {
			return true
		}
	}
	return false
}

// captures returns the opposing stones that a stone of colour at c would take off the board.
func (b *Board) captures(c game.Coord, colour game.Colour) game.CoordSet {
	killed := make(game.CoordSet)
	for _, a := range b.matchingAdjacents(c, game.Opponent(colour)) {
		if killed.Has(a) {
			continue
		}
		if b.LibertyCount(a) == 1 {
			killed.Union(b.Group(a))
		}
	}
	return killed
}

// AddMove plays a stone by the rules: captured groups are removed, then the stone is placed.
func (b *Board) AddMove(c game.Coord, colour game.Colour) (*Board, error) {
	m := game.Move{Coord: c, Colour: colour}
	if err := checkColour(m); err != nil {
		return nil, err
	}
	if err := b.checkCoord(c); err != nil {
		return nil, errors.WithMessage(err, "Impossible move")
	}

	// if the board location is not empty, then clearly we can't apply
	if _, ok := b.stones[c]; ok {
		return nil, errors.WithMessage(OccupiedError(m), "Application Failure - board location not empty.")
	}
	if !b.IsLegalMove(c, colour) {
		return nil, errors.WithMessage(IllegalMoveError(m), "Suicide is not a valid option.")
	}

	killed := b.captures(c, colour)
	retVal := b.clone()
	for prisoner := range killed {
		retVal.del(prisoner)
	}
	retVal.set(c, colour)
	return retVal, nil
}

// PlaceStone puts a stone on the board without regard for the rules. Nothing is captured.
//
// Placing over a stone of the opposite colour fails unless force is true.
func (b *Board) PlaceStone(c game.Coord, colour game.Colour, force bool) (*Board, error) {
	m := game.Move{Coord: c, Colour: colour}
	if err := checkColour(m); err != nil {
		return nil, err
	}
	if err := b.checkCoord(c); err != nil {
		return nil, errors.WithMessage(err, "Impossible placement")
	}
	if !force && b.At(c) == game.Opponent(colour) {
		return nil, errors.WithMessage(OccupiedError(m), "Pass force=true to override")
	}
	retVal := b.clone()
	retVal.set(c, colour)
	return retVal, nil
}

// PlaceStones places each of cs in turn. See PlaceStone.
func (b *Board) PlaceStones(cs []game.Coord, colour game.Colour, force bool) (*Board, error) {
	retVal := b
	for _, c := range cs {
		var err error
		if retVal, err = retVal.PlaceStone(c, colour, force); err != nil {
			return nil, err
		}
	}
	if retVal == b {
		retVal = b.clone()
	}
	return retVal, nil
}

// RemoveStone clears c. Clearing an empty point is not an error.
func (b *Board) RemoveStone(c game.Coord) *Board {
	retVal := b.clone()
	retVal.del(c)
	return retVal
}

// RemoveStones clears every point in cs.
func (b *Board) RemoveStones(cs []game.Coord) *Board {
	retVal := b.clone()
	for _, c := range cs {
		retVal.del(c)
	}
	return retVal
}

// Difference finds the stones on a that are not on b, in row-major order.
// A stone that changed colour counts as not being on b.
func Difference(a, b *Board) ([]game.Move, error) {
	if a.size != b.size {
		return nil, validationErrorf("board sizes do not match: %d vs %d", a.size, b.size)
	}
	var retVal []game.Move
	for c, colour := range a.stones {
		if oc, ok := b.stones[c]; ok && oc == colour {
			continue
		}
		retVal = append(retVal, game.Move{Coord: c, Colour: colour})
	}
	game.SortMoves(retVal)
	return retVal, nil
}
