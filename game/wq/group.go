package 围碁

import "github.com/gorgonia/godash/game"

// Group returns the maximal set of connected points that share the state of c.
//
// c need not be occupied. If it is empty, the empty region touching c is returned.
func (b *Board) Group(c game.Coord) game.CoordSet {
	state := b.At(c)
	found := game.NewCoordSet(c)
	queue := []game.Coord{c}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, a := range b.matchingAdjacents(current, state) {
			if found.Has(a) {
				continue
			}
			found.Add(a)
			queue = append(queue, a)
		}
	}
	return found
}

// Liberties returns the empty points adjacent to the group at c.
func (b *Board) Liberties(c game.Coord) game.CoordSet {
	retVal := make(game.CoordSet)
	for member := range b.Group(c) {
		for _, a := range b.matchingAdjacents(member, None) {
			retVal.Add(a)
		}
	}
	return retVal
}

// LibertyCount returns the number of liberties of the group at c. Shared liberties are counted once.
func (b *Board) LibertyCount(c game.Coord) int { return len(b.Liberties(c)) }

// matchingAdjacents returns the in-bounds neighbours of c that are of the given colour.
func (b *Board) matchingAdjacents(c game.Coord, colour game.Colour) (retVal []game.Coord) {
	for _, a := range b.adjacentsCoord(c) {
		if b.At(a) == colour {
			retVal = append(retVal, a)
		}
	}
	return retVal
}
