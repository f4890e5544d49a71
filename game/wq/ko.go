package 围碁

import "github.com/gorgonia/godash/game"

// FollowupKo reports the ko point created by colour playing at c, if any.
//
// It is a ko when the move captures exactly one stone and retaking that stone at once
// would restore this very position. Comparing whole positions rules out snapbacks, where
// the retake captures more than the stone that was just played.
func (b *Board) FollowupKo(c game.Coord, colour game.Colour) (ko game.Coord, ok bool) {
	if !b.IsLegalMove(c, colour) {
		return
	}

	post, err := b.AddMove(c, colour)
	if err != nil {
		return
	}

	captured, err := Difference(b, post)
	if err != nil || len(captured) != 1 {
		return
	}

	taken := captured[0]
	if !post.IsLegalMove(taken.Coord, taken.Colour) {
		return
	}

	recaptured, err := post.AddMove(taken.Coord, taken.Colour)
	if err != nil || !recaptured.Eq(b) {
		return
	}
	return taken.Coord, true
}
