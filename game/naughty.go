package game

// MakeIterator makes a generic row iterator over a row-major board of colours.
// The rows alias the backing slice, so writing through the iterator writes the board.
func MakeIterator(board []Colour, m, n int) (retVal [][]Colour) {
	retVal = borrowIterator(m, n)
	for i := range retVal {
		start := i * n
		retVal[i] = board[start : start+n : start+n]
	}
	return
}
