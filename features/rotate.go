package features

import (
	"github.com/pkg/errors"
)

// RotateBoard rotates a square plane by 90 degrees. The input is left untouched.
func RotateBoard(board []float32, m, n int) ([]float32, error) {
	if m != n {
		return nil, errors.Errorf("Cannot handle m %d, n %d. This function only takes square boards", m, n)
	}
	if len(board) != m*n {
		return nil, errors.Errorf("Expected a board of %d. Got %d", m*n, len(board))
	}
	copied := make([]float32, len(board))
	copy(copied, board)
	it := makeIterator(copied, m, n)
	for i := 0; i < m/2; i++ {
		mi1 := m - i - 1
		for j := i; j < mi1; j++ {
			mj1 := m - j - 1
			tmp := it[i][j]
			// right to top
			it[i][j] = it[j][mi1]

			// bottom to right
			it[j][mi1] = it[mi1][mj1]

			// left to bottom
			it[mi1][mj1] = it[mj1][i]

			// tmp is left
			it[mj1][i] = tmp
		}
	}
	returnIterator(m, n, it)
	return copied, nil
}

// FlipBoard mirrors a plane left to right. The input is left untouched.
func FlipBoard(board []float32, m, n int) ([]float32, error) {
	if len(board) != m*n {
		return nil, errors.Errorf("Expected a board of %d. Got %d", m*n, len(board))
	}
	copied := make([]float32, len(board))
	copy(copied, board)
	it := makeIterator(copied, m, n)
	for _, row := range it {
		for j, k := 0, n-1; j < k; j, k = j+1, k-1 {
			row[j], row[k] = row[k], row[j]
		}
	}
	returnIterator(m, n, it)
	return copied, nil
}

// Symmetries returns the eight rotations and reflections of a square plane.
// The first is a copy of the input.
func Symmetries(board []float32, size int) ([][]float32, error) {
	retVal := make([][]float32, 0, 8)
	cur := board
	for r := 0; r < 4; r++ {
		if r > 0 {
			var err error
			if cur, err = RotateBoard(cur, size, size); err != nil {
				return nil, err
			}
		} else {
			cur = append([]float32(nil), board...)
		}
		flipped, err := FlipBoard(cur, size, size)
		if err != nil {
			return nil, err
		}
		retVal = append(retVal, cur, flipped)
	}
	return retVal, nil
}
