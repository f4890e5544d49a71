package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateBoard(t *testing.T) {
	//
	// ⎢ O · · · X ⎥
	// ⎢ · O · X · ⎥ // this line is to break rotational symmetry
	// ⎢ · · · · · ⎥
	// ⎢ · · · · · ⎥
	// ⎢ X · · · O ⎥

	m, n := 5, 5
	board := []float32{
		-1, 0, 0, 0, 1,
		0, -1, 0, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		1, 0, 0, 0, -1,
	}

	rot1, err := RotateBoard(board, m, n)
	require.NoError(t, err)
	t.Logf("1:\n%v", rot1)
	assert.Equal(t, []float32{
		1, 0, 0, 0, -1,
		0, 1, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, -1, 0, 0, 0,
		-1, 0, 0, 0, 1,
	}, rot1)

	rot2, err := RotateBoard(rot1, m, n)
	require.NoError(t, err)
	rot3, err := RotateBoard(rot2, m, n)
	require.NoError(t, err)
	rot4, err := RotateBoard(rot3, m, n)
	require.NoError(t, err)

	assert.Equal(t, board, rot4, "After 4 rotations the board should be the same")
	assert.Equal(t, float32(-1), board[0], "The input should not be modified")

	_, err = RotateBoard(board, 5, 4)
	assert.Error(t, err)
}

func TestFlipBoard(t *testing.T) {
	board := []float32{
		1, 2, 3,
		4, 5, 6,
	}
	flipped, err := FlipBoard(board, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 2, 1, 6, 5, 4}, flipped)

	_, err = FlipBoard(board, 3, 3)
	assert.Error(t, err)
}

func TestSymmetries(t *testing.T) {
	board := []float32{
		1, 2,
		3, 4,
	}
	syms, err := Symmetries(board, 2)
	require.NoError(t, err)
	require.Len(t, syms, 8)

	seen := make(map[[4]float32]bool)
	for _, s := range syms {
		var k [4]float32
		copy(k[:], s)
		seen[k] = true
	}
	assert.Len(t, seen, 8, "every symmetry of an asymmetric board is distinct")
	assert.Equal(t, board, syms[0])
}
