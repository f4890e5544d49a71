package 围碁

import (
	"math/rand"
	"sync"

	"github.com/gorgonia/godash/game"
)

// tabled is the largest board size that gets a precomputed table. SGF cannot express larger boards.
const tabled = 52

// zobrist is a data structure for calculating Zobrist hashes.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// Fundamentally it is a (BOARDSIZE * BOARDSIZE, 2) matrix of random keys, one per point per colour.
// Boards are immutable, so each Board carries the hash of its own position and
// every transformation XORs the keys of the stones it adds or removes.
//
// Tables are seeded by board size so the same position always hashes the same way.
type zobrist struct {
	table []uint32
	size  int
}

var zobrists = struct {
	sync.Mutex
	m map[int]*zobrist
}{m: make(map[int]*zobrist)}

func zobristFor(size int) *zobrist {
	zobrists.Lock()
	defer zobrists.Unlock()
	if z, ok := zobrists.m[size]; ok {
		return z
	}
	z := makeZobrist(size)
	zobrists.m[size] = z
	return z
}

func makeZobrist(size int) *zobrist {
	z := &zobrist{size: size}
	if size > tabled {
		return z
	}
	r := rand.New(rand.NewSource(int64(size)))
	z.table = make([]uint32, size*size*2)
	for i := range z.table {
		z.table[i] = r.Uint32()
	}
	return z
}

// key returns the key of a stone of the given colour at c.
func (z *zobrist) key(c game.Coord, colour game.Colour) uint32 {
	i := (c.X*z.size + c.Y) * 2
	if colour == game.White {
		i++
	}
	if z.table != nil {
		return z.table[i]
	}
	return mix(uint64(z.size)<<40 | uint64(i))
}

// mix is the splitmix64 finaliser, folded to 32 bits.
func mix(x uint64) uint32 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return uint32(x ^ x>>32)
}
