package game

import (
	"sync"
)

type dims struct{ m, n int }

var iterPool sync.Map // dims → *sync.Pool

func poolFor(m, n int) *sync.Pool {
	if p, ok := iterPool.Load(dims{m, n}); ok {
		return p.(*sync.Pool)
	}
	p, _ := iterPool.LoadOrStore(dims{m, n}, &sync.Pool{
		New: func() interface{} { return make([][]Colour, m) },
	})
	return p.(*sync.Pool)
}

func borrowIterator(m, n int) [][]Colour {
	return poolFor(m, n).Get().([][]Colour)
}

// ReturnIterator hands an iterator made by MakeIterator back for reuse.
// The iterator must not be used afterwards.
func ReturnIterator(m, n int, it [][]Colour) {
	if len(it) != m {
		return
	}
	for i := range it {
		it[i] = nil
	}
	poolFor(m, n).Put(it)
}
