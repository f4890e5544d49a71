package features

import "sync"

type dims struct{ m, n int }

var iterPool sync.Map // dims → *sync.Pool

func borrowIterator(m, n int) [][]float32 {
	p, _ := iterPool.LoadOrStore(dims{m, n}, &sync.Pool{
		New: func() interface{} { return make([][]float32, m) },
	})
	return p.(*sync.Pool).Get().([][]float32)
}

func returnIterator(m, n int, it [][]float32) {
	for i := range it {
		it[i] = nil
	}
	if p, ok := iterPool.Load(dims{m, n}); ok {
		p.(*sync.Pool).Put(it)
	}
}

// makeIterator returns the rows of a row-major m×n plane. The rows alias the plane.
func makeIterator(plane []float32, m, n int) (retVal [][]float32) {
	retVal = borrowIterator(m, n)
	for i := range retVal {
		start := i * n
		retVal[i] = plane[start : start+n : start+n]
	}
	return
}
