package channel

import (
	"runtime"
	"sync"

	"github.com/Flokey82/go_gens/utils"
)

var minMax = utils.MinMax[float64]

// forEachCell runs fn over [0,n) split into contiguous chunks, one goroutine
// per chunk. The generators have no cross-cell dependencies, so cells may be
// processed in any order.
func forEachCell(n int, fn func(start, end int)) {
	workers := utils.Min(runtime.NumCPU(), n)
	if workers <= 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := utils.Min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
