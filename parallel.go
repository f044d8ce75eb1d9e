package equations

import (
	"runtime"
	"sync"
)

// parallelMap applies f to every element of xs concurrently and returns the
// results in input order. The first error stops the useful work; remaining
// elements still drain, but their results are discarded.
func parallelMap(xs []float32, f func(float32) (float32, error)) ([]float32, error) {
	ys := make([]float32, len(xs))
	workers := runtime.GOMAXPROCS(0)
	if workers > len(xs) {
		workers = len(xs)
	}
	if workers <= 1 {
		for i, x := range xs {
			y, err := f(x)
			if err != nil {
				return nil, err
			}
			ys[i] = y
		}
		return ys, nil
	}
	idx := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				y, err := f(xs[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				ys[i] = y
			}
		}()
	}
	for i := range xs {
		idx <- i
	}
	close(idx)
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return ys, nil
}
