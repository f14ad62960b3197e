package solver

import (
	"runtime"
	"sync"
)

// forEachLine runs fn for every line index in [0, n), fanning the lines out
// over the given number of workers. Lines within one half-step are mutually
// independent; the call returns only after every line completes, which is
// the barrier between half-steps. The first error encountered is returned.
func forEachLine(n, workers int, fn func(line int) error) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += workers {
				if err := fn(i); err != nil {
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
