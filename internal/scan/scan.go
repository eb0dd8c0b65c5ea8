// Package scan loads batches of scenario files concurrently, for bulk
// operations like catalog indexing.
package scan

import (
	"sync"

	"github.com/scxtools/scx/pkg/scen"
	"github.com/scxtools/scx/pkg/scx"
)

// Result is the outcome of loading one file. Exactly one of Scenario and
// Err is set.
type Result struct {
	Path     string
	Scenario *scen.Scenario
	Err      error
}

// Load parses every path with up to workers concurrent loaders and
// returns one result per path, in input order. Unreadable files produce
// a Result with Err set rather than failing the batch.
func Load(paths []string, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]Result, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s, err := scx.LoadFile(paths[i])
				results[i] = Result{Path: paths[i], Scenario: s, Err: err}
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
