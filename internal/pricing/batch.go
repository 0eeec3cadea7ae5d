package pricing

import (
	"context"
	"sync"

	"pricelens/internal/model"
)

// EstimateAll prices every detected item using a pool of workers. Results keep
// the order of items.
func EstimateAll(ctx context.Context, est Estimator, items []model.DetectedItem, workers int) []model.ItemEstimate {
	results := make([]model.ItemEstimate, len(items))
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = model.ItemEstimate{
					Item:     items[i].Row(),
					Estimate: est.Estimate(ctx, items[i].Item()),
				}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
