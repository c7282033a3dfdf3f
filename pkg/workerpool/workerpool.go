// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Settle runs a worker pool over the provided work items and waits for all of
// them to finish. Unlike a fail-fast pool, an item error never stops the other
// items. The returned slice has one entry per input item, in input order, nil
// for items that succeeded.
func Settle[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) []error {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	results := make([]error, len(items))
	if len(items) == 0 {
		return results
	}

	type task struct {
		index int
		item  T
	}

	tasks := make(chan task)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				if err := ctx.Err(); err != nil {
					results[t.index] = err
					continue
				}
				results[t.index] = process(ctx, t.item)
			}
		}()
	}

	for i, item := range items {
		tasks <- task{index: i, item: item}
	}
	close(tasks)

	wg.Wait()
	return results
}
