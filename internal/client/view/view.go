// Package view holds the console's list-screen state: the fetched
// collection, the active filter, and the current page. It owns the rules a
// list screen must honor: a filter change resets to page one, and a slow
// fetch can never overwrite the result of a newer one.
package view

import (
	"context"
	"sync"
	"time"

	"github.com/mhd-interiors/crm-console/internal/core/listview"
)

// Fetcher loads the full collection from the backend.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// FilterFunc builds the active predicate, evaluated relative to now.
type FilterFunc[T any] func(now time.Time) listview.Predicate[T]

const defaultPageSize = 20

// Collection is the state behind one list screen. All methods are safe for
// concurrent use; the push bridge triggers Refresh from its own goroutine.
type Collection[T any] struct {
	fetch Fetcher[T]

	mu     sync.Mutex
	items  []T
	filter FilterFunc[T]
	page   int
	size   int
	gen    uint64 // incremented per fetch; stale responses are discarded
}

func NewCollection[T any](fetch Fetcher[T]) *Collection[T] {
	return &Collection[T]{
		fetch: fetch,
		page:  1,
		size:  defaultPageSize,
	}
}

// Refresh fetches the collection and replaces the view's data. Concurrent
// refreshes may overlap; only the newest one started is allowed to land, so
// a slow early response cannot clobber fresher data.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	items, err := c.fetch(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer fetch has started (and possibly landed) since.
		return nil
	}
	c.items = items
	return nil
}

// SetFilter installs a new filter and resets to the first page. Changing the
// filter always restarts pagination: the old page number is meaningless
// against a different subset.
func (c *Collection[T]) SetFilter(f FilterFunc[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
	c.page = 1
}

// SetPage moves to the given page. Out-of-range values are tolerated; Page
// clamps when slicing.
func (c *Collection[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
}

// SetPageSize changes the page size and resets to the first page.
func (c *Collection[T]) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size > 0 {
		c.size = size
		c.page = 1
	}
}

// Page computes the current page: filter, then slice. The computation is
// pure over the held data, so calling it repeatedly without state changes
// yields identical results.
func (c *Collection[T]) Page(now time.Time) listview.Page[T] {
	c.mu.Lock()
	items, filter, page, size := c.items, c.filter, c.page, c.size
	c.mu.Unlock()

	var pred listview.Predicate[T]
	if filter != nil {
		pred = filter(now)
	}
	return listview.Apply(items, pred, page, size)
}

// Len reports the unfiltered collection size.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
