// Package listview filters and paginates full in-memory collections. The
// console fetches collections whole and slices them client-side; everything
// here is pure so it can be exercised without any transport or UI attached.
package listview

// Predicate reports whether a record matches one filter dimension.
type Predicate[T any] func(T) bool

// MatchAll is the identity predicate used for unset filter dimensions.
func MatchAll[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// And combines predicates; nil entries are treated as unset and skipped.
// With no effective predicates the result matches everything.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// Filter returns the records matching pred, preserving input order. The
// source slice is never mutated.
func Filter[T any](items []T, pred Predicate[T]) []T {
	if pred == nil {
		pred = MatchAll[T]()
	}
	out := make([]T, 0, len(items))
	for _, v := range items {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Page is one contiguous slice of a filtered collection.
type Page[T any] struct {
	Items      []T
	Total      int
	Number     int
	Size       int
	TotalPages int
}

// Paginate slices items into the requested page. The page number is clamped
// to [1, ceil(len/size)]; a page past the end returns the last page, not an
// empty one.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = 1
	}
	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Total:      len(items),
		Number:     page,
		Size:       size,
		TotalPages: totalPages,
	}
}

// Apply filters then paginates in one pass over the inputs.
func Apply[T any](items []T, pred Predicate[T], page, size int) Page[T] {
	return Paginate(Filter(items, pred), page, size)
}
