package listview

import (
	"reflect"
	"testing"
)

func TestAndSkipsNilPredicates(t *testing.T) {
	even := Predicate[int](func(v int) bool { return v%2 == 0 })
	pred := And(nil, even, nil)

	got := Filter([]int{1, 2, 3, 4}, pred)
	if !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("Filter = %v", got)
	}
}

func TestAndEmptyMatchesEverything(t *testing.T) {
	pred := And[int]()
	if got := Filter([]int{1, 2, 3}, pred); len(got) != 3 {
		t.Fatalf("Filter = %v, want all", got)
	}
}

func TestFilterNarrowsMonotonically(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	even := Predicate[int](func(v int) bool { return v%2 == 0 })
	big := Predicate[int](func(v int) bool { return v > 5 })

	one := Filter(items, even)
	both := Filter(items, And(even, big))
	if len(both) > len(one) {
		t.Fatalf("adding a dimension grew the result: %d > %d", len(both), len(one))
	}
	// Every combined match is also in the single-dimension result.
	for _, v := range both {
		if v%2 != 0 {
			t.Errorf("%d violates the retained dimension", v)
		}
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	items := []int{5, 3, 8, 1}
	got := Filter(items, func(v int) bool { return v != 8 })
	if !reflect.DeepEqual(got, []int{5, 3, 1}) {
		t.Fatalf("order not preserved: %v", got)
	}
	if !reflect.DeepEqual(items, []int{5, 3, 8, 1}) {
		t.Fatalf("input mutated: %v", items)
	}
}

func TestFilterIdempotent(t *testing.T) {
	items := []int{1, 2, 3, 4}
	pred := Predicate[int](func(v int) bool { return v > 2 })
	once := Filter(items, pred)
	twice := Filter(once, pred)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("re-filtering changed the result: %v vs %v", once, twice)
	}
}

func TestPaginateCeilPageCount(t *testing.T) {
	items := make([]int, 23)
	p := Paginate(items, 1, 20)
	if p.TotalPages != 2 {
		t.Fatalf("TotalPages = %d, want 2", p.TotalPages)
	}
	if p.Total != 23 {
		t.Fatalf("Total = %d", p.Total)
	}

	last := Paginate(items, 2, 20)
	if len(last.Items) != 3 {
		t.Fatalf("last page has %d items, want 3", len(last.Items))
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	past := Paginate(items, 99, 2)
	if past.Number != 3 || len(past.Items) != 1 {
		t.Fatalf("page past end not clamped: number=%d items=%v", past.Number, past.Items)
	}

	below := Paginate(items, 0, 2)
	if below.Number != 1 {
		t.Fatalf("page below 1 not clamped: %d", below.Number)
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	p := Paginate([]int{}, 5, 10)
	if p.Number != 1 || p.TotalPages != 1 || len(p.Items) != 0 {
		t.Fatalf("empty collection: %+v", p)
	}
}

func TestApplyFiltersThenPaginates(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	p := Apply(items, func(v int) bool { return v%2 == 0 }, 2, 10)
	if p.Total != 25 {
		t.Fatalf("Total = %d, want 25 (filtered, not raw)", p.Total)
	}
	if p.Items[0] != 20 {
		t.Fatalf("page 2 starts at %d, want 20", p.Items[0])
	}
}
