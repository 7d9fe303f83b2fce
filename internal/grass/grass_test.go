package grass

import (
	"reflect"
	"testing"
)

func TestChaptersFromVector(t *testing.T) {
	cases := []struct {
		vector []int
		want   []int
	}{
		{nil, []int{}},
		{[]int{0, 0, 0}, []int{}},
		{[]int{1, 0, 1}, []int{1, 3}},
		{[]int{1, 1, 1, 1}, []int{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		if got := ChaptersFromVector(tc.vector); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ChaptersFromVector(%v): expected %v, got %v", tc.vector, tc.want, got)
		}
	}
}

func TestReconcileChapters(t *testing.T) {
	cases := []struct {
		name                 string
		existing, prev, next []int
		want                 []int
	}{
		{
			// Chapter 2 was deselected and belonged to the previous
			// view, so it goes. Chapter 5 came from elsewhere and was
			// never part of the previous view, so it stays. Chapter 1
			// is still selected; chapter 3 is new.
			name:     "other-source chapters survive the edit",
			existing: []int{1, 2, 5},
			prev:     []int{1, 2},
			next:     []int{1, 3},
			want:     []int{1, 3, 5},
		},
		{
			name:     "empty existing takes new set",
			existing: nil,
			prev:     nil,
			next:     []int{2, 4},
			want:     []int{2, 4},
		},
		{
			name:     "full deselect clears own chapters only",
			existing: []int{1, 2, 9},
			prev:     []int{1, 2},
			next:     nil,
			want:     []int{9},
		},
		{
			name:     "no change is identity",
			existing: []int{3, 7},
			prev:     []int{3, 7},
			next:     []int{3, 7},
			want:     []int{3, 7},
		},
		{
			name:     "result is sorted and deduplicated",
			existing: []int{5, 1},
			prev:     nil,
			next:     []int{5, 2},
			want:     []int{1, 2, 5},
		},
	}
	for _, tc := range cases {
		if got := ReconcileChapters(tc.existing, tc.prev, tc.next); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestNormalizeChapters(t *testing.T) {
	got := NormalizeChapters([]int{3, 1, 3, 2, 1})
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
	if got := NormalizeChapters(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
