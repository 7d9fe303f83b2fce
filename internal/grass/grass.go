// Package grass holds the pure set arithmetic and calendar layout behind
// the reading "grass" (contribution-grid) view.
package grass

import "sort"

// ChaptersFromVector converts a 0/1 per-chapter flag vector into the
// chapter numbers marked read (index+1 = chapter number).
func ChaptersFromVector(vector []int) []int {
	chapters := make([]int, 0, len(vector))
	for i, flag := range vector {
		if flag == 1 {
			chapters = append(chapters, i+1)
		}
	}
	return chapters
}

// ReconcileChapters merges a plan edit into the chapters already stored
// for a book on one day: (existing - prev) ∪ new, deduplicated and
// sorted ascending. Subtracting only what the previous view explicitly
// had means chapters recorded through other flows survive the edit.
func ReconcileChapters(existing, prev, next []int) []int {
	inPrev := make(map[int]struct{}, len(prev))
	for _, ch := range prev {
		inPrev[ch] = struct{}{}
	}

	result := make(map[int]struct{}, len(existing)+len(next))
	for _, ch := range existing {
		if _, dropped := inPrev[ch]; !dropped {
			result[ch] = struct{}{}
		}
	}
	for _, ch := range next {
		result[ch] = struct{}{}
	}

	merged := make([]int, 0, len(result))
	for ch := range result {
		merged = append(merged, ch)
	}
	sort.Ints(merged)
	return merged
}

// NormalizeChapters deduplicates and sorts a chapter list ascending.
func NormalizeChapters(chapters []int) []int {
	seen := make(map[int]struct{}, len(chapters))
	out := make([]int, 0, len(chapters))
	for _, ch := range chapters {
		if _, ok := seen[ch]; ok {
			continue
		}
		seen[ch] = struct{}{}
		out = append(out, ch)
	}
	sort.Ints(out)
	return out
}
