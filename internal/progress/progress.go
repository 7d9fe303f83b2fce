// Package progress holds the pure reading-plan arithmetic. Every
// function is deterministic and side-effect free; malformed input
// degrades to zero values instead of returning errors.
package progress

import (
	"math"
	"time"

	"bibleapp/backend/internal/bible"
	"bibleapp/backend/internal/dateutil"
)

// GoalStatus is one row per canonical book (always 66 rows), each row a
// 0/1 flag per chapter of that book.
type GoalStatus [][]int

// EmptyGoalStatus builds the all-zero matrix sized by the catalog.
func EmptyGoalStatus() GoalStatus {
	status := make(GoalStatus, 0, bible.BookCount)
	for _, b := range bible.Books() {
		status = append(status, make([]int, b.Chapters))
	}
	return status
}

// TotalReadCount sums the canonical chapter counts of the selected
// books. Unknown codes contribute 0.
func TotalReadCount(selectedBookCodes []string) int {
	total := 0
	for _, code := range selectedBookCodes {
		total += bible.ChapterCount(code)
	}
	return total
}

// CurrentReadCount counts 1-flags over the rows of the selected books
// only. Flags set for unselected books stay in storage but are excluded
// here. Missing rows count as empty.
func CurrentReadCount(status GoalStatus, selectedBookCodes []string) int {
	current := 0
	for _, code := range selectedBookCodes {
		idx := bible.IndexOf(code)
		if idx < 0 || idx >= len(status) {
			continue
		}
		for _, flag := range status[idx] {
			if flag == 1 {
				current++
			}
		}
	}
	return current
}

// GoalPercent is current/total as a percentage rounded to 2 decimals.
// 0 when total is not positive. Values above 100 are not clamped here.
func GoalPercent(total, current int) float64 {
	if total <= 0 {
		return 0
	}
	return round2(float64(current) / float64(total) * 100)
}

// RestDay is the number of days from now to endDate, floored at 0.
func RestDay(endDate string, now time.Time) int {
	days := dateutil.DaysUntil(endDate, now)
	if days < 0 {
		return 0
	}
	return days
}

// ReadCountPerDay is the daily pace needed to finish the remaining
// chapters in restDay days, rounded to 2 decimals. 0 when nothing
// remains or no days remain.
func ReadCountPerDay(total, current, restDay int) float64 {
	remaining := total - current
	if restDay <= 0 || remaining <= 0 {
		return 0
	}
	return round2(float64(remaining) / float64(restDay))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
