package grass

import (
	"time"

	"bibleapp/backend/internal/dateutil"
)

const (
	GridRows = 7
	GridCols = 53
)

// Cell is one square of the year grid. Cells outside the year window are
// placeholders: Date is empty and Present is false, and they must render
// as blank, never as zero-activity days.
type Cell struct {
	Date     string `json:"date,omitempty"`
	Present  bool   `json:"present"`
	Chapters int    `json:"chapters"`
}

// MonthColumn maps a calendar month (1-12) to the grid column holding
// its first day.
type MonthColumn struct {
	Month  int `json:"month"`
	Column int `json:"column"`
}

// BuildYearGrid lays out year as a 7x53 Sunday-anchored calendar grid.
// Column 0 row 0 is the Sunday on or before Jan 1; cell [row][col] is
// anchor + col*7 + row days. A cell is populated only when its date
// falls inside [Jan 1, Dec 31] of year and not after the effective end
// date: today when year is now's year, Dec 31 otherwise.
func BuildYearGrid(year int, now time.Time) [GridRows][GridCols]Cell {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
	anchor := dateutil.SundayOnOrBefore(jan1)

	end := dec31
	if year == now.Local().Year() {
		end = dateutil.Midnight(now)
	}

	var grid [GridRows][GridCols]Cell
	for col := 0; col < GridCols; col++ {
		for row := 0; row < GridRows; row++ {
			date := anchor.AddDate(0, 0, col*7+row)
			if date.Before(jan1) || date.After(dec31) || date.After(end) {
				continue
			}
			grid[row][col] = Cell{
				Date:    dateutil.FormatDate(date),
				Present: true,
			}
		}
	}
	return grid
}

// MonthLabelColumns returns, for each month of year whose first day
// lands on a grid column in [0, GridCols), that column:
// floor((first of month - anchor) / 7 days).
func MonthLabelColumns(year int) []MonthColumn {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	anchor := dateutil.SundayOnOrBefore(jan1)

	columns := make([]MonthColumn, 0, 12)
	for month := 1; month <= 12; month++ {
		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		col := daysBetween(anchor, first) / 7
		if col < 0 || col >= GridCols {
			continue
		}
		columns = append(columns, MonthColumn{Month: month, Column: col})
	}
	return columns
}

// Streak describes the consecutive-day run ending yesterday.
type Streak struct {
	Streak            int  `json:"streak"`
	IncludesYesterday bool `json:"includesYesterday"`
}

// CurrentStreakEndingYesterday walks backward day by day from
// yesterday, counting consecutive days with at least one chapter read.
// The walk never leaves referenceYear: if yesterday falls in a
// different year, or has no activity, the streak is zero.
// chaptersFor reports the total chapters read on a date.
func CurrentStreakEndingYesterday(referenceYear int, now time.Time, chaptersFor func(date string) int) Streak {
	day := dateutil.Midnight(now).AddDate(0, 0, -1)
	if day.Year() != referenceYear || chaptersFor(dateutil.FormatDate(day)) <= 0 {
		return Streak{}
	}

	count := 0
	for day.Year() == referenceYear && chaptersFor(dateutil.FormatDate(day)) > 0 {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return Streak{Streak: count, IncludesYesterday: true}
}

func daysBetween(from, to time.Time) int {
	days := 0
	for from.Before(to) {
		from = from.AddDate(0, 0, 1)
		days++
	}
	for from.After(to) {
		from = from.AddDate(0, 0, -1)
		days--
	}
	return days
}
