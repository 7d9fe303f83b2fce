package model

// GrassBookEntry records which chapters of one book were read on one
// day. ReadChapter is a set: no duplicates, sorted ascending whenever it
// is derived or returned.
type GrassBookEntry struct {
	BookCode    string `json:"bookCode"`
	ReadChapter []int  `json:"readChapter"`
}

// GrassDay is one bible_grass row: a calendar date and its per-book
// entries. A book appears at most once per date.
type GrassDay struct {
	Date    string           `json:"date"`
	Entries []GrassBookEntry `json:"entries"`
}

// TotalChapters sums the chapter counts over all entries of the day.
func (d GrassDay) TotalChapters() int {
	total := 0
	for _, e := range d.Entries {
		total += len(e.ReadChapter)
	}
	return total
}
