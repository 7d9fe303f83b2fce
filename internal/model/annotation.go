package model

import "time"

// FavoriteVerse is a bookmarked verse with a snapshot of its text, so
// the list renders without a round trip to the bible-text service.
type FavoriteVerse struct {
	ID        int64     `json:"id"`
	BookCode  string    `json:"bookCode"`
	Chapter   int       `json:"chapter"`
	Verse     int       `json:"verse"`
	VerseText string    `json:"verseText"`
	CreatedAt time.Time `json:"createdAt"`
}

// MeditationMemo is a free-form note attached to a verse.
type MeditationMemo struct {
	ID        int64     `json:"id"`
	BookCode  string    `json:"bookCode"`
	Chapter   int       `json:"chapter"`
	Verse     int       `json:"verse"`
	Memo      string    `json:"memo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PrayerEntry is one prayer-journal item.
type PrayerEntry struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Answered  bool      `json:"answered"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
