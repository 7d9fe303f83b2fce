package model

import "time"

// AppSettings is the single-row display configuration. It replaces the
// mobile app's ambient theme/language globals with explicit state.
type AppSettings struct {
	Language  string    `json:"language"`
	Theme     string    `json:"theme"`
	UpdatedAt time.Time `json:"updatedAt"`
}
