package dateutil

import "time"

// Layout is the canonical calendar-date format used everywhere in the
// store: zero-padded YYYY-MM-DD, no time zone, local wall-clock dates.
const Layout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// ParseDate parses a canonical date string in the local time zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.Local)
}

// Today renders the injected clock's local date.
func Today(now time.Time) string {
	return now.Local().Format(Layout)
}

// Midnight truncates t to 00:00 local time.
func Midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DaysUntil returns the number of calendar days from now's date to the
// target date, inclusive-style: ceil((target midnight - today midnight) /
// 24h). Both sides are midnight-normalized so DST and partial days cannot
// skew the count. A malformed target yields 0.
func DaysUntil(target string, now time.Time) int {
	end, err := ParseDate(target)
	if err != nil {
		return 0
	}
	diff := Midnight(end).Sub(Midnight(now))
	days := int(diff.Hours() / 24)
	if float64(days)*24 < diff.Hours() {
		days++
	}
	return days
}

// SundayOnOrBefore returns the most recent Sunday at or before t,
// midnight-normalized. If t is itself a Sunday it is returned unchanged
// (at midnight).
func SundayOnOrBefore(t time.Time) time.Time {
	t = Midnight(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}
