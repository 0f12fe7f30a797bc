package utils

import (
	"time"

	"wolf-journal/internal/models"
)

// Session windows in UTC. The overlap window is checked before the
// individual sessions so a trade inside it is tagged with the overlap.
var sessionWindows = []struct {
	label      string
	start, end int // minutes from midnight UTC, end exclusive
}{
	{models.SessionOverlap, 12 * 60, 16 * 60},
	{models.SessionLondon, 7 * 60, 12 * 60},
	{models.SessionNewYork, 16 * 60, 21 * 60},
	{models.SessionAsia, 0, 7 * 60},
}

// ClassifySession maps an entry timestamp to a trading session label.
// Times outside every window fall back to the Asia session, which wraps
// around midnight.
func ClassifySession(t time.Time) string {
	minutes := t.UTC().Hour()*60 + t.UTC().Minute()
	for _, w := range sessionWindows {
		if minutes >= w.start && minutes < w.end {
			return w.label
		}
	}
	return models.SessionAsia
}

// SessionFor returns the trade's session tag, deriving one from the entry
// timestamp when the journal entry carries none.
func SessionFor(t models.TradeRecord) string {
	if t.Session != "" {
		return t.Session
	}
	ts, ok := t.EntryTimestamp()
	if !ok {
		return ""
	}
	return ClassifySession(ts)
}
