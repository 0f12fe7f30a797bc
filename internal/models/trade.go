package models

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Date and time layouts used by journal entries. Times may carry seconds
// when they come from an import; both layouts are accepted.
const (
	DateLayout        = "2006-01-02"
	TimeLayout        = "15:04"
	TimeLayoutSeconds = "15:04:05"
)

// TradeRecord is a single journal entry for one trade. Dates and times are
// kept as the separate string fields the journal forms capture; empty means
// the field was never filled in. PnL is nil until the trade is realized.
type TradeRecord struct {
	ID         string
	Symbol     string
	Direction  Direction
	EntryPrice float64
	ExitPrice  float64
	StopLoss   float64
	TakeProfit float64
	LotSize    float64
	PnL        *float64
	Outcome    Outcome
	EntryDate  string
	EntryTime  string
	ExitDate   string
	ExitTime   string
	HTF        string
	LTF        string
	PDArray    string
	Session    string
	Tags       string
}

// RealizedPnL returns the trade's pnl and whether it is usable. Pending
// trades and trades missing a pnl are reported as not usable so callers can
// exclude them from the aggregate at hand.
func (t TradeRecord) RealizedPnL() (float64, bool) {
	if t.Outcome == OutcomePending || t.PnL == nil {
		return 0, false
	}
	return *t.PnL, true
}

// EntryTimestamp combines entry date and time. A missing entry time
// defaults to midnight; a missing or malformed entry date means no
// timestamp.
func (t TradeRecord) EntryTimestamp() (time.Time, bool) {
	return combine(t.EntryDate, t.EntryTime)
}

// ExitTimestamp combines exit date and time. Both must be present.
func (t TradeRecord) ExitTimestamp() (time.Time, bool) {
	if t.ExitDate == "" || t.ExitTime == "" {
		return time.Time{}, false
	}
	return combine(t.ExitDate, t.ExitTime)
}

func combine(date, clock string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	if clock == "" {
		return d, true
	}
	c, err := time.Parse(TimeLayoutSeconds, clock)
	if err != nil {
		c, err = time.Parse(TimeLayout, clock)
		if err != nil {
			return time.Time{}, false
		}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, time.UTC), true
}

// RiskedAmount returns the amount risked on the trade: the stop distance
// times the lot size.
func (t TradeRecord) RiskedAmount() float64 {
	return math.Abs(t.EntryPrice-t.StopLoss) * t.LotSize
}

// RMultiple expresses the trade's pnl as a multiple of the risked amount.
// Trades with no realized pnl or a zero stop distance have no R-multiple.
func (t TradeRecord) RMultiple() (float64, bool) {
	pnl, ok := t.RealizedPnL()
	if !ok {
		return 0, false
	}
	risk := t.RiskedAmount()
	if risk == 0 {
		return 0, false
	}
	return pnl / risk, true
}

// NormalizeTags splits a comma-delimited confluence tag string into a
// trimmed, de-duplicated, sorted list. Order of the input is irrelevant.
func NormalizeTags(raw string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// TagComboLabel produces the canonical combo label for a tag string. Two
// raw strings with the same tags in any order yield the same label.
func TagComboLabel(raw string) string {
	return strings.Join(NormalizeTags(raw), ", ")
}
