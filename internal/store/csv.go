package store

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"wolf-journal/internal/models"
)

// csvTrade is the row shape of a journal CSV export. Optional numeric and
// date fields are strings so an empty cell stays distinguishable from zero.
type csvTrade struct {
	ID         string `csv:"id"`
	Symbol     string `csv:"symbol"`
	Direction  string `csv:"direction"`
	EntryPrice string `csv:"entry_price"`
	ExitPrice  string `csv:"exit_price"`
	StopLoss   string `csv:"stop_loss"`
	TakeProfit string `csv:"take_profit"`
	LotSize    string `csv:"lot_size"`
	PnL        string `csv:"pnl"`
	Outcome    string `csv:"outcome"`
	EntryDate  string `csv:"entry_date"`
	EntryTime  string `csv:"entry_time"`
	ExitDate   string `csv:"exit_date"`
	ExitTime   string `csv:"exit_time"`
	HTF        string `csv:"htf"`
	LTF        string `csv:"ltf"`
	PDArray    string `csv:"pd_array"`
	Session    string `csv:"session"`
	Tags       string `csv:"tags"`
}

// LoadCSV reads a journal CSV export into trade records. Tags are
// normalized at ingestion; a row without an outcome derives one from its
// pnl, defaulting to pending when no pnl is present.
func LoadCSV(path string) ([]models.TradeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	var rows []*csvTrade
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}

	trades := make([]models.TradeRecord, 0, len(rows))
	for i, row := range rows {
		t := models.TradeRecord{
			ID:         row.ID,
			Symbol:     strings.TrimSpace(row.Symbol),
			Direction:  parseDirection(row.Direction),
			EntryPrice: parseFloat(row.EntryPrice),
			ExitPrice:  parseFloat(row.ExitPrice),
			StopLoss:   parseFloat(row.StopLoss),
			TakeProfit: parseFloat(row.TakeProfit),
			LotSize:    parseFloat(row.LotSize),
			EntryDate:  strings.TrimSpace(row.EntryDate),
			EntryTime:  strings.TrimSpace(row.EntryTime),
			ExitDate:   strings.TrimSpace(row.ExitDate),
			ExitTime:   strings.TrimSpace(row.ExitTime),
			HTF:        strings.TrimSpace(row.HTF),
			LTF:        strings.TrimSpace(row.LTF),
			PDArray:    strings.TrimSpace(row.PDArray),
			Session:    strings.TrimSpace(row.Session),
			Tags:       models.TagComboLabel(row.Tags),
		}
		if t.ID == "" {
			t.ID = fmt.Sprintf("CSV-%04d", i+1)
		}
		if v := strings.TrimSpace(row.PnL); v != "" {
			if pnl, err := strconv.ParseFloat(v, 64); err == nil {
				t.PnL = &pnl
			}
		}
		t.Outcome = parseOutcome(row.Outcome, t.PnL)
		trades = append(trades, t)
	}

	return trades, nil
}

func parseDirection(s string) models.Direction {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SHORT", "SELL":
		return models.DirectionShort
	default:
		return models.DirectionLong
	}
}

func parseOutcome(s string, pnl *float64) models.Outcome {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WIN":
		return models.OutcomeWin
	case "LOSS":
		return models.OutcomeLoss
	case "BREAKEVEN", "BE":
		return models.OutcomeBreakeven
	case "PENDING":
		return models.OutcomePending
	}
	if pnl == nil {
		return models.OutcomePending
	}
	switch {
	case *pnl > 0:
		return models.OutcomeWin
	case *pnl < 0:
		return models.OutcomeLoss
	default:
		return models.OutcomeBreakeven
	}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
