// Package performance provides synthetic journal generation for benchmarks
// and load-style tests over the analytics pipeline.
package performance

import (
	"fmt"
	"math/rand"
	"time"

	"wolf-journal/internal/models"
)

var (
	symbols   = []string{"EURUSD", "GBPUSD", "USDJPY", "XAUUSD", "NAS100"}
	htfs      = []string{models.TimeframeDaily, models.TimeframeH4, models.TimeframeH1}
	ltfs      = []string{models.TimeframeM15, models.TimeframeM5, models.TimeframeM1}
	pdArrays  = []string{models.PDArrayFVG, models.PDArrayOrderBlock, models.PDArrayBreaker, ""}
	sessions  = []string{models.SessionAsia, models.SessionLondon, models.SessionNewYork, models.SessionOverlap}
	tagCombos = []string{"sweep", "sweep, displacement", "ote", "displacement, ote, sweep", ""}
)

// GenerateTrades produces a deterministic synthetic journal of n trades.
// The same seed always yields the same journal, so benchmark runs stay
// comparable.
func GenerateTrades(n int, seed int64) []models.TradeRecord {
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	trades := make([]models.TradeRecord, n)
	for i := range trades {
		entry := base.Add(time.Duration(i) * 6 * time.Hour)
		exit := entry.Add(time.Duration(15+rng.Intn(480)) * time.Minute)

		amount := (rng.Float64() - 0.45) * 1000
		outcome := models.OutcomeBreakeven
		if amount > 0 {
			outcome = models.OutcomeWin
		} else if amount < 0 {
			outcome = models.OutcomeLoss
		}

		trades[i] = models.TradeRecord{
			ID:         fmt.Sprintf("SYN-%06d", i),
			Symbol:     symbols[rng.Intn(len(symbols))],
			Direction:  models.DirectionLong,
			EntryPrice: 1.1,
			StopLoss:   1.095,
			LotSize:    10000,
			PnL:        &amount,
			Outcome:    outcome,
			EntryDate:  entry.Format(models.DateLayout),
			EntryTime:  entry.Format(models.TimeLayout),
			ExitDate:   exit.Format(models.DateLayout),
			ExitTime:   exit.Format(models.TimeLayout),
			HTF:        htfs[rng.Intn(len(htfs))],
			LTF:        ltfs[rng.Intn(len(ltfs))],
			PDArray:    pdArrays[rng.Intn(len(pdArrays))],
			Session:    sessions[rng.Intn(len(sessions))],
			Tags:       tagCombos[rng.Intn(len(tagCombos))],
		}
		if rng.Intn(20) == 0 {
			trades[i].Outcome = models.OutcomePending
			trades[i].PnL = nil
			trades[i].ExitDate = ""
			trades[i].ExitTime = ""
		}
	}
	return trades
}
