package metrics

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"wolf-journal/internal/models"
)

// tradeListGen generates a realized trade list: every trade carries a pnl, a
// WIN/LOSS/BREAKEVEN outcome consistent with it, and a dated entry.
func tradeListGen(minLen, maxLen int) gopter.Gen {
	return gen.SliceOfN(maxLen, gen.Float64Range(-500, 500)).Map(func(pnls []float64) []models.TradeRecord {
		if len(pnls) < minLen {
			for len(pnls) < minLen {
				pnls = append(pnls, 100)
			}
		}
		base := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
		trades := make([]models.TradeRecord, len(pnls))
		for i, p := range pnls {
			amount := p
			outcome := models.OutcomeBreakeven
			if amount > 0 {
				outcome = models.OutcomeWin
			} else if amount < 0 {
				outcome = models.OutcomeLoss
			}
			entry := base.Add(time.Duration(i) * 24 * time.Hour)
			exit := entry.Add(time.Hour)
			trades[i] = models.TradeRecord{
				ID:        fmt.Sprintf("GEN-%04d", i),
				Symbol:    "EURUSD",
				Direction: models.DirectionLong,
				PnL:       &amount,
				Outcome:   outcome,
				EntryDate: entry.Format(models.DateLayout),
				EntryTime: entry.Format(models.TimeLayout),
				ExitDate:  exit.Format(models.DateLayout),
				ExitTime:  exit.Format(models.TimeLayout),
			}
		}
		return trades
	})
}

// TestProperty_MetricsAreFinite tests that no metric ever produces NaN or Inf.
func TestProperty_MetricsAreFinite(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("All snapshot metrics are finite", prop.ForAll(
		func(trades []models.TradeRecord) bool {
			snap := Compute(trades, Options{InitialBalance: 10000, RiskFreeRate: 0, PeriodDays: 365})
			values := []float64{
				snap.WinRate, snap.NetPnL, snap.GrossProfit, snap.GrossLoss,
				snap.ProfitFactor, snap.AvgWin, snap.AvgLoss, snap.MaxDrawdown,
				snap.SharpeRatio, snap.CalmarRatio,
				snap.HoldTime.AvgWinnerMinutes, snap.HoldTime.AvgLoserMinutes, snap.HoldTime.AvgMinutes,
			}
			for _, v := range values {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return false
				}
			}
			return true
		},
		tradeListGen(0, 50),
	))

	properties.TestingRun(t)
}

// TestProperty_WinRateWithinBounds tests that the win rate stays in [0, 100].
func TestProperty_WinRateWithinBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("Win rate is within [0, 100]", prop.ForAll(
		func(trades []models.TradeRecord) bool {
			rate := WinRate(trades)
			return rate >= 0 && rate <= 100
		},
		tradeListGen(0, 50),
	))

	properties.TestingRun(t)
}

// TestProperty_DrawdownOrderInvariant tests that shuffled input produces the
// same drawdown as chronological input.
func TestProperty_DrawdownOrderInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("Drawdown does not depend on input order", prop.ForAll(
		func(trades []models.TradeRecord) bool {
			want := MaxDrawdown(trades)

			reversed := make([]models.TradeRecord, len(trades))
			for i, tr := range trades {
				reversed[len(trades)-1-i] = tr
			}
			return math.Abs(MaxDrawdown(reversed)-want) < 1e-9
		},
		tradeListGen(0, 50),
	))

	properties.TestingRun(t)
}

// TestProperty_SharpeMonotonicInRiskFreeRate tests that raising the
// risk-free rate never raises the Sharpe ratio.
func TestProperty_SharpeMonotonicInRiskFreeRate(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("Sharpe is non-increasing in the risk-free rate", prop.ForAll(
		func(trades []models.TradeRecord, rfLow, rfHigh float64) bool {
			if rfLow > rfHigh {
				rfLow, rfHigh = rfHigh, rfLow
			}
			low := SharpeRatio(trades, rfLow)
			high := SharpeRatio(trades, rfHigh)
			// Zero-sample and zero-variance inputs pin both to 0.
			if low == 0 && high == 0 {
				return true
			}
			return high <= low+1e-9
		},
		tradeListGen(2, 50),
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
	))

	properties.TestingRun(t)
}

// TestProperty_DrawdownNonNegative tests that drawdown is never negative and
// never exceeds the total gross loss.
func TestProperty_DrawdownNonNegative(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("Drawdown is within [0, gross loss]", prop.ForAll(
		func(trades []models.TradeRecord) bool {
			dd := MaxDrawdown(trades)
			if dd < 0 {
				return false
			}
			var grossLoss float64
			for _, tr := range trades {
				if p, ok := tr.RealizedPnL(); ok && p < 0 {
					grossLoss += -p
				}
			}
			return dd <= grossLoss+1e-9
		},
		tradeListGen(0, 50),
	))

	properties.TestingRun(t)
}
