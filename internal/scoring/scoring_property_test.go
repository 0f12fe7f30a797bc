package scoring

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"wolf-journal/internal/metrics"
	"wolf-journal/internal/models"
)

// snapshotGen generates metric snapshots across the full plausible range,
// including the profit factor sentinel.
func snapshotGen() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(0, 100),                       // win rate
		gen.Float64Range(0, metrics.MaxProfitFactor),   // profit factor
		gen.Float64Range(0, 1000),                      // avg win
		gen.Float64Range(-1000, 0),                     // avg loss
		gen.Float64Range(0, 20000),                     // max drawdown
	).Map(func(values []interface{}) metrics.Snapshot {
		return metrics.Snapshot{
			WinRate:      values[0].(float64),
			ProfitFactor: values[1].(float64),
			AvgWin:       values[2].(float64),
			AvgLoss:      values[3].(float64),
			MaxDrawdown:  values[4].(float64),
		}
	})
}

func realizedListGen(maxLen int) gopter.Gen {
	return gen.SliceOfN(maxLen, gen.Float64Range(-500, 500)).Map(func(pnls []float64) []models.TradeRecord {
		trades := make([]models.TradeRecord, len(pnls))
		for i := range pnls {
			amount := pnls[i]
			outcome := models.OutcomeBreakeven
			if amount > 0 {
				outcome = models.OutcomeWin
			} else if amount < 0 {
				outcome = models.OutcomeLoss
			}
			trades[i] = models.TradeRecord{Outcome: outcome, PnL: &amount}
		}
		return trades
	})
}

// TestProperty_SubScoresWithinBounds tests that every sub-score and the
// composite stay inside [0, 100] for arbitrary snapshots.
func TestProperty_SubScoresWithinBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("All scores are within [0, 100]", prop.ForAll(
		func(snap metrics.Snapshot, trades []models.TradeRecord, balance float64) bool {
			result := NewScorer().Score(snap, trades, balance)
			scores := []float64{
				result.WinRateScore, result.ProfitFactorScore, result.PayoffRatioScore,
				result.DrawdownScore, result.ConsistencyScore, float64(result.Composite),
			}
			for _, s := range scores {
				if s < 0 || s > 100 {
					return false
				}
			}
			return true
		},
		snapshotGen(),
		realizedListGen(30),
		gen.Float64Range(0, 100000),
	))

	properties.TestingRun(t)
}

// TestProperty_GradeMatchesComposite tests that the grade always agrees with
// the composite's threshold band.
func TestProperty_GradeMatchesComposite(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("Grade matches the composite threshold", prop.ForAll(
		func(snap metrics.Snapshot, trades []models.TradeRecord, balance float64) bool {
			result := NewScorer().Score(snap, trades, balance)
			return result.Grade == expectedGrade(result.Composite)
		},
		snapshotGen(),
		realizedListGen(30),
		gen.Float64Range(0, 100000),
	))

	properties.TestingRun(t)
}

func expectedGrade(composite int) string {
	switch {
	case composite >= 90:
		return "S"
	case composite >= 80:
		return "A"
	case composite >= 70:
		return "B"
	case composite >= 60:
		return "C"
	case composite >= 50:
		return "D"
	default:
		return "F"
	}
}

// TestProperty_ProfitFactorScoreMonotonic tests that a higher profit factor
// never scores lower than a smaller one.
func TestProperty_ProfitFactorScoreMonotonic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("Profit factor score is monotonic", prop.ForAll(
		func(a, b float64) bool {
			if a > b {
				a, b = b, a
			}
			scorer := NewScorer()
			low := scorer.Score(metrics.Snapshot{ProfitFactor: a}, nil, 10000).ProfitFactorScore
			high := scorer.Score(metrics.Snapshot{ProfitFactor: b}, nil, 10000).ProfitFactorScore
			return high >= low
		},
		gen.Float64Range(0, 10),
		gen.Float64Range(0, 10),
	))

	properties.TestingRun(t)
}
