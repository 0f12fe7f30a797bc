// Package scoring maps derived metrics into the composite Wolf Score: five
// normalized 0-100 sub-scores, a rounded composite, and a letter grade.
package scoring

import (
	"math"

	"wolf-journal/internal/metrics"
	"wolf-journal/internal/models"
)

// Result holds the five sub-scores together with the composite and grade.
type Result struct {
	WinRateScore      float64
	ProfitFactorScore float64
	PayoffRatioScore  float64
	DrawdownScore     float64
	ConsistencyScore  float64
	Composite         int
	Grade             string
}

// Scorer computes Wolf Scores from an injected set of band tables.
type Scorer struct {
	bands Bands
}

// NewScorer creates a scorer with the default band tables.
func NewScorer() *Scorer {
	return &Scorer{bands: DefaultBands()}
}

// NewScorerWithBands creates a scorer with custom band tables.
func NewScorerWithBands(bands Bands) *Scorer {
	return &Scorer{bands: bands}
}

// Score computes the Wolf Score for a metrics snapshot. The trade list is
// needed for the consistency sub-score; balance anchors the drawdown
// sub-score. Degenerate input produces the documented sub-score defaults,
// never an error.
func (s *Scorer) Score(snap metrics.Snapshot, trades []models.TradeRecord, balance float64) Result {
	r := Result{
		WinRateScore:      s.winRateScore(snap.WinRate),
		ProfitFactorScore: interpolate(s.bands.ProfitFactor, snap.ProfitFactor),
		PayoffRatioScore:  s.payoffRatioScore(snap.AvgWin, snap.AvgLoss),
		DrawdownScore:     s.drawdownScore(snap.MaxDrawdown, balance),
		ConsistencyScore:  s.consistencyScore(trades),
	}

	sum := r.WinRateScore + r.ProfitFactorScore + r.PayoffRatioScore + r.DrawdownScore + r.ConsistencyScore
	r.Composite = int(math.Round(sum / 5))
	r.Grade = s.grade(r.Composite)

	return r
}

// winRateScore scales the win rate so the basis rate (60% by default) caps
// the score at 100.
func (s *Scorer) winRateScore(winRate float64) float64 {
	basis := s.bands.WinRateBasis
	if basis <= 0 {
		return 0
	}
	return clamp(winRate/basis*100, 0, 100)
}

// payoffRatioScore runs avgWin/avgLoss through the ratio bands. No losses
// with wins on the books counts as a capped ratio; no wins scores 0.
func (s *Scorer) payoffRatioScore(avgWin, avgLoss float64) float64 {
	if avgWin == 0 {
		return 0
	}
	if avgLoss == 0 {
		return 100
	}
	return interpolate(s.bands.PayoffRatio, avgWin/math.Abs(avgLoss))
}

// drawdownScore is 100 minus the drawdown as a percentage of the balance,
// floored at 0. No drawdown is a full score regardless of balance.
func (s *Scorer) drawdownScore(maxDrawdown, balance float64) float64 {
	if maxDrawdown == 0 {
		return 100
	}
	if balance <= 0 {
		return 0
	}
	return clamp(100-maxDrawdown/balance*100, 0, 100)
}

// consistencyScore is 100 minus 100 times the coefficient of variation of
// the per-trade pnl series: population stddev over the magnitude of the net
// result. A single trade or a zero-variance series scores 100.
func (s *Scorer) consistencyScore(trades []models.TradeRecord) float64 {
	var pnls []float64
	var net float64
	for _, t := range trades {
		if pnl, ok := t.RealizedPnL(); ok {
			pnls = append(pnls, pnl)
			net += pnl
		}
	}
	if len(pnls) < 2 {
		return 100
	}

	var mean float64
	for _, p := range pnls {
		mean += p
	}
	mean /= float64(len(pnls))

	var variance float64
	for _, p := range pnls {
		diff := p - mean
		variance += diff * diff
	}
	variance /= float64(len(pnls))
	std := math.Sqrt(variance)

	if std == 0 {
		return 100
	}
	magnitude := math.Abs(net)
	if magnitude == 0 {
		return 0
	}
	cv := std / magnitude
	return clamp(100-cv*100, 0, 100)
}

func (s *Scorer) grade(composite int) string {
	for _, g := range s.bands.Grades {
		if composite >= g.Min {
			return g.Grade
		}
	}
	if len(s.bands.Grades) == 0 {
		return ""
	}
	return s.bands.Grades[len(s.bands.Grades)-1].Grade
}

func clamp(value, minVal, maxVal float64) float64 {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
