// Package metrics derives performance statistics from a trade list.
// Every function is total: degenerate input maps to a documented default,
// never an error, panic, or NaN.
package metrics

import (
	"math"
	"sort"

	"wolf-journal/internal/models"
)

// MaxProfitFactor is the sentinel returned when wins exist and there are no
// losses. A large finite value keeps ordering comparisons well-defined where
// infinity or NaN would not be.
const MaxProfitFactor = 9999.0

// Options parameterizes a full snapshot computation.
type Options struct {
	InitialBalance float64
	RiskFreeRate   float64
	PeriodDays     int
}

// Snapshot is the derived metrics set for one evaluation window. It is
// recomputed fresh on every call and never persisted.
type Snapshot struct {
	TotalTrades int
	Wins        int
	Losses      int
	Breakeven   int
	Pending     int

	WinRate      float64
	NetPnL       float64
	GrossProfit  float64
	GrossLoss    float64
	ProfitFactor float64
	AvgWin       float64
	AvgLoss      float64
	MaxDrawdown  float64
	SharpeRatio  float64
	CalmarRatio  float64

	HoldTime HoldTimeStats
	Streaks  StreakStats
}

// HoldTimeStats holds average trade durations in minutes. Trades without a
// full exit timestamp are excluded from the averages, not counted as zero.
type HoldTimeStats struct {
	AvgWinnerMinutes float64
	AvgLoserMinutes  float64
	AvgMinutes       float64
}

// StreakType identifies what kind of streak is currently running.
type StreakType string

const (
	StreakNone StreakType = ""
	StreakWin  StreakType = "WIN"
	StreakLoss StreakType = "LOSS"
)

// StreakStats tracks the current and longest consecutive win/loss runs.
type StreakStats struct {
	CurrentType   StreakType
	CurrentCount  int
	MaxWinStreak  int
	MaxLossStreak int
}

// Compute assembles the full snapshot for a trade list.
func Compute(trades []models.TradeRecord, opts Options) Snapshot {
	snap := Snapshot{TotalTrades: len(trades)}

	for _, t := range trades {
		switch t.Outcome {
		case models.OutcomeWin:
			snap.Wins++
		case models.OutcomeLoss:
			snap.Losses++
		case models.OutcomeBreakeven:
			snap.Breakeven++
		default:
			snap.Pending++
		}
		pnl, ok := t.RealizedPnL()
		if !ok {
			continue
		}
		snap.NetPnL += pnl
		if pnl > 0 {
			snap.GrossProfit += pnl
		} else if pnl < 0 {
			snap.GrossLoss += -pnl
		}
	}

	snap.WinRate = WinRate(trades)
	snap.ProfitFactor = ProfitFactor(trades)
	snap.AvgWin, snap.AvgLoss = AvgWinLoss(trades)
	snap.MaxDrawdown = MaxDrawdown(trades)
	snap.SharpeRatio = SharpeRatio(trades, opts.RiskFreeRate)
	snap.CalmarRatio = CalmarRatio(trades, opts.InitialBalance, opts.PeriodDays)
	snap.HoldTime = AverageHoldTime(trades)
	snap.Streaks = ConsecutiveStreaks(trades)

	return snap
}

// WinRate returns wins over decided trades as a percentage. Breakeven and
// pending trades do not count toward the denominator.
func WinRate(trades []models.TradeRecord) float64 {
	var wins, losses int
	for _, t := range trades {
		switch t.Outcome {
		case models.OutcomeWin:
			wins++
		case models.OutcomeLoss:
			losses++
		}
	}
	if wins+losses == 0 {
		return 0
	}
	return float64(wins) / float64(wins+losses) * 100
}

// ProfitFactor returns gross profit over gross loss. With wins and no
// losses it returns MaxProfitFactor; with no wins it returns 0.
func ProfitFactor(trades []models.TradeRecord) float64 {
	var profit, loss float64
	for _, t := range trades {
		pnl, ok := t.RealizedPnL()
		if !ok {
			continue
		}
		if pnl > 0 {
			profit += pnl
		} else if pnl < 0 {
			loss += -pnl
		}
	}
	if profit == 0 {
		return 0
	}
	if loss == 0 {
		return MaxProfitFactor
	}
	return profit / loss
}

// AvgWinLoss returns the mean positive pnl and the mean negative pnl.
// An empty set yields 0. AvgLoss is reported as a negative number.
func AvgWinLoss(trades []models.TradeRecord) (avgWin, avgLoss float64) {
	var winSum, lossSum float64
	var wins, losses int
	for _, t := range trades {
		pnl, ok := t.RealizedPnL()
		if !ok {
			continue
		}
		if pnl > 0 {
			winSum += pnl
			wins++
		} else if pnl < 0 {
			lossSum += pnl
			losses++
		}
	}
	if wins > 0 {
		avgWin = winSum / float64(wins)
	}
	if losses > 0 {
		avgLoss = lossSum / float64(losses)
	}
	return avgWin, avgLoss
}

// MaxDrawdown builds a running equity curve from cumulative pnl in
// chronological order and returns the largest peak-to-trough decline. The
// input is sorted here; callers need not pre-sort.
func MaxDrawdown(trades []models.TradeRecord) float64 {
	sorted := sortChronological(trades)

	var equity, peak, maxDD float64
	for _, t := range sorted {
		pnl, ok := t.RealizedPnL()
		if !ok {
			continue
		}
		equity += pnl
		if equity > peak {
			peak = equity
		}
		if dd := peak - equity; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// SharpeRatio treats each realized trade's pnl as one return sample in
// chronological order: (mean - riskFreeRate) / population stddev. Fewer than
// two samples or zero variance yields 0. No annualization is applied.
func SharpeRatio(trades []models.TradeRecord, riskFreeRate float64) float64 {
	pnls := realizedPnLs(sortChronological(trades))
	if len(pnls) < 2 {
		return 0
	}
	mean := meanOf(pnls)
	std := populationStdDev(pnls, mean)
	if std == 0 {
		return 0
	}
	return (mean - riskFreeRate) / std
}

// CalmarRatio relates the annualized return percent to the drawdown percent
// of the starting balance. periodDays scales the observed return to a year;
// values <= 0 fall back to 365. Empty trades, a non-positive balance, or a
// zero drawdown all yield 0.
func CalmarRatio(trades []models.TradeRecord, initialBalance float64, periodDays int) float64 {
	if len(trades) == 0 || initialBalance <= 0 {
		return 0
	}
	maxDD := MaxDrawdown(trades)
	if maxDD == 0 {
		return 0
	}
	if periodDays <= 0 {
		periodDays = 365
	}

	var net float64
	for _, t := range trades {
		if pnl, ok := t.RealizedPnL(); ok {
			net += pnl
		}
	}
	returnPct := net / initialBalance * 100
	annualizedPct := returnPct * 365 / float64(periodDays)
	drawdownPct := maxDD / initialBalance * 100

	return annualizedPct / drawdownPct
}

// AverageHoldTime averages trade durations in whole minutes for trades that
// have a full exit timestamp, split into winners, losers, and overall.
func AverageHoldTime(trades []models.TradeRecord) HoldTimeStats {
	var winSum, lossSum, allSum int
	var winN, lossN, allN int
	for _, t := range trades {
		if t.ExitDate == "" || t.ExitTime == "" {
			continue
		}
		minutes := TradeDuration(t)
		allSum += minutes
		allN++
		switch t.Outcome {
		case models.OutcomeWin:
			winSum += minutes
			winN++
		case models.OutcomeLoss:
			lossSum += minutes
			lossN++
		}
	}

	var stats HoldTimeStats
	if winN > 0 {
		stats.AvgWinnerMinutes = float64(winSum) / float64(winN)
	}
	if lossN > 0 {
		stats.AvgLoserMinutes = float64(lossSum) / float64(lossN)
	}
	if allN > 0 {
		stats.AvgMinutes = float64(allSum) / float64(allN)
	}
	return stats
}

// ConsecutiveStreaks walks the trades chronologically tracking consecutive
// wins and losses. A breakeven or pending trade breaks the running streak
// without starting a new one.
func ConsecutiveStreaks(trades []models.TradeRecord) StreakStats {
	var stats StreakStats
	for _, t := range sortChronological(trades) {
		switch t.Outcome {
		case models.OutcomeWin:
			if stats.CurrentType == StreakWin {
				stats.CurrentCount++
			} else {
				stats.CurrentType = StreakWin
				stats.CurrentCount = 1
			}
			if stats.CurrentCount > stats.MaxWinStreak {
				stats.MaxWinStreak = stats.CurrentCount
			}
		case models.OutcomeLoss:
			if stats.CurrentType == StreakLoss {
				stats.CurrentCount++
			} else {
				stats.CurrentType = StreakLoss
				stats.CurrentCount = 1
			}
			if stats.CurrentCount > stats.MaxLossStreak {
				stats.MaxLossStreak = stats.CurrentCount
			}
		default:
			stats.CurrentType = StreakNone
			stats.CurrentCount = 0
		}
	}
	return stats
}

// TradeDuration returns the trade's hold time in whole minutes, floored.
// Missing exit date or time yields 0; a missing entry time counts from
// midnight.
func TradeDuration(t models.TradeRecord) int {
	exit, ok := t.ExitTimestamp()
	if !ok {
		return 0
	}
	if t.EntryDate == "" {
		return 0
	}
	entry, ok := t.EntryTimestamp()
	if !ok {
		return 0
	}
	minutes := int(exit.Sub(entry).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

// sortChronological returns a copy ordered by entry timestamp. Records
// without a parseable entry timestamp keep their relative position at the
// front.
func sortChronological(trades []models.TradeRecord) []models.TradeRecord {
	sorted := make([]models.TradeRecord, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := sorted[i].EntryTimestamp()
		tj, _ := sorted[j].EntryTimestamp()
		return ti.Before(tj)
	})
	return sorted
}

func realizedPnLs(trades []models.TradeRecord) []float64 {
	var pnls []float64
	for _, t := range trades {
		if pnl, ok := t.RealizedPnL(); ok {
			pnls = append(pnls, pnl)
		}
	}
	return pnls
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationStdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var variance float64
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
