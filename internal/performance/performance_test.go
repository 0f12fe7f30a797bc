package performance

import (
	"testing"

	"wolf-journal/internal/breakdown"
	"wolf-journal/internal/metrics"
	"wolf-journal/internal/scoring"
)

const benchSeed = 42

// BenchmarkComputeSnapshot benchmarks the full metrics pass over a large
// journal.
func BenchmarkComputeSnapshot(b *testing.B) {
	trades := GenerateTrades(10000, benchSeed)
	opts := metrics.Options{InitialBalance: 10000, PeriodDays: 365}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		metrics.Compute(trades, opts)
	}
}

// BenchmarkWolfScore benchmarks scoring on top of a precomputed snapshot.
func BenchmarkWolfScore(b *testing.B) {
	trades := GenerateTrades(10000, benchSeed)
	opts := metrics.Options{InitialBalance: 10000, PeriodDays: 365}
	snap := metrics.Compute(trades, opts)
	scorer := scoring.NewScorer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scorer.Score(snap, trades, opts.InitialBalance)
	}
}

// BenchmarkBuildBreakdown benchmarks building the six-level tree.
func BenchmarkBuildBreakdown(b *testing.B) {
	trades := GenerateTrades(10000, benchSeed)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		breakdown.Build(trades)
	}
}

// BenchmarkBuildHeatmap benchmarks flattening into the heatmap matrix.
func BenchmarkBuildHeatmap(b *testing.B) {
	trades := GenerateTrades(10000, benchSeed)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		breakdown.BuildHeatmap(trades)
	}
}

// TestGenerateTradesDeterministic guards the benchmark baseline: the same
// seed must produce the same journal.
func TestGenerateTradesDeterministic(t *testing.T) {
	a := GenerateTrades(100, benchSeed)
	b := GenerateTrades(100, benchSeed)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Symbol != b[i].Symbol || a[i].Outcome != b[i].Outcome {
			t.Fatalf("trade %d differs between runs", i)
		}
		switch {
		case a[i].PnL == nil && b[i].PnL == nil:
		case a[i].PnL != nil && b[i].PnL != nil && *a[i].PnL == *b[i].PnL:
		default:
			t.Fatalf("trade %d pnl differs between runs", i)
		}
	}
}

// TestGeneratedJournalIsWellFormed sanity-checks that generated trades flow
// through the whole pipeline without degenerate output.
func TestGeneratedJournalIsWellFormed(t *testing.T) {
	trades := GenerateTrades(1000, benchSeed)

	snap := metrics.Compute(trades, metrics.Options{InitialBalance: 10000, PeriodDays: 365})
	if snap.TotalTrades != 1000 {
		t.Errorf("TotalTrades = %d, want 1000", snap.TotalTrades)
	}
	if snap.Wins == 0 || snap.Losses == 0 {
		t.Errorf("generator produced a one-sided journal: %d wins, %d losses", snap.Wins, snap.Losses)
	}

	result := scoring.NewScorer().Score(snap, trades, 10000)
	if result.Composite < 0 || result.Composite > 100 {
		t.Errorf("Composite = %d out of range", result.Composite)
	}

	root := breakdown.Build(trades)
	if root.Stats.Trades != 1000 {
		t.Errorf("breakdown root trades = %d, want 1000", root.Stats.Trades)
	}
}
