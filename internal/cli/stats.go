package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wolf-journal/internal/logging"
	"wolf-journal/internal/metrics"
	"wolf-journal/internal/scoring"
	"wolf-journal/internal/store"
	"wolf-journal/pkg/utils"
)

// addStatsCommand adds the performance snapshot command.
func addStatsCommand(rootCmd *cobra.Command, app *App) {
	var symbol, session, htf string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Performance metrics and Wolf Score",
		Long:  "Compute the full performance snapshot over recorded trades and score it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			trades, err := fetchTrades(app, store.TradeFilter{
				Symbol:  symbol,
				Session: session,
				HTF:     htf,
			})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			opts := metrics.Options{
				InitialBalance: app.Config.Account.InitialBalance,
				RiskFreeRate:   app.Config.Account.RiskFreeRate,
				PeriodDays:     app.Config.Account.PeriodDays,
			}
			snap := metrics.Compute(trades, opts)
			score := scoring.NewScorer().Score(snap, trades, opts.InitialBalance)

			logging.LogSnapshot(app.Logger, snap.TotalTrades, snap.WinRate, score.Composite, score.Grade)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"snapshot": snap,
					"score":    score,
				})
			}

			renderSnapshot(output, snap)
			renderScore(output, score)
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Filter by symbol")
	cmd.Flags().StringVar(&session, "session", "", "Filter by session")
	cmd.Flags().StringVar(&htf, "htf", "", "Filter by analysis timeframe")

	rootCmd.AddCommand(cmd)
}

func renderSnapshot(output *Output, snap metrics.Snapshot) {
	output.Println()
	output.Bold("  Performance Snapshot")
	output.Println()

	table := NewTable(output, "Metric", "Value")
	table.AddRow("Total Trades", fmt.Sprintf("%d", snap.TotalTrades))
	table.AddRow("Wins / Losses", fmt.Sprintf("%d / %d", snap.Wins, snap.Losses))
	table.AddRow("Breakeven / Pending", fmt.Sprintf("%d / %d", snap.Breakeven, snap.Pending))
	table.AddRow("Win Rate", output.FormatPercent(snap.WinRate))
	table.AddRow("Net P&L", output.FormatPnL(snap.NetPnL))
	table.AddRow("Gross Profit", utils.FormatCurrency(snap.GrossProfit))
	table.AddRow("Gross Loss", utils.FormatCurrency(snap.GrossLoss))
	table.AddRow("Profit Factor", formatRatio(snap.ProfitFactor))
	table.AddRow("Avg Win", utils.FormatCurrency(snap.AvgWin))
	table.AddRow("Avg Loss", utils.FormatCurrency(snap.AvgLoss))
	table.AddRow("Max Drawdown", utils.FormatCurrency(snap.MaxDrawdown))
	table.AddRow("Sharpe Ratio", formatRatio(snap.SharpeRatio))
	table.AddRow("Calmar Ratio", formatRatio(snap.CalmarRatio))
	table.AddRow("Avg Hold (all)", utils.FormatMinutes(snap.HoldTime.AvgMinutes))
	table.AddRow("Avg Hold (winners)", utils.FormatMinutes(snap.HoldTime.AvgWinnerMinutes))
	table.AddRow("Avg Hold (losers)", utils.FormatMinutes(snap.HoldTime.AvgLoserMinutes))
	table.AddRow("Max Win Streak", fmt.Sprintf("%d", snap.Streaks.MaxWinStreak))
	table.AddRow("Max Loss Streak", fmt.Sprintf("%d", snap.Streaks.MaxLossStreak))
	table.AddRow("Current Streak", formatStreak(snap.Streaks))
	table.Render()
}

func renderScore(output *Output, score scoring.Result) {
	output.Println()
	output.Box("Wolf Score", []string{
		fmt.Sprintf("Composite:    %d  [%s]", score.Composite, output.Grade(score.Grade)),
		"",
		fmt.Sprintf("Win Rate:     %.1f", score.WinRateScore),
		fmt.Sprintf("Profit Factor: %.1f", score.ProfitFactorScore),
		fmt.Sprintf("Payoff Ratio: %.1f", score.PayoffRatioScore),
		fmt.Sprintf("Drawdown:     %.1f", score.DrawdownScore),
		fmt.Sprintf("Consistency:  %.1f", score.ConsistencyScore),
	})
	output.Println()
}

func formatRatio(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatStreak(s metrics.StreakStats) string {
	switch s.CurrentType {
	case metrics.StreakWin:
		return fmt.Sprintf("%d wins", s.CurrentCount)
	case metrics.StreakLoss:
		return fmt.Sprintf("%d losses", s.CurrentCount)
	default:
		return "none"
	}
}
