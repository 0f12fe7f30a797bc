package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wolf-journal/internal/logging"
	"wolf-journal/internal/models"
	"wolf-journal/internal/store"
	"wolf-journal/pkg/utils"
)

// addJournalCommands adds journal record commands.
func addJournalCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Trading journal management",
		Long:  "Record, list, and import trades in your journal.",
	}

	cmd.AddCommand(newJournalAddCmd(app))
	cmd.AddCommand(newJournalListCmd(app))
	cmd.AddCommand(newJournalImportCmd(app))
	cmd.AddCommand(newJournalDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newJournalAddCmd(app *App) *cobra.Command {
	var (
		symbol, direction, outcome       string
		entryDate, entryTime             string
		exitDate, exitTime               string
		htf, ltf, pdArray, session, tags string
		entryPrice, exitPrice            float64
		stopLoss, takeProfit, lotSize    float64
		pnl                              float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Journal store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			trade := models.TradeRecord{
				ID:         fmt.Sprintf("TRD-%s", time.Now().UTC().Format("20060102150405.000")),
				Symbol:     symbol,
				Direction:  models.Direction(direction),
				EntryPrice: entryPrice,
				ExitPrice:  exitPrice,
				StopLoss:   stopLoss,
				TakeProfit: takeProfit,
				LotSize:    lotSize,
				Outcome:    models.Outcome(outcome),
				EntryDate:  entryDate,
				EntryTime:  entryTime,
				ExitDate:   exitDate,
				ExitTime:   exitTime,
				HTF:        htf,
				LTF:        ltf,
				PDArray:    pdArray,
				Session:    session,
				Tags:       tags,
			}
			if cmd.Flags().Changed("pnl") {
				trade.PnL = &pnl
			}
			if trade.EntryDate == "" {
				trade.EntryDate = time.Now().UTC().Format(models.DateLayout)
			}
			if trade.Outcome == "" {
				trade.Outcome = models.OutcomePending
			}
			if trade.Session == "" {
				trade.Session = utils.SessionFor(trade)
			}

			if err := app.Store.SaveTrade(ctx, &trade); err != nil {
				output.Error("Failed to save trade: %v", err)
				return err
			}

			var realized float64
			if trade.PnL != nil {
				realized = *trade.PnL
			}
			logging.LogTradeRecorded(app.Logger, trade.ID, trade.Symbol, string(trade.Direction), realized)
			output.Success("Recorded %s (%s)", trade.ID, trade.Symbol)
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Instrument symbol")
	cmd.Flags().StringVar(&direction, "direction", string(models.DirectionLong), "LONG or SHORT")
	cmd.Flags().Float64Var(&entryPrice, "entry", 0, "Entry price")
	cmd.Flags().Float64Var(&exitPrice, "exit", 0, "Exit price")
	cmd.Flags().Float64Var(&stopLoss, "stop", 0, "Stop loss price")
	cmd.Flags().Float64Var(&takeProfit, "target", 0, "Take profit price")
	cmd.Flags().Float64Var(&lotSize, "lots", 1, "Lot size")
	cmd.Flags().Float64Var(&pnl, "pnl", 0, "Realized P&L")
	cmd.Flags().StringVar(&outcome, "outcome", "", "WIN, LOSS, BREAKEVEN, or PENDING")
	cmd.Flags().StringVar(&entryDate, "entry-date", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&entryTime, "entry-time", "", "Entry time (HH:MM)")
	cmd.Flags().StringVar(&exitDate, "exit-date", "", "Exit date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&exitTime, "exit-time", "", "Exit time (HH:MM)")
	cmd.Flags().StringVar(&htf, "htf", "", "Analysis timeframe (e.g. H4)")
	cmd.Flags().StringVar(&ltf, "ltf", "", "Entry timeframe (e.g. M5)")
	cmd.Flags().StringVar(&pdArray, "pd-array", "", "PD array / market condition")
	cmd.Flags().StringVar(&session, "session", "", "Trading session")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-delimited confluence tags")
	cmd.MarkFlagRequired("symbol")

	return cmd
}

func newJournalListCmd(app *App) *cobra.Command {
	var symbol, session, htf string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			trades, err := fetchTrades(app, store.TradeFilter{
				Symbol:  symbol,
				Session: session,
				HTF:     htf,
				Limit:   limit,
			})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded.")
				return nil
			}

			table := NewTable(output, "ID", "Date", "Symbol", "Dir", "Session", "HTF", "LTF", "PD Array", "Outcome", "P&L")
			for _, t := range trades {
				pnlLabel := "-"
				if pnl, ok := t.RealizedPnL(); ok {
					pnlLabel = output.FormatPnL(pnl)
				}
				table.AddRow(
					t.ID,
					t.EntryDate,
					t.Symbol,
					string(t.Direction),
					t.Session,
					t.HTF,
					t.LTF,
					TruncateString(t.PDArray, 18),
					string(t.Outcome),
					pnlLabel,
				)
			}
			table.Render()
			output.Println()
			output.Printf("  %d trades\n", len(trades))
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Filter by symbol")
	cmd.Flags().StringVar(&session, "session", "", "Filter by session")
	cmd.Flags().StringVar(&htf, "htf", "", "Filter by analysis timeframe")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of trades")

	return cmd
}

func newJournalImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import trades from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Journal store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			trades, err := store.LoadCSV(args[0])
			if err != nil {
				output.Error("Failed to read CSV: %v", err)
				return err
			}

			imported, skipped := 0, 0
			for i := range trades {
				if err := app.Store.SaveTrade(ctx, &trades[i]); err != nil {
					app.Logger.Warn().Err(err).Str("trade_id", trades[i].ID).Msg("Skipping trade")
					skipped++
					continue
				}
				imported++
			}

			logging.LogImport(app.Logger, args[0], imported, skipped)
			output.Success("Imported %d trades (%d skipped)", imported, skipped)
			return nil
		},
	}

	return cmd
}

func newJournalDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Journal store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := app.Store.DeleteTrade(ctx, args[0]); err != nil {
				output.Error("Failed to delete trade: %v", err)
				return err
			}
			output.Success("Deleted %s", args[0])
			return nil
		},
	}
}

// fetchTrades pulls trades from the store with a shared timeout.
func fetchTrades(app *App, filter store.TradeFilter) ([]models.TradeRecord, error) {
	if app.Store == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return app.Store.GetTrades(ctx, filter)
}
