package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wolf-journal/internal/breakdown"
	"wolf-journal/internal/store"
	"wolf-journal/pkg/utils"
)

// addBreakdownCommands adds the hierarchical breakdown and heatmap commands.
func addBreakdownCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newBreakdownCmd(app))
	rootCmd.AddCommand(newHeatmapCmd(app))
}

func newBreakdownCmd(app *App) *cobra.Command {
	var symbol, session string
	var depth int

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Hierarchical performance breakdown",
		Long:  "Group trades by timeframe, PD array, session, and confluence tags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			trades, err := fetchTrades(app, store.TradeFilter{
				Symbol:  symbol,
				Session: session,
			})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			root := breakdown.Build(trades)

			if output.IsJSON() {
				return output.JSON(root)
			}

			if len(root.ChildOrder) == 0 {
				output.Info("No trades to break down.")
				return nil
			}

			output.Println()
			output.Bold("  Performance Breakdown")
			output.Println()
			root.Walk(func(node *breakdown.Node, d int) {
				if d == 0 {
					return
				}
				if depth > 0 && d > depth {
					return
				}
				renderBreakdownNode(output, node, d)
			})
			output.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Filter by symbol")
	cmd.Flags().StringVar(&session, "session", "", "Filter by session")
	cmd.Flags().IntVar(&depth, "depth", 0, "Maximum grouping depth (0 = all)")

	return cmd
}

func renderBreakdownNode(output *Output, node *breakdown.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	s := node.Stats
	output.Printf("%s%-24s %3d trades  %s win  %s  avg %s\n",
		indent,
		TruncateString(node.Label, 24),
		s.Trades,
		output.FormatPercent(s.WinRate),
		output.FormatPnL(s.NetPnL),
		utils.FormatRMultiple(s.AvgR),
	)
}

func newHeatmapCmd(app *App) *cobra.Command {
	var symbol string

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Timeframe alignment heatmap",
		Long:  "Cross-tabulate analysis timeframe and PD array against entry timeframe.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			trades, err := fetchTrades(app, store.TradeFilter{Symbol: symbol})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			hm := breakdown.BuildHeatmap(trades)

			if output.IsJSON() {
				return output.JSON(heatmapJSON(hm))
			}

			if len(hm.Rows) == 0 {
				output.Info("No trades to map.")
				return nil
			}

			headers := append([]string{"HTF / PD Array"}, hm.Columns...)
			table := NewTable(output, headers...)
			for _, row := range hm.Rows {
				cells := []string{fmt.Sprintf("%s / %s", row.HTF, TruncateString(row.PDArray, 16))}
				for _, ltf := range hm.Columns {
					stats, ok := hm.Cell(row.HTF, row.PDArray, ltf)
					if !ok || stats.Trades == 0 {
						cells = append(cells, "-")
						continue
					}
					cells = append(cells, fmt.Sprintf("%d @ %s", stats.Trades, output.FormatPercent(stats.WinRate)))
				}
				table.AddRow(cells...)
			}

			output.Println()
			output.Bold("  Timeframe Alignment")
			output.Println()
			table.Render()
			output.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Filter by symbol")

	return cmd
}

type heatmapCellJSON struct {
	HTF     string              `json:"htf"`
	PDArray string              `json:"pd_array"`
	LTF     string              `json:"ltf"`
	Stats   breakdown.BaseStats `json:"stats"`
}

func heatmapJSON(hm *breakdown.Heatmap) []heatmapCellJSON {
	var out []heatmapCellJSON
	for _, row := range hm.Rows {
		for _, ltf := range hm.Columns {
			if stats, ok := hm.Cell(row.HTF, row.PDArray, ltf); ok {
				out = append(out, heatmapCellJSON{
					HTF:     row.HTF,
					PDArray: row.PDArray,
					LTF:     ltf,
					Stats:   stats,
				})
			}
		}
	}
	return out
}
