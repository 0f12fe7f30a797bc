package store

import (
	"os"
	"path/filepath"
	"testing"

	"wolf-journal/internal/models"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, `id,symbol,direction,entry_price,exit_price,stop_loss,take_profit,lot_size,pnl,outcome,entry_date,entry_time,exit_date,exit_time,htf,ltf,pd_array,session,tags
T-1,EURUSD,LONG,1.1000,1.1050,1.0950,1.1100,10000,50,WIN,2024-01-02,09:30,2024-01-02,11:00,H4,M5,Fair Value Gap,London,"sweep, displacement"
T-2,GBPUSD,SHORT,1.2700,1.2750,1.2650,1.2600,5000,-25,,2024-01-03,14:00,2024-01-03,15:00,H1,M15,Order Block,New York,
`)

	trades, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("got %d trades, want 2", len(trades))
	}

	first := trades[0]
	if first.ID != "T-1" || first.Symbol != "EURUSD" || first.Direction != models.DirectionLong {
		t.Errorf("first trade identity wrong: %+v", first)
	}
	if first.PnL == nil || *first.PnL != 50 {
		t.Errorf("first trade pnl = %v, want 50", first.PnL)
	}
	if first.Outcome != models.OutcomeWin {
		t.Errorf("first trade outcome = %s, want WIN", first.Outcome)
	}
	if first.Tags != "displacement, sweep" {
		t.Errorf("tags not normalized at ingestion: %q", first.Tags)
	}

	second := trades[1]
	if second.Direction != models.DirectionShort {
		t.Errorf("second trade direction = %s, want SHORT", second.Direction)
	}
	if second.Outcome != models.OutcomeLoss {
		t.Errorf("outcome not derived from pnl: %s", second.Outcome)
	}
}

func TestLoadCSVDerivedOutcomes(t *testing.T) {
	path := writeCSV(t, `id,symbol,direction,pnl,outcome,entry_date
A,EURUSD,LONG,100,,2024-01-01
B,EURUSD,LONG,-100,,2024-01-02
C,EURUSD,LONG,0,,2024-01-03
D,EURUSD,LONG,,,2024-01-04
`)

	trades, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	want := []models.Outcome{
		models.OutcomeWin,
		models.OutcomeLoss,
		models.OutcomeBreakeven,
		models.OutcomePending,
	}
	for i, outcome := range want {
		if trades[i].Outcome != outcome {
			t.Errorf("trade %d outcome = %s, want %s", i, trades[i].Outcome, outcome)
		}
	}
	if trades[3].PnL != nil {
		t.Errorf("empty pnl should stay nil, got %v", *trades[3].PnL)
	}
}

func TestLoadCSVGeneratesMissingIDs(t *testing.T) {
	path := writeCSV(t, `id,symbol,direction,pnl,outcome,entry_date
,EURUSD,LONG,100,WIN,2024-01-01
,GBPUSD,SHORT,-50,LOSS,2024-01-02
`)

	trades, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if trades[0].ID != "CSV-0001" || trades[1].ID != "CSV-0002" {
		t.Errorf("generated IDs = %q, %q", trades[0].ID, trades[1].ID)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want models.Direction
	}{
		{"LONG", models.DirectionLong},
		{"short", models.DirectionShort},
		{"SELL", models.DirectionShort},
		{"buy", models.DirectionLong},
		{"", models.DirectionLong},
	}
	for _, tt := range tests {
		if got := parseDirection(tt.in); got != tt.want {
			t.Errorf("parseDirection(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
