package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "wolf-journal/internal/errors"
	"wolf-journal/internal/models"
)

// SQLiteStore implements TradeStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based trade store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Trade records captured by the journal
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		direction TEXT NOT NULL,
		entry_price REAL NOT NULL,
		exit_price REAL,
		stop_loss REAL NOT NULL,
		take_profit REAL,
		lot_size REAL NOT NULL,
		pnl REAL,
		outcome TEXT NOT NULL DEFAULT 'PENDING',
		entry_date TEXT NOT NULL,
		entry_time TEXT,
		exit_date TEXT,
		exit_time TEXT,
		htf TEXT,
		ltf TEXT,
		pd_array TEXT,
		session TEXT,
		tags TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_trades_entry ON trades(entry_date, entry_time);
	CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);
	CREATE INDEX IF NOT EXISTS idx_trades_session ON trades(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveTrade inserts or replaces a trade record. Tags are normalized to
// their canonical combo label before they hit the database.
func (s *SQLiteStore) SaveTrade(ctx context.Context, trade *models.TradeRecord) error {
	var pnl sql.NullFloat64
	if trade.PnL != nil {
		pnl = sql.NullFloat64{Float64: *trade.PnL, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO trades (
			id, symbol, direction, entry_price, exit_price, stop_loss,
			take_profit, lot_size, pnl, outcome, entry_date, entry_time,
			exit_date, exit_time, htf, ltf, pd_array, session, tags
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trade.ID, trade.Symbol, string(trade.Direction), trade.EntryPrice,
		trade.ExitPrice, trade.StopLoss, trade.TakeProfit, trade.LotSize,
		pnl, string(trade.Outcome), trade.EntryDate, trade.EntryTime,
		trade.ExitDate, trade.ExitTime, trade.HTF, trade.LTF,
		trade.PDArray, trade.Session, models.TagComboLabel(trade.Tags),
	)
	if err != nil {
		return fmt.Errorf("saving trade %s: %w", trade.ID, err)
	}
	return nil
}

// GetTrades returns trades matching the filter in entry-date order.
func (s *SQLiteStore) GetTrades(ctx context.Context, filter TradeFilter) ([]models.TradeRecord, error) {
	query := `
		SELECT id, symbol, direction, entry_price, exit_price, stop_loss,
		       take_profit, lot_size, pnl, outcome, entry_date, entry_time,
		       exit_date, exit_time, htf, ltf, pd_array, session, tags
		FROM trades`

	var conditions []string
	var args []interface{}

	if filter.Symbol != "" {
		conditions = append(conditions, "symbol = ?")
		args = append(args, filter.Symbol)
	}
	if filter.Session != "" {
		conditions = append(conditions, "session = ?")
		args = append(args, filter.Session)
	}
	if filter.HTF != "" {
		conditions = append(conditions, "htf = ?")
		args = append(args, filter.HTF)
	}
	if filter.PDArray != "" {
		conditions = append(conditions, "pd_array = ?")
		args = append(args, filter.PDArray)
	}
	if filter.Outcome != "" {
		conditions = append(conditions, "outcome = ?")
		args = append(args, string(filter.Outcome))
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, "entry_date >= ?")
		args = append(args, filter.From.Format(models.DateLayout))
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, "entry_date <= ?")
		args = append(args, filter.To.Format(models.DateLayout))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY entry_date ASC, entry_time ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying trades: %w", err)
	}
	defer rows.Close()

	var trades []models.TradeRecord
	for rows.Next() {
		var t models.TradeRecord
		var direction, outcome string
		var pnl sql.NullFloat64
		var exitPrice, takeProfit sql.NullFloat64
		var entryTime, exitDate, exitTime, htf, ltf, pdArray, session, tags sql.NullString

		err := rows.Scan(
			&t.ID, &t.Symbol, &direction, &t.EntryPrice, &exitPrice,
			&t.StopLoss, &takeProfit, &t.LotSize, &pnl, &outcome,
			&t.EntryDate, &entryTime, &exitDate, &exitTime,
			&htf, &ltf, &pdArray, &session, &tags,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning trade: %w", err)
		}

		t.Direction = models.Direction(direction)
		t.Outcome = models.Outcome(outcome)
		if pnl.Valid {
			v := pnl.Float64
			t.PnL = &v
		}
		t.ExitPrice = exitPrice.Float64
		t.TakeProfit = takeProfit.Float64
		t.EntryTime = entryTime.String
		t.ExitDate = exitDate.String
		t.ExitTime = exitTime.String
		t.HTF = htf.String
		t.LTF = ltf.String
		t.PDArray = pdArray.String
		t.Session = session.String
		t.Tags = tags.String

		trades = append(trades, t)
	}

	return trades, rows.Err()
}

// DeleteTrade removes a trade record by ID.
func (s *SQLiteStore) DeleteTrade(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM trades WHERE id = ?", id)
	if err != nil {
		return apperrors.NewStoreError("delete", id, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperrors.NewStoreError("delete", id, apperrors.ErrTradeNotFound)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
