// Package store provides persistence for journal trade records. The
// analytics engine itself never touches storage; it consumes the ordered
// trade lists this package supplies.
package store

import (
	"context"
	"time"

	"wolf-journal/internal/models"
)

// TradeStore is the trade record store the analytics engine reads from.
type TradeStore interface {
	SaveTrade(ctx context.Context, trade *models.TradeRecord) error
	GetTrades(ctx context.Context, filter TradeFilter) ([]models.TradeRecord, error)
	DeleteTrade(ctx context.Context, id string) error
	Close() error
}

// TradeFilter narrows a trade query. Zero values mean "any".
type TradeFilter struct {
	Symbol  string
	Session string
	HTF     string
	PDArray string
	Outcome models.Outcome
	From    time.Time
	To      time.Time
	Limit   int
}
