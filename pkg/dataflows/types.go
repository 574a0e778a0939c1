package dataflows

import (
	"github.com/shopspring/decimal"

	"github.com/vbmelo/dossiergo/config"
)

// Config is an alias for the main application config
type Config = config.Config

// NewsItem is one entry of a news feed, in feed order. Published keeps the
// feed-provided date string untouched.
type NewsItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
}

// Quote is the latest traded price for a symbol. The zero value is the
// "no data" sentinel, not an error.
type Quote struct {
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Symbol   string          `json:"symbol"`
}

// IsZero reports whether the quote is the no-data sentinel.
func (q Quote) IsZero() bool {
	return q.Symbol == "" && q.Currency == "" && q.Price.IsZero()
}
