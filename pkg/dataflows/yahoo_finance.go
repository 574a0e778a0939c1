package dataflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// QuoteClient fetches the latest market quote from Yahoo Finance.
type QuoteClient struct{}

func NewQuoteClient() *QuoteClient {
	return &QuoteClient{}
}

// Quote looks up the current price for a ticker symbol. The symbol must be
// non-empty; the caller gates on unresolved tickers before calling.
func (qc *QuoteClient) Quote(ctx context.Context, symbol string) (Quote, error) {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))
	if symbol == "" {
		return Quote{}, fmt.Errorf("symbol cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return Quote{}, err
	}

	q, err := quote.Get(symbol)
	if err != nil {
		return Quote{}, fmt.Errorf("get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return Quote{}, fmt.Errorf("no quote data for %s", symbol)
	}

	currency := q.CurrencyID
	if currency == "" {
		currency = "USD"
	}

	echoed := q.Symbol
	if echoed == "" {
		echoed = symbol
	}

	return Quote{
		Price:    decimal.NewFromFloat(q.RegularMarketPrice),
		Currency: currency,
		Symbol:   echoed,
	}, nil
}
