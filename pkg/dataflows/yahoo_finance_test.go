package dataflows

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestQuoteEmptySymbol(t *testing.T) {
	qc := NewQuoteClient()
	if _, err := qc.Quote(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty symbol")
	}
}

func TestQuoteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	qc := NewQuoteClient()
	if _, err := qc.Quote(ctx, "AAPL"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestQuoteIsZero(t *testing.T) {
	if !(Quote{}).IsZero() {
		t.Fatalf("zero value should report IsZero")
	}
	q := Quote{Price: decimal.NewFromFloat(231.4), Currency: "USD", Symbol: "AAPL"}
	if q.IsZero() {
		t.Fatalf("populated quote should not report IsZero")
	}
}
