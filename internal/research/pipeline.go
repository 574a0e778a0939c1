// Package research runs the four-stage company research pipeline and owns
// its result type. Every stage is fault-isolated: a failing dependency
// degrades only its own field of the dossier.
package research

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vbmelo/dossiergo/pkg/dataflows"
)

// Stage identifies one of the four sequential units of work.
type Stage string

const (
	StageSummary Stage = "summary"
	StageNews    Stage = "news"
	StageTicker  Stage = "ticker"
	StageQuote   Stage = "quote"
)

// diagnosticLimit caps how much of an underlying error is carried into the
// dossier.
const diagnosticLimit = 200

// TextGenerator produces text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewsFetcher returns recent headlines for a company name.
type NewsFetcher interface {
	CompanyNews(ctx context.Context, company string) ([]dataflows.NewsItem, error)
}

// QuoteFetcher returns the latest quote for a ticker symbol.
type QuoteFetcher interface {
	Quote(ctx context.Context, symbol string) (dataflows.Quote, error)
}

// StageFailure records why a stage produced a degraded field.
type StageFailure struct {
	Stage  Stage  `json:"stage"`
	Reason string `json:"reason"`
}

// Result is the dossier assembled by one pipeline run. All four data fields
// are always present; a failed stage leaves its zero value behind and adds
// an entry to Failures so the presentation layer can render it accordingly.
type Result struct {
	Query       string               `json:"query"`
	Summary     string               `json:"summary"`
	News        []dataflows.NewsItem `json:"news"`
	Ticker      string               `json:"ticker"`
	Quote       dataflows.Quote      `json:"quote"`
	GeneratedAt time.Time            `json:"generated_at"`
	Failures    []StageFailure       `json:"failures,omitempty"`
}

// Failed reports whether the given stage degraded.
func (r *Result) Failed(stage Stage) bool {
	for _, f := range r.Failures {
		if f.Stage == stage {
			return true
		}
	}
	return false
}

// Pipeline composes the three external capabilities into the fixed
// summary → news → ticker → quote sequence.
type Pipeline struct {
	generator TextGenerator
	news      NewsFetcher
	quotes    QuoteFetcher
}

func NewPipeline(generator TextGenerator, news NewsFetcher, quotes QuoteFetcher) *Pipeline {
	return &Pipeline{
		generator: generator,
		news:      news,
		quotes:    quotes,
	}
}

// Run assembles a dossier for the company. The only error it returns is an
// empty company name; dependency faults never abort the run, they degrade
// the corresponding field.
func (p *Pipeline) Run(ctx context.Context, company string) (*Result, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}

	result := &Result{
		Query:       company,
		GeneratedAt: time.Now(),
	}

	p.runSummary(ctx, result)
	p.runNews(ctx, result)
	p.runTicker(ctx, result)
	p.runQuote(ctx, result)

	return result, nil
}

func (p *Pipeline) runSummary(ctx context.Context, result *Result) {
	text, err := p.generator.Generate(ctx, SummaryPrompt(result.Query))
	if err != nil {
		result.fail(StageSummary, err.Error())
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		result.fail(StageSummary, "provider returned no text")
		return
	}
	result.Summary = text
}

func (p *Pipeline) runNews(ctx context.Context, result *Result) {
	items, err := p.news.CompanyNews(ctx, result.Query)
	if err != nil {
		result.fail(StageNews, err.Error())
		return
	}
	result.News = items
}

func (p *Pipeline) runTicker(ctx context.Context, result *Result) {
	raw, err := p.generator.Generate(ctx, TickerPrompt(result.Query))
	if err != nil {
		result.fail(StageTicker, err.Error())
		return
	}
	ticker := SanitizeTicker(raw)
	if ticker == "" {
		result.fail(StageTicker, fmt.Sprintf("no plausible ticker in %q", firstN(strings.TrimSpace(raw), 40)))
		return
	}
	result.Ticker = ticker
}

// runQuote is gated on the ticker stage: without a resolved symbol there is
// nothing to look up and no request is made.
func (p *Pipeline) runQuote(ctx context.Context, result *Result) {
	if result.Ticker == "" {
		result.fail(StageQuote, "ticker not determined, quote lookup skipped")
		return
	}
	q, err := p.quotes.Quote(ctx, result.Ticker)
	if err != nil {
		result.fail(StageQuote, err.Error())
		result.Quote = dataflows.Quote{}
		return
	}
	result.Quote = q
}

func (r *Result) fail(stage Stage, reason string) {
	r.Failures = append(r.Failures, StageFailure{
		Stage:  stage,
		Reason: firstN(reason, diagnosticLimit),
	})
}

func firstN(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
