package dataflows

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
)

const googleNewsBaseURL = "https://news.google.com/rss"

// NewsClient searches the Google News RSS feed for company headlines.
type NewsClient struct {
	client   *resty.Client
	parser   *gofeed.Parser
	baseURL  string
	language string
	country  string
	limit    int
}

// NewNewsClient creates a news client bound to the configured locale.
func NewNewsClient(cfg *Config) *NewsClient {
	client := resty.New()
	client.SetTimeout(cfg.HTTPTimeout)
	client.SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	return &NewsClient{
		client:   client,
		parser:   gofeed.NewParser(),
		baseURL:  googleNewsBaseURL,
		language: cfg.NewsLanguage,
		country:  cfg.NewsCountry,
		limit:    cfg.NewsLimit,
	}
}

// CompanyNews fetches the feed for a company name and returns at most the
// configured number of entries, in feed order. Entries missing a title or
// link are skipped; they never abort the whole fetch.
func (nc *NewsClient) CompanyNews(ctx context.Context, company string) ([]NewsItem, error) {
	if strings.TrimSpace(company) == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}

	resp, err := nc.client.R().SetContext(ctx).Get(nc.buildSearchURL(company))
	if err != nil {
		return nil, fmt.Errorf("fetch news feed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("HTTP error %d when fetching news feed", resp.StatusCode())
	}

	feed, err := nc.parser.ParseString(resp.String())
	if err != nil {
		return nil, fmt.Errorf("parse news feed: %w", err)
	}

	items := make([]NewsItem, 0, nc.limit)
	for _, entry := range feed.Items {
		if len(items) >= nc.limit {
			break
		}
		title := cleanHTML(entry.Title)
		if title == "" || entry.Link == "" {
			continue
		}
		items = append(items, NewsItem{
			Title:     title,
			Link:      entry.Link,
			Published: strings.TrimSpace(entry.Published),
		})
	}

	return items, nil
}

func (nc *NewsClient) buildSearchURL(query string) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("hl", nc.language)
	v.Set("gl", nc.country)
	v.Set("ceid", fmt.Sprintf("%s:%s", nc.country, strings.Split(nc.language, "-")[0]))
	return nc.baseURL + "/search?" + v.Encode()
}

// cleanHTML strips markup that some feeds embed in entry titles.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
