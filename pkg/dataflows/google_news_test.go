package dataflows

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
)

func testNewsClient(baseURL string, limit int) *NewsClient {
	client := resty.New()
	client.SetTimeout(2 * time.Second)
	return &NewsClient{
		client:   client,
		parser:   gofeed.NewParser(),
		baseURL:  baseURL,
		language: "en-US",
		country:  "US",
		limit:    limit,
	}
}

func rssFeed(items string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Search results</title>%s</channel></rss>`, items)
}

func rssItem(title, link string) string {
	return fmt.Sprintf(`<item><title>%s</title><link>%s</link><pubDate>Mon, 02 Jan 2026 10:00:00 GMT</pubDate></item>`, title, link)
}

func TestCompanyNewsBoundedByLimit(t *testing.T) {
	var items strings.Builder
	for i := 0; i < 6; i++ {
		items.WriteString(rssItem(fmt.Sprintf("Headline %d", i), fmt.Sprintf("https://example.com/%d", i)))
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssFeed(items.String()))
	}))
	defer srv.Close()

	got, err := testNewsClient(srv.URL, 3).CompanyNews(context.Background(), "Apple")
	if err != nil {
		t.Fatalf("CompanyNews: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	if got[0].Title != "Headline 0" {
		t.Fatalf("feed order not preserved, first item %q", got[0].Title)
	}
	if got[0].Published == "" {
		t.Fatalf("expected raw publication string to be kept")
	}
}

func TestCompanyNewsSkipsIncompleteEntries(t *testing.T) {
	feed := rssFeed(
		rssItem("", "https://example.com/no-title") +
			`<item><title>No link here</title><pubDate>Mon, 02 Jan 2026 10:00:00 GMT</pubDate></item>` +
			rssItem("Complete entry", "https://example.com/ok"),
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, feed)
	}))
	defer srv.Close()

	got, err := testNewsClient(srv.URL, 3).CompanyNews(context.Background(), "Apple")
	if err != nil {
		t.Fatalf("CompanyNews: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Complete entry" {
		t.Fatalf("expected only the complete entry, got %+v", got)
	}
}

func TestCompanyNewsCleansTitleMarkup(t *testing.T) {
	feed := rssFeed(rssItem("Apple &lt;b&gt;smashes&lt;/b&gt; records", "https://example.com/1"))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, feed)
	}))
	defer srv.Close()

	got, err := testNewsClient(srv.URL, 3).CompanyNews(context.Background(), "Apple")
	if err != nil {
		t.Fatalf("CompanyNews: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Apple smashes records" {
		t.Fatalf("expected markup stripped from title, got %+v", got)
	}
}

func TestCompanyNewsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := testNewsClient(srv.URL, 3).CompanyNews(context.Background(), "Apple"); err == nil {
		t.Fatalf("expected error on HTTP 503")
	}
}

func TestCompanyNewsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	nc := testNewsClient(srv.URL, 3)
	nc.client.SetTimeout(50 * time.Millisecond)

	if _, err := nc.CompanyNews(context.Background(), "Apple"); err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestCompanyNewsEmptyName(t *testing.T) {
	if _, err := testNewsClient("http://127.0.0.1:0", 3).CompanyNews(context.Background(), " "); err == nil {
		t.Fatalf("expected error for empty company name")
	}
}

func TestBuildSearchURL(t *testing.T) {
	nc := testNewsClient("https://news.google.com/rss", 3)
	nc.language = "pt-BR"
	nc.country = "BR"

	u := nc.buildSearchURL("Petrobras S/A")
	for _, want := range []string{"q=Petrobras+S%2FA", "hl=pt-BR", "gl=BR", "ceid=BR%3Apt"} {
		if !strings.Contains(u, want) {
			t.Fatalf("URL missing %q: %s", want, u)
		}
	}
}
