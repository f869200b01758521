package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultURL is the public course page monitored by default.
	DefaultURL = "https://www.freizeitbad-molzberg.com/anfangerkurs"

	// The page host serves a reduced page to unknown agents, so present a
	// regular browser user agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	timeout = 30 * time.Second

	// maxBodySize caps how much of the page is read. The course page is a few
	// hundred KB at most; anything larger is not the page we expect.
	maxBodySize = 4 << 20
)

// Fetcher fetches the course page. One blocking GET, no retries; the daily
// schedule is the retry mechanism.
type Fetcher struct {
	client *http.Client
	url    string
}

// New creates a Fetcher for the given page URL. An empty URL means DefaultURL.
func New(url string) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

// URL returns the page URL this fetcher targets.
func (f *Fetcher) URL() string {
	return f.url
}

// FetchPage retrieves the raw HTML of the course page.
func (f *Fetcher) FetchPage(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("reading page body: %w", err)
	}

	return string(body), nil
}

// VisibleText strips markup, scripts, and styles from an HTML document and
// returns its visible text with blank lines collapsed.
func VisibleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style, noscript, iframe").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n"), nil
}
