package letterboxd

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gocolly/colly"
	"golang.org/x/time/rate"
)

const (
	acceptHeader = "application/rss+xml, application/xml, text/xml"

	// LoadErrorMessage is the only failure text shown to visitors.
	LoadErrorMessage = "Failed to load recent movies"
)

// StatusCodeError reports a non-2xx answer from the proxy or feed host.
type StatusCodeError struct {
	Code int
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status %d (%s)", e.Code, http.StatusText(e.Code))
}

type Options struct {
	FeedURL  string
	ProxyURL string // prefix the escaped feed URL is appended to; "" fetches directly
	Timeout  time.Duration
	Limit    int
	Rate     float64
	Burst    int
}

type Client struct {
	requestURL string
	timeout    time.Duration
	limit      int
	limiter    *rate.Limiter
	transport  http.RoundTripper
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Limit <= 0 {
		opts.Limit = 5
	}
	if opts.Rate <= 0 {
		opts.Rate = 1
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	reqURL := opts.FeedURL
	if opts.ProxyURL != "" {
		reqURL = opts.ProxyURL + url.QueryEscape(opts.FeedURL)
	}
	return &Client{
		requestURL: reqURL,
		timeout:    opts.Timeout,
		limit:      opts.Limit,
		limiter:    rate.NewLimiter(rate.Limit(opts.Rate), opts.Burst),
		transport:  http.DefaultTransport,
	}
}

// RequestURL is the URL the client actually GETs.
func (c *Client) RequestURL() string { return c.requestURL }

// Fetch performs one request and returns up to the configured number of
// viewings. Waiting for the limiter is bounded only by ctx, so a burst of
// callers queues instead of failing. The request itself gets its own
// deadline; when it expires the in-flight request is aborted.
func (c *Client) Fetch(ctx context.Context) ([]MovieViewing, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	col := colly.NewCollector(colly.AllowURLRevisit())
	col.ParseHTTPErrorResponse = true
	col.WithTransport(&contextTransport{ctx: ctx, base: c.transport})

	var (
		status int
		body   []byte
	)
	col.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", acceptHeader)
	})
	col.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})

	start := time.Now()
	if err := col.Visit(c.requestURL); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("fetch feed: %w", ctxErr)
		}
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if status < 200 || status > 299 {
		return nil, &StatusCodeError{Code: status}
	}
	log.Printf("Fetched Letterboxd feed: status %d, %d bytes in %s", status, len(body), time.Since(start).Round(time.Millisecond))

	entries, err := Parse(bytes.NewReader(body), c.limit)
	if err != nil {
		return nil, err
	}
	viewings := make([]MovieViewing, 0, len(entries))
	for _, e := range entries {
		viewings = append(viewings, NewViewing(e))
	}
	return viewings, nil
}

// Load runs one fetch and folds the outcome into a widget status. Timeouts,
// transport errors, bad status codes and malformed payloads all surface as the
// same message.
func (c *Client) Load(ctx context.Context) Status {
	viewings, err := c.Fetch(ctx)
	if err != nil {
		log.Printf("Error loading Letterboxd feed: %v", err)
		return StatusError(LoadErrorMessage)
	}
	return StatusReady(viewings)
}

// contextTransport binds every request of a collector to one fetch's context.
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}
