package swiftype

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"consultant-gaps/internal/consultant"
	"consultant-gaps/internal/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

const (
	report_client_fetch_page = "client.fetch-page"
	report_client_fetch_all  = "client.fetch-all"
	report_client_records    = "client.records"
)

var tracer = otel.Tracer("scrapers/swiftype")
var meter = otel.Meter("scrapers/swiftype")
var pagesCounter, _ = meter.Int64Counter("swiftype.pages")
var recordsCounter, _ = meter.Int64Counter("swiftype.records")

type Options struct {
	Endpoint      string
	EngineKey     string
	PerPage       int
	DocumentType  string
	TypeFilter    []string
	SortField     string
	SortDirection string
	UserAgent     string
	// PageDelay is how long to wait after a request completes before the
	// next page is requested.
	PageDelay time.Duration
	// FailureBackoff is how long to wait after a page fails before moving on.
	FailureBackoff time.Duration
	// Timeout applies to each request, 0 disables it.
	Timeout time.Duration
	// PageRetries is how many more times a failed page (other than the first)
	// is requested before its records are given up on.
	PageRetries int
}

func DefaultOptions() Options {
	return Options{
		Endpoint:       "https://search-api.swiftype.com/api/v1/public/engines/search.json",
		EngineKey:      "sR_cCweEaptts3ExMPzv",
		PerPage:        100,
		DocumentType:   "page",
		TypeFilter:     []string{"Consultant"},
		SortField:      "availabilityRank",
		SortDirection:  "asc",
		UserAgent:      "Mozilla/5.0 (compatible; research-scraper/1.0)",
		PageDelay:      400 * time.Millisecond,
		FailureBackoff: 2 * time.Second,
		Timeout:        30 * time.Second,
	}
}

type Client struct {
	http *resty.Client
	opts Options
	tel  telemetry.API
}

// NewClient creates a client for the search endpoint. `output` can be nil,
// if it is set every request/response pair is dumped to it.
func NewClient(opts Options, tel telemetry.API, output telemetry.MessageOutput) *Client {
	tel = telemetry.NewScopedAPI("swiftype_scraper", tel)

	httpClient := resty.New()
	httpClient.SetTimeout(opts.Timeout)
	httpClient.SetHeader("user-agent", opts.UserAgent)
	httpClient.SetHeader("content-type", "application/json")

	telemetry.InstrumentResty(httpClient, "scrapers/swiftype/http", tel, output)

	return &Client{
		http: httpClient,
		opts: opts,
		tel:  tel,
	}
}

// FetchPage requests a single page of results, it does not wait PageDelay.
func (c *Client) FetchPage(ctx context.Context, page int) (Page, error) {
	ctx, span := tracer.Start(ctx, "FetchPage")
	defer span.End()
	span.SetAttributes(attribute.Int("page", page))

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(c.newSearchRequest(page)).
		Post(c.opts.Endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return Page{}, err
	}
	if !res.IsSuccess() {
		err = fmt.Errorf("unexpected status %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return Page{}, err
	}

	out, err := decodePage(res.Body(), c.opts.DocumentType)
	if err != nil {
		err = fmt.Errorf("decode page %d: %w", page, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return Page{}, err
	}
	return out, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// fetchWithRetries returns ok=false when every attempt failed, the page
// is then skipped by the caller. Only context cancellation is returned as
// an error. Every attempt is preceded by PageDelay, counted from the end of
// the previous request.
func (c *Client) fetchWithRetries(ctx context.Context, page int) (Page, bool, error) {
	for attempt := 0; attempt <= c.opts.PageRetries; attempt++ {
		err := sleep(ctx, c.opts.PageDelay)
		if err != nil {
			return Page{}, false, err
		}

		result, err := c.FetchPage(ctx, page)
		if err == nil {
			pagesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "ok")))
			return result, true, nil
		}
		if ctx.Err() != nil {
			return Page{}, false, ctx.Err()
		}

		pagesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "failed")))
		c.tel.ReportWarning(report_client_fetch_page, fmt.Errorf("page %d (attempt %d): %w", page, attempt+1, err))

		err = sleep(ctx, c.opts.FailureBackoff)
		if err != nil {
			return Page{}, false, err
		}
	}
	return Page{}, false, nil
}

// FetchAll walks every page of results one at a time. The first page is
// required since it carries the page count, a failure there is returned.
// Later pages that fail are reported and skipped, their records are lost.
func (c *Client) FetchAll(ctx context.Context) ([]consultant.Record, error) {
	ctx, span := tracer.Start(ctx, "FetchAll")
	defer span.End()

	first, err := c.FetchPage(ctx, 1)
	if err != nil {
		c.tel.ReportBroken(report_client_fetch_all, err)
		span.SetStatus(codes.Error, "first page failed")
		return nil, fmt.Errorf("fetch first page: %w", err)
	}
	pagesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "ok")))

	numPages := first.Info.NumPages
	slog.InfoContext(
		ctx, "determined result size",
		"total", first.Info.TotalResultCount,
		"pages", numPages,
		"per_page", c.opts.PerPage,
	)

	records := first.Records
	slog.InfoContext(ctx, "fetched page", "page", 1, "records", len(first.Records))

	failed := 0
	for page := 2; page <= numPages; page++ {
		result, ok, err := c.fetchWithRetries(ctx, page)
		if err != nil {
			return records, err
		}
		if !ok {
			failed++
			continue
		}
		records = append(records, result.Records...)
		slog.InfoContext(
			ctx, "fetched page",
			"page", page,
			"pages", numPages,
			"records", len(result.Records),
			"collected", len(records),
		)
	}

	if failed > 0 {
		slog.WarnContext(ctx, "some pages were skipped", "failed_pages", failed)
	}
	span.SetAttributes(
		attribute.Int("pages", numPages),
		attribute.Int("failed_pages", failed),
		attribute.Int("records", len(records)),
	)
	recordsCounter.Add(ctx, int64(len(records)))
	c.tel.ReportCount(report_client_records, int64(len(records)))

	return records, nil
}
