package swiftype

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"consultant-gaps/internal/consultant"
	"consultant-gaps/internal/telemetry"

	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	t        *testing.T
	pages    [][]map[string]any
	failures map[int]int
	latency  time.Duration

	mutex    sync.Mutex
	requests []searchRequest
	timings  []requestTiming
}

type requestTiming struct {
	page     int
	started  time.Time
	finished time.Time
}

func (f *fakeEngine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	var req searchRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		f.t.Error(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mutex.Lock()
	f.requests = append(f.requests, req)
	remaining := f.failures[req.Page]
	if remaining > 0 {
		f.failures[req.Page] = remaining - 1
	}
	f.mutex.Unlock()

	time.Sleep(f.latency)
	f.mutex.Lock()
	f.timings = append(f.timings, requestTiming{
		page:     req.Page,
		started:  started,
		finished: time.Now(),
	})
	f.mutex.Unlock()

	if remaining > 0 {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	total := 0
	for _, p := range f.pages {
		total += len(p)
	}
	records := []map[string]any{}
	if req.Page >= 1 && req.Page <= len(f.pages) {
		records = f.pages[req.Page-1]
	}

	w.Header().Set("content-type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"info": map[string]any{
			"page": map[string]any{
				"current_page":       req.Page,
				"num_pages":          len(f.pages),
				"per_page":           req.PerPage,
				"total_result_count": total,
			},
		},
		"records": map[string]any{
			"page": records,
		},
	})
}

func (f *fakeEngine) pagesRequested() []int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	out := make([]int, len(f.requests))
	for i, r := range f.requests {
		out[i] = r.Page
	}
	return out
}

// gaps returns, for every request after the first, the time between the
// previous response being ready and the request arriving.
func (f *fakeEngine) gaps() []time.Duration {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	var out []time.Duration
	for i := 1; i < len(f.timings); i++ {
		out = append(out, f.timings[i].started.Sub(f.timings[i-1].finished))
	}
	return out
}

func makePages(sizes ...int) [][]map[string]any {
	var pages [][]map[string]any
	id := 1
	for _, size := range sizes {
		var page []map[string]any
		for i := 0; i < size; i++ {
			page = append(page, map[string]any{
				"id":       fmt.Sprint(id),
				"fullname": fmt.Sprintf("Consultant %d", id),
			})
			id++
		}
		pages = append(pages, page)
	}
	return pages
}

func testOptions(endpoint string) Options {
	opts := DefaultOptions()
	opts.Endpoint = endpoint
	opts.PerPage = 2
	opts.PageDelay = 0
	opts.FailureBackoff = time.Millisecond
	opts.Timeout = 5 * time.Second
	return opts
}

func ids(records []consultant.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Id()
	}
	return out
}

func TestFetchAll(t *testing.T) {
	engine := &fakeEngine{t: t, pages: makePages(2, 2, 1)}
	server := httptest.NewServer(engine)
	defer server.Close()

	tel := telemetry.NewTestAPI()
	client := NewClient(testOptions(server.URL), tel, nil)

	records, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(records))
	require.Equal(t, []int{1, 2, 3}, engine.pagesRequested())
	require.Empty(t, tel.Reports("warning"))

	count, ok := tel.Count("swiftype_scraper: " + report_client_records)
	require.True(t, ok)
	require.Equal(t, int64(5), count)
}

func TestFetchAllSkipsFailedPage(t *testing.T) {
	engine := &fakeEngine{
		t:        t,
		pages:    makePages(2, 2, 2),
		failures: map[int]int{2: 1},
	}
	server := httptest.NewServer(engine)
	defer server.Close()

	tel := telemetry.NewTestAPI()
	client := NewClient(testOptions(server.URL), tel, nil)

	records, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "5", "6"}, ids(records))
	require.Equal(t, []int{1, 2, 3}, engine.pagesRequested())
	require.Len(t, tel.Reports("warning"), 1)
}

func TestFetchAllRetriesWhenConfigured(t *testing.T) {
	engine := &fakeEngine{
		t:        t,
		pages:    makePages(1, 1),
		failures: map[int]int{2: 1},
	}
	server := httptest.NewServer(engine)
	defer server.Close()

	opts := testOptions(server.URL)
	opts.PageRetries = 1
	client := NewClient(opts, telemetry.NewTestAPI(), nil)

	records, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, ids(records))
	require.Equal(t, []int{1, 2, 2}, engine.pagesRequested())
}

func TestFetchAllFirstPageIsFatal(t *testing.T) {
	engine := &fakeEngine{
		t:        t,
		pages:    makePages(1, 1),
		failures: map[int]int{1: 1},
	}
	server := httptest.NewServer(engine)
	defer server.Close()

	tel := telemetry.NewTestAPI()
	client := NewClient(testOptions(server.URL), tel, nil)

	records, err := client.FetchAll(context.Background())
	require.Error(t, err)
	require.Nil(t, records)
	require.Equal(t, []int{1}, engine.pagesRequested())
	require.Len(t, tel.Reports("broken"), 1)
}

func TestSearchRequestShape(t *testing.T) {
	engine := &fakeEngine{t: t, pages: makePages(1)}
	server := httptest.NewServer(engine)
	defer server.Close()

	client := NewClient(testOptions(server.URL), telemetry.NewTestAPI(), nil)
	_, err := client.FetchPage(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, engine.requests, 1)
	req := engine.requests[0]
	require.Equal(t, "sR_cCweEaptts3ExMPzv", req.EngineKey)
	require.Equal(t, 2, req.PerPage)
	require.Equal(t, 1, req.Page)
	require.Equal(t, "", req.Query)
	require.Equal(t, map[string]string{"page": "availabilityRank"}, req.SortField)
	require.Equal(t, map[string]string{"page": "asc"}, req.SortDirection)
	require.Equal(t, filter{Type: "and", Values: []string{"Consultant"}}, req.Filters["page"]["type"])
}

func TestDecodePageKeepsNumbers(t *testing.T) {
	body := []byte(`{
		"info": {"page": {"total_result_count": 1, "num_pages": 1}},
		"records": {"page": [{"id": 12345678901234567890, "popularity": 1.50, "specialties": ["ENT"], "gmcNumber": null}]}
	}`)

	page, err := decodePage(body, "page")
	require.NoError(t, err)
	require.Equal(t, 1, page.Info.NumPages)
	require.Len(t, page.Records, 1)

	rec := page.Records[0]
	require.Equal(t, "12345678901234567890", rec.Id())
	require.Equal(t, "1.50", rec.Get("popularity"))
	require.Equal(t, `["ENT"]`, rec.Get("specialties"))
	require.Equal(t, "", rec.Get("gmcNumber"))
}

func TestFetchAllRespectsCancellation(t *testing.T) {
	engine := &fakeEngine{t: t, pages: makePages(1, 1, 1)}
	server := httptest.NewServer(engine)
	defer server.Close()

	opts := testOptions(server.URL)
	opts.PageDelay = time.Hour
	client := NewClient(opts, telemetry.NewTestAPI(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := client.FetchAll(ctx)
	require.Error(t, err)
	require.Equal(t, []int{1}, engine.pagesRequested())
}

func TestFetchAllWaitsAfterSlowResponses(t *testing.T) {
	engine := &fakeEngine{
		t:       t,
		pages:   makePages(1, 1, 1),
		latency: 250 * time.Millisecond,
	}
	server := httptest.NewServer(engine)
	defer server.Close()

	opts := testOptions(server.URL)
	opts.PageDelay = 200 * time.Millisecond
	client := NewClient(opts, telemetry.NewTestAPI(), nil)

	records, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, ids(records))

	gaps := engine.gaps()
	require.Len(t, gaps, 2)
	for i, gap := range gaps {
		require.GreaterOrEqual(t, gap, opts.PageDelay, "page %d was requested too soon after page %d", i+2, i+1)
	}
}

func TestFetchAllBacksOffAfterFailure(t *testing.T) {
	engine := &fakeEngine{
		t:        t,
		pages:    makePages(1, 1, 1),
		failures: map[int]int{2: 1},
	}
	server := httptest.NewServer(engine)
	defer server.Close()

	opts := testOptions(server.URL)
	opts.FailureBackoff = 150 * time.Millisecond
	client := NewClient(opts, telemetry.NewTestAPI(), nil)

	records, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3"}, ids(records))

	gaps := engine.gaps()
	require.Len(t, gaps, 2)
	require.GreaterOrEqual(t, gaps[1], opts.FailureBackoff)
}
