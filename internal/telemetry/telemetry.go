package telemetry

import (
	"fmt"
)

// API is where the scraper and pipeline send problems and counts, so tests
// can assert on them through TestAPI while the CLI logs them with SlogAPI.
type API interface {
	// ReportBroken reports a failure that stops the run, ex. the first
	// search page not loading.
	//
	// `id` names the failing component and the operation in it, lowercase,
	// underscores inside a component name, a dash before the operation:
	// `swiftype_scraper: client.fetch-all`. Details go in params.
	ReportBroken(id string, params ...any)

	// ReportWarning reports a failure the run recovers from, ex. a later
	// page being skipped. `id` follows the ReportBroken rules.
	ReportWarning(id string, params ...any)

	// ReportDebug is only visible with --verbose.
	ReportDebug(msg string, params ...any)

	// ReportCount records a count observed at the end of an operation, ex.
	// the number of consultants fetched.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with the name of the component reporting it.
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) scope(id string) string {
	return fmt.Sprintf("%s: %s", s.namespace, id)
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.scope(id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.scope(id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.scope(msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.scope(id), count)
}
