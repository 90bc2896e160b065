package transport

import (
	"io"
	"net/http"
)

// Request describes one exchange.
type Request struct {
	Method        string
	URL           string
	Header        http.Header
	Body          io.Reader
	ContentLength int64

	// WithCredentials routes the exchange through the factory's
	// cookie-keeping client, so cookies set by earlier credentialed
	// exchanges are sent again.
	WithCredentials bool

	// Progress, when set, observes upload progress as cumulative
	// (sent, total) byte counts. Total is ContentLength.
	Progress func(sent, total int64)
}

// Result is the terminal outcome of an exchange. Status is 0 when the
// exchange failed before an HTTP status was available; Err then carries
// the cause.
type Result struct {
	Status int
	Body   string
	Err    error
}

// Notify observes readiness transitions. result is non-nil only at Done.
type Notify func(state State, result *Result)

// Transport performs a single exchange, reporting each readiness
// transition through notify. Exactly one Done notification is delivered,
// always last.
type Transport interface {
	Do(req *Request, notify Notify)
}

// Factory hands out the transport for one dispatch.
type Factory func() Transport
