package ajax

import (
	"strings"

	"github.com/ajaxkit/ajaxkit/packages/form"
)

const (
	// DefaultMethod is used when Config.Method is empty.
	DefaultMethod = "GET"

	// DefaultContentType is the documented default for Config.ContentType.
	DefaultContentType = "application/json; charset=utf-8"
)

// Config describes one request. The zero value is inert: dispatching a
// config without a URL does nothing. Dispatch never mutates a Config.
type Config struct {
	// Method is the HTTP method, DefaultMethod when empty.
	Method string

	// URL is the request target. Calls without a URL are dropped.
	URL string

	// Payload is the request body or, for GET requests, the query string
	// to append to the URL. See the form package for the payload kinds.
	Payload form.Payload

	// ContentType defaults to DefaultContentType. It is kept for callers
	// that inspect their own configs but is not written to the wire:
	// encoded bodies carry the multipart boundary content type and GET
	// requests carry no body.
	ContentType string

	// WithCredentials routes the request through the transport's
	// cookie-keeping client.
	WithCredentials bool

	// OnBefore runs synchronously before the transport is opened.
	OnBefore func()

	// OnProgress receives the upload progress as a truncated percentage.
	// It may fire many times or, for small bodies, just once.
	OnProgress func(percent int)

	// OnSuccess receives the raw response body of a status 200 response.
	// Decoding is the caller's business.
	OnSuccess func(body string)

	// OnError receives the raw response body of any non-200 outcome,
	// including network failures, which surface as status 0 with an
	// empty body.
	OnError func(body string)

	// OnAfter runs once the exchange is done, after OnSuccess or OnError.
	OnAfter func()
}

// appendQuery joins a pre-encoded query string onto url, picking the
// separator by whether url already carries one.
func appendQuery(url, query string) string {
	if strings.Contains(url, "?") {
		return url + "&" + query
	}
	return url + "?" + query
}
