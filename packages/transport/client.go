package transport

import (
	"io"
	"net/http"
	"net/http/cookiejar"
)

type client struct {
	base   *http.Client
	jarred *http.Client
}

// Option is a functional option for configuring the default transport.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.base = hc
	}
}

// New returns a Factory producing net/http backed transports. All
// transports from one factory share a cookie jar, so credentialed
// exchanges keep their cookies across calls. The transports carry no
// other state between exchanges.
func New(opts ...Option) Factory {
	c := &client{}

	for _, opt := range opts {
		opt(c)
	}

	if c.base == nil {
		c.base = &http.Client{}
	}

	// Credentialed exchanges go through a jar-backed copy of the base
	// client. A jar supplied by the caller wins.
	c.jarred = c.base
	if c.base.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err == nil {
			jarred := *c.base
			jarred.Jar = jar
			c.jarred = &jarred
		}
	}

	return func() Transport { return c }
}

func (c *client) Do(req *Request, notify Notify) {
	var body io.Reader = req.Body
	if req.Body != nil && req.Progress != nil {
		body = &progressReader{reader: req.Body, total: req.ContentLength, report: req.Progress}
	}

	httpReq, err := http.NewRequest(req.Method, req.URL, body)
	if err != nil {
		notify(Done, &Result{Err: err})
		return
	}

	if req.Header != nil {
		httpReq.Header = req.Header.Clone()
	}
	if req.ContentLength > 0 {
		httpReq.ContentLength = req.ContentLength
	}

	notify(Opened, nil)

	hc := c.base
	if req.WithCredentials {
		hc = c.jarred
	}

	resp, err := hc.Do(httpReq)
	if err != nil {
		notify(Done, &Result{Err: err})
		return
	}
	defer resp.Body.Close()

	notify(HeadersReceived, nil)
	notify(Loading, nil)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		notify(Done, &Result{Err: err})
		return
	}

	notify(Done, &Result{Status: resp.StatusCode, Body: string(respBody)})
}
