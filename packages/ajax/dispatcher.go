package ajax

import (
	"net/http"
	"time"

	"github.com/ajaxkit/ajaxkit/packages/form"
	"github.com/ajaxkit/ajaxkit/packages/transport"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Dispatcher issues requests and routes transport outcomes into each
// config's callbacks.
type Dispatcher struct {
	factory transport.Factory
	logger  zerolog.Logger
}

// Option is a functional option for configuring a Dispatcher.
type Option func(*Dispatcher)

// WithFactory sets the transport factory used for each dispatch.
func WithFactory(f transport.Factory) Option {
	return func(d *Dispatcher) {
		d.factory = f
	}
}

// WithLogger sets the logger for dispatch lifecycle events. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// New creates a Dispatcher. Without options it dispatches through the
// net/http transport and logs nothing.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.factory == nil {
		d.factory = transport.New()
	}

	return d
}

// Default is the dispatcher behind the package-level Call.
var Default = New()

// Call dispatches cfg through Default.
func Call(cfg Config) {
	Default.Call(cfg)
}

// Call issues the request described by cfg and returns without waiting
// for it. All outcomes surface through the config's callbacks; a config
// without a URL is dropped without invoking any of them.
func (d *Dispatcher) Call(cfg Config) {
	if cfg.URL == "" {
		d.logger.Debug().Msg("dropping call without url")
		return
	}

	method := cfg.Method
	if method == "" {
		method = DefaultMethod
	}

	logger := d.logger.With().
		Str("request_id", uuid.NewString()).
		Str("method", method).
		Str("url", cfg.URL).
		Logger()

	req := &transport.Request{
		Method:          method,
		URL:             cfg.URL,
		Header:          make(http.Header),
		WithCredentials: cfg.WithCredentials,
	}

	if method == http.MethodGet {
		switch p := cfg.Payload.(type) {
		case nil:
		case form.Query:
			if p != "" {
				req.URL = appendQuery(cfg.URL, string(p))
			}
		default:
			logger.Debug().Msg("dropping non-query payload on GET request")
		}
	}

	if cfg.OnBefore != nil {
		cfg.OnBefore()
	}

	start := time.Now()

	if method != http.MethodGet {
		var data *form.Data
		switch p := cfg.Payload.(type) {
		case nil:
		case form.Query:
			logger.Debug().Msg("dropping query payload on non-GET request")
		case form.Values:
			data = p.Data()
		case *form.Data:
			data = p
		}

		if data != nil {
			body, contentType, err := data.Encode()
			if err != nil {
				logger.Warn().Err(err).Msg("payload encoding failed")
				go d.finish(cfg, &transport.Result{Err: err}, logger, start)
				return
			}
			req.Body = body
			req.ContentLength = int64(body.Len())
			req.Header.Set("Content-Type", contentType)
		}
	}

	if cfg.OnProgress != nil {
		req.Progress = func(sent, total int64) {
			if total <= 0 {
				return
			}
			cfg.OnProgress(int(sent * 100 / total))
		}
	}

	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	t := d.factory()
	logger.Debug().Msg("dispatching request")

	go func() {
		t.Do(req, func(state transport.State, result *transport.Result) {
			if state != transport.Done {
				logger.Trace().Stringer("state", state).Msg("readiness changed")
				return
			}
			if result == nil {
				result = &transport.Result{}
			}
			d.finish(cfg, result, logger, start)
		})
	}()
}

// finish routes the terminal result into the config's callbacks. Status
// 200 is the only success: everything else, network failures included,
// goes to OnError.
func (d *Dispatcher) finish(cfg Config, result *transport.Result, logger zerolog.Logger, start time.Time) {
	logger.Debug().
		Int("status", result.Status).
		Dur("duration", time.Since(start)).
		Err(result.Err).
		Msg("request finished")

	if result.Status == http.StatusOK {
		if cfg.OnSuccess != nil {
			cfg.OnSuccess(result.Body)
		}
	} else if cfg.OnError != nil {
		cfg.OnError(result.Body)
	}

	if cfg.OnAfter != nil {
		cfg.OnAfter()
	}
}
