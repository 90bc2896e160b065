// Package transport performs single HTTP exchanges and reports their
// readiness transitions.
//
// A Transport runs exactly one exchange: it opens the request, sends it,
// and notifies the caller's listener as the exchange moves through the
// readiness states, ending with a Done notification that carries the
// result. Transports come from a Factory so callers can substitute their
// own implementation; New returns the net/http backed default.
package transport
