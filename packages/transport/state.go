package transport

// State is the readiness of one HTTP exchange. States only move forward,
// from Unsent through Done.
type State int

const (
	// Unsent means the exchange has not been opened yet.
	Unsent State = iota
	// Opened means the request has been built and is about to be sent.
	Opened
	// HeadersReceived means the response status and headers have arrived.
	HeadersReceived
	// Loading means the response body is being read.
	Loading
	// Done is terminal: the exchange finished, successfully or not.
	Done
)

func (s State) String() string {
	switch s {
	case Unsent:
		return "unsent"
	case Opened:
		return "opened"
	case HeadersReceived:
		return "headers_received"
	case Loading:
		return "loading"
	case Done:
		return "done"
	}
	return "unknown"
}
