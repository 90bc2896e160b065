// Package ajax dispatches fire-and-forget HTTP requests driven by
// per-request callbacks.
//
// It wraps the transport package with the request lifecycle:
//   - Config normalization (method defaulting, GET query-string append)
//   - Payload encoding to multipart/form-data via the form package
//   - Upload progress reporting as integer percentages
//   - Terminal routing: status 200 to OnSuccess, everything else to OnError
package ajax
