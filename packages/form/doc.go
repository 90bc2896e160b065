// Package form models the payload kinds a request can carry.
//
// Three kinds implement Payload:
//   - Query: a pre-encoded query string, consumed by GET requests
//   - Values: an ordered sequence of name/value fields
//   - Data: a multipart/form-data container, optionally holding file parts
package form
