// Package requestid attaches a correlation id to every HTTP request.
//
// The middleware reuses a client-supplied X-Request-ID when it is made of
// letters, digits, "-" and "_" and is at most 128 bytes long; otherwise a
// UUIDv4 is generated. The id is stored in the request context, echoed in
// the response header and added to log records through LogExtractor.
package requestid
