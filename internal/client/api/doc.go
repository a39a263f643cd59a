// Package api is the transport layer of the VoidVault client: a thin typed
// wrapper around the backend's REST surface. Every call goes through one
// pipeline that attaches auth and CSRF headers, bounds the request with a
// fixed timeout, and normalizes error shapes, so the rest of the client
// never touches net/http directly.
package api
