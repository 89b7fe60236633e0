// Package http implements the HTTP transport of the QR studio server.
//
// It wires the chi router, the request handlers and the middleware chain.
// Tracing, access logging, compression and download token checks happen
// here before requests reach the service layer.
package http
