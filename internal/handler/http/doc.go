// Package http implements the HTTP transport layer of the courses API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as Basic authentication, request tracing,
// access logging, panic recovery and response compression are handled in
// this package before requests are delegated to the service layer. Every
// error a handler returns ends in one place, the terminal error handler,
// which writes the {message, error} envelope.
package http
