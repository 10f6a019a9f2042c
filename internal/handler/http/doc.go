// Package http is the REST transport of the draft server.
//
// Requests pass trace id, access log, gzip, bearer auth and the optional
// body hash check before they reach the draft handlers.
package http
