// Package server runs the draft server's transports.
//
// The HTTP server carries the draft API, the gRPC server the health
// service. Both stop gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
