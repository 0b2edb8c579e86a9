// Package http implements the HTTP transport of the capture server.
//
// It wires chi routes for capture submission, memo listing, the version
// endpoint and expvar counters. Request tracing, access logging and the
// upload size limit run as middleware before requests reach the service
// layer.
package http
