// Package server runs the capture HTTP server together with the background
// workers.
//
// It owns the process lifecycle: workers start before the listener, and on
// SIGTERM, SIGINT or SIGQUIT the HTTP server is drained first and the workers
// are stopped afterwards.
package server
