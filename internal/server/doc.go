// Package server runs the HTTP API and the background workers.
//
// It owns process lifecycle: startup, signal handling, and graceful
// shutdown of the listener and every worker.
package server
