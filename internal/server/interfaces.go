package server

// Server defines the lifecycle contract of the API process.
//
// RunServer blocks until a stop signal arrives and everything has shut
// down. Shutdown may be called directly to stop early.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
