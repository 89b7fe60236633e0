// Package workers runs the server's background jobs.
//
// Every job implements Worker. Workers runs them together under one
// errgroup, so the first failing job cancels the rest.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails; a clean shutdown returns nil.
type Worker interface {
	Run(ctx context.Context) error
}
