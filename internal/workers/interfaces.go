// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's goroutines and returns immediately. The worker
// stops once ctx is canceled; Wait blocks until it has.
type Worker interface {
	Run(ctx context.Context)
	Wait()
}
