// Package delivery defines the transport-agnostic entry point every serving
// surface implements.
package delivery

import "context"

// Delivery is a long-running serving surface (HTTP, worker, ...).
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
