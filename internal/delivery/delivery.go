// Package delivery defines the entry points that expose the application.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
