// Package delivery holds the transports that expose the dashboard API.
package delivery

import "context"

// Delivery is a transport started by the application once all dependencies are built.
type Delivery interface {
	Serve(ctx context.Context) error
}
