// Package delivery defines the entry points that expose use cases to the outside world.
package delivery

import "context"

// Delivery is a server that runs until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
