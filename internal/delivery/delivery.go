// Package delivery defines the contract every transport implementation
// (HTTP today, possibly gRPC later) must satisfy.
package delivery

import "context"

// Delivery serves the application over some transport until the context is
// cancelled or the listener fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
