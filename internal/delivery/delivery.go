// Package delivery defines the contract shared by all inbound transports.
package delivery

import "context"

// Delivery is implemented by every server the application can expose
// (HTTP today; workers or gRPC would plug in the same way).
type Delivery interface {
	// Serve starts the delivery and blocks until it stops or fails.
	Serve(ctx context.Context) error
}
