// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a serving surface (e.g. the HTTP server) started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
