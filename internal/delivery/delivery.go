// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a serving surface managed by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
