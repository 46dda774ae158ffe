// Package delivery defines the contract every transport front-end
// (HTTP today) fulfils so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a serving front-end with a blocking Serve loop.
type Delivery interface {
	Serve(ctx context.Context) error
}
