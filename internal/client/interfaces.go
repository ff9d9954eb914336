// SPDX-License-Identifier: Apache-2.0

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until the requested
	// work is done or the context is cancelled.
	Run(ctx context.Context, symbols []string) error
}
