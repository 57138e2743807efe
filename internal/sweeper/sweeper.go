package sweeper

import (
	"context"
)

// Sweeper is a background repair loop run next to the API or as its own process
type Sweeper interface {
	// Start blocks until ctx is cancelled or Stop is called
	Start(ctx context.Context) error
	// Stop ends the loop and waits for the current pass, bounded by ctx
	Stop(ctx context.Context) error
	// Name identifies the sweeper in logs
	Name() string
}
