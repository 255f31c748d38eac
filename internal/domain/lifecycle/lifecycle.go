// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds start and shutdown hooks such as DB pings and
// graceful HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
