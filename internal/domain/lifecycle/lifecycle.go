// Package lifecycle defines timing values used by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each fx start/stop hook.
const DefaultTimeout = 10 * time.Second
