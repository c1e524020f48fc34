// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful-shutdown work of a component.
const DefaultTimeout = 30 * time.Second
