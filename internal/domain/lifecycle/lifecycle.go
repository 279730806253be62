// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work in fx hooks.
const DefaultTimeout = 10 * time.Second
