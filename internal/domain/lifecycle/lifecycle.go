// Package lifecycle holds process lifecycle constants shared by the
// delivery and infrastructure layers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop operations.
const DefaultTimeout = 10 * time.Second
