package strategy

import "errors"

// ErrNoWorkers indicates that a split was requested for zero or fewer workers.
var ErrNoWorkers = errors.New("no workers available for split")
