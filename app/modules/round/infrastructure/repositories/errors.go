package rounddb

import "errors"

// ErrRoundNotFound is returned when a round lookup matches no row.
var ErrRoundNotFound = errors.New("round not found")
