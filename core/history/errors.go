package history

import "errors"

var (
	ErrInvalidHistoryKey = errors.New("invalid decision history key")
	ErrStaleTimeline     = errors.New("timeline key changed while loading")
)
