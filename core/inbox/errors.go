package inbox

import "errors"

var (
	ErrEmptyViewer     = errors.New("viewer id is required")
	ErrRequestNotFound = errors.New("request is not in the viewer's inbox")
	ErrStaleRefresh    = errors.New("refresh superseded by a newer one")
	ErrPollerRunning   = errors.New("poller is already running")
	ErrInvalidFilter   = errors.New("invalid inbox filter")
)
