package decision

import "errors"

var (
	ErrInvalidActionParameter = errors.New("invalid action parameter")
	ErrReasonRequired         = errors.New("reason is required for this action")
	ErrActionForbidden        = errors.New("viewer is not allowed to perform this action")
	ErrDecisionConflict       = errors.New("request was changed by someone else")
)
