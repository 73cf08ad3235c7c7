package domain

import "fmt"

var (
	statusTransitions = map[RequestStatus]map[ActionType]RequestStatus{
		RequestStatusPending: {
			ActionApprove: RequestStatusApproved,
			ActionReject:  RequestStatusRejected,
		},
		RequestStatusRejected: {
			ActionApprove: RequestStatusApproved,
		},
		RequestStatusApproved: {
			ActionCancel: RequestStatusCancelled,
		},
	}

	overridableStatuses = map[RequestStatus]bool{
		RequestStatusApproved: true,
		RequestStatusRejected: true,
	}

	overrideOutcomes = map[ActionType]RequestStatus{
		ActionApprove: RequestStatusApproved,
		ActionReject:  RequestStatusRejected,
	}

	actionDecisions = map[ActionType]DecisionAction{
		ActionApprove:  DecisionActionApproved,
		ActionReject:   DecisionActionRejected,
		ActionOverride: DecisionActionOverridden,
		ActionCancel:   DecisionActionCancelled,
	}

	unsupportedActions = map[RequestType]map[ActionType]bool{
		RequestTypeOvertime:      {ActionCancel: true},
		RequestTypeMeal:          {ActionOverride: true, ActionCancel: true},
		RequestTypeCardlessEntry: {ActionCancel: true},
	}
)

// SupportsAction reports whether the backend exposes the action for the request type.
// Override exists for leave, overtime and cardless entry; manager-cancel for leave only.
func SupportsAction(t RequestType, a ActionType) bool {
	if !t.IsValid() {
		return false
	}
	return !unsupportedActions[t][a]
}

type TransitionInput struct {
	Type           RequestType
	Status         RequestStatus
	Action         ActionType
	OverrideAction ActionType
	CanOverride    bool
	Locked         bool
}

type Transition struct {
	From     RequestStatus  `json:"from"`
	To       RequestStatus  `json:"to"`
	Decision DecisionAction `json:"decision"`
}

// NextStatus checks the action against the decision state machine and returns the resulting transition.
// ORDERED is handled as APPROVED. CANCELLED, POTENTIAL and unknown statuses accept no action.
func NextStatus(in TransitionInput) (*Transition, error) {
	from := in.Status
	if from == RequestStatusOrdered {
		from = RequestStatusApproved
	}

	if !SupportsAction(in.Type, in.Action) {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedAction, in.Action, in.Type)
	}

	if in.Action == ActionOverride {
		if !overridableStatuses[from] {
			return nil, fmt.Errorf("%w: cannot override a %q request", ErrInvalidTransition, in.Status)
		}
		if !in.CanOverride {
			return nil, ErrOverrideUnauthorized
		}
		if in.Locked {
			return nil, ErrRecordLocked
		}
		to, ok := overrideOutcomes[in.OverrideAction]
		if !ok {
			return nil, fmt.Errorf("%w: invalid override outcome %q", ErrInvalidTransition, in.OverrideAction)
		}
		return &Transition{From: in.Status, To: to, Decision: DecisionActionOverridden}, nil
	}

	to, ok := statusTransitions[from][in.Action]
	if !ok {
		return nil, fmt.Errorf("%w: cannot %s a %q request", ErrInvalidTransition, in.Action, in.Status)
	}
	if in.Locked && from != RequestStatusPending {
		return nil, ErrRecordLocked
	}

	return &Transition{From: in.Status, To: to, Decision: actionDecisions[in.Action]}, nil
}

// AllowedActions lists the actions NextStatus would accept for the given state
func AllowedActions(in TransitionInput) []ActionType {
	allowed := []ActionType{}
	for _, a := range ActionTypes {
		candidate := in
		candidate.Action = a
		candidate.OverrideAction = ActionApprove
		if _, err := NextStatus(candidate); err == nil {
			allowed = append(allowed, a)
		}
	}
	return allowed
}
