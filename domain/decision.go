package domain

import "time"

type DecisionAction string

const (
	DecisionActionApproved   DecisionAction = "APPROVED"
	DecisionActionRejected   DecisionAction = "REJECTED"
	DecisionActionOverridden DecisionAction = "OVERRIDDEN"
	DecisionActionRevised    DecisionAction = "REVISED"
	DecisionActionCancelled  DecisionAction = "CANCELLED"
)

// Decision is one immutable entry of the backend decision log
type Decision struct {
	ID                        string         `json:"id"`
	Action                    DecisionAction `json:"action"`
	DecisionMakerName         string         `json:"decision_maker_name"`
	HierarchyLevel            *int           `json:"hierarchy_level,omitempty"`
	ActingAsSubstituteForName string         `json:"acting_as_substitute_for_name,omitempty"`
	Reason                    string         `json:"reason,omitempty"`
	IsOverride                bool           `json:"is_override"`
	OverriddenDecisionID      *string        `json:"overridden_decision_id,omitempty"`
	DecisionDate              time.Time      `json:"decision_date"`
	IsImmutable               bool           `json:"is_immutable"`
}

type HistoryKey struct {
	ContentType string `json:"content_type" mapstructure:"content_type" validate:"required,oneof=leaverequest overtimerequest mealrequest cardlessentryrequest"`
	ObjectID    string `json:"object_id" mapstructure:"object_id" validate:"required"`
}

// TimelineEntry is a decision as displayed; Supersedes points at the entry an override replaced
type TimelineEntry struct {
	Decision
	Supersedes *Decision `json:"supersedes,omitempty"`
}

type Timeline struct {
	Key     HistoryKey       `json:"key"`
	Entries []*TimelineEntry `json:"entries"`
	Error   string           `json:"error,omitempty"`
}
