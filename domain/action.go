package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type ActionType string

const (
	ActionApprove  ActionType = "approve"
	ActionReject   ActionType = "reject"
	ActionOverride ActionType = "override"
	ActionCancel   ActionType = "cancel"
)

var ActionTypes = []ActionType{ActionApprove, ActionReject, ActionOverride, ActionCancel}

// RequiresReason reports whether the action must carry a non-empty reason
func (a ActionType) RequiresReason() bool {
	return a == ActionReject || a == ActionOverride || a == ActionCancel
}

type ActionCommand struct {
	Key            RequestKey `json:"key"`
	Action         ActionType `json:"action" validate:"required,oneof=approve reject override cancel"`
	OverrideAction ActionType `json:"override_action,omitempty" validate:"omitempty,oneof=approve reject"`
	Reason         string     `json:"reason,omitempty"`
}

func (c ActionCommand) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if !c.Key.Type.IsValid() {
		return fmt.Errorf("unknown request type %q", c.Key.Type)
	}
	if c.Action == ActionOverride && c.OverrideAction == "" {
		return fmt.Errorf("override_action is required for %q", ActionOverride)
	}
	return nil
}

func (c ActionCommand) HasReason() bool {
	return strings.TrimSpace(c.Reason) != ""
}

// BackendCall is a single mutating call to the backend
type BackendCall struct {
	Method string                 `json:"method"`
	Path   string                 `json:"path"`
	Body   map[string]interface{} `json:"body,omitempty"`
}

type ActionResult struct {
	Key             RequestKey             `json:"key"`
	Action          ActionType             `json:"action"`
	OverrideAction  ActionType             `json:"override_action,omitempty"`
	Provenance      Provenance             `json:"provenance,omitempty"`
	PreviousStatus  RequestStatus          `json:"previous_status"`
	ExpectedStatus  RequestStatus          `json:"expected_status"`
	Endpoint        string                 `json:"endpoint"`
	Response        map[string]interface{} `json:"response,omitempty"`
	RequiresRefresh bool                   `json:"requires_refresh"`
}

// JournalEntry is the local, append-only record of an action dispatched on behalf of a viewer
type JournalEntry struct {
	ID             string                 `json:"id"`
	ActorID        string                 `json:"actor_id"`
	ActorName      string                 `json:"actor_name,omitempty"`
	RequestType    RequestType            `json:"request_type"`
	RequestID      string                 `json:"request_id"`
	Action         ActionType             `json:"action"`
	OverrideAction ActionType             `json:"override_action,omitempty"`
	Provenance     Provenance             `json:"provenance,omitempty"`
	PreviousStatus RequestStatus          `json:"previous_status,omitempty"`
	Endpoint       string                 `json:"endpoint,omitempty"`
	Reason         string                 `json:"reason,omitempty"`
	Succeeded      bool                   `json:"succeeded"`
	Error          string                 `json:"error,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

type ListJournalFilter struct {
	ActorID     string       `mapstructure:"actor" validate:"omitempty"`
	RequestType RequestType  `mapstructure:"type" validate:"omitempty"`
	RequestID   string       `mapstructure:"object_id" validate:"omitempty"`
	Actions     []ActionType `mapstructure:"actions" validate:"omitempty,dive,oneof=approve reject override cancel"`
	Size        int          `mapstructure:"size" validate:"omitempty,min=1"`
	Offset      int          `mapstructure:"offset" validate:"omitempty,min=0"`
	// OrderBy items are "column" or "column:asc|desc"
	OrderBy []string `mapstructure:"order_by" validate:"omitempty"`
}
