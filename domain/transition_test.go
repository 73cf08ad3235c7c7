package domain_test

import (
	"testing"

	"github.com/goto/workforce/domain"
	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name         string
		input        domain.TransitionInput
		wantTo       domain.RequestStatus
		wantDecision domain.DecisionAction
		wantErr      error
	}{
		{
			name:         "approve pending leave",
			input:        domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusPending, Action: domain.ActionApprove},
			wantTo:       domain.RequestStatusApproved,
			wantDecision: domain.DecisionActionApproved,
		},
		{
			name:         "reject pending meal",
			input:        domain.TransitionInput{Type: domain.RequestTypeMeal, Status: domain.RequestStatusPending, Action: domain.ActionReject},
			wantTo:       domain.RequestStatusRejected,
			wantDecision: domain.DecisionActionRejected,
		},
		{
			name:         "pending stays actionable when locked",
			input:        domain.TransitionInput{Type: domain.RequestTypeOvertime, Status: domain.RequestStatusPending, Action: domain.ActionApprove, Locked: true},
			wantTo:       domain.RequestStatusApproved,
			wantDecision: domain.DecisionActionApproved,
		},
		{
			name:         "re-approve rejected request",
			input:        domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusRejected, Action: domain.ActionApprove},
			wantTo:       domain.RequestStatusApproved,
			wantDecision: domain.DecisionActionApproved,
		},
		{
			name:    "re-approve locked rejected request",
			input:   domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusRejected, Action: domain.ActionApprove, Locked: true},
			wantErr: domain.ErrRecordLocked,
		},
		{
			name:    "approve approved request",
			input:   domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusApproved, Action: domain.ActionApprove},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "reject ordered request is handled as approved",
			input:   domain.TransitionInput{Type: domain.RequestTypeOvertime, Status: domain.RequestStatusOrdered, Action: domain.ActionReject},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:         "override approved request to rejected",
			input:        domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusApproved, Action: domain.ActionOverride, OverrideAction: domain.ActionReject, CanOverride: true},
			wantTo:       domain.RequestStatusRejected,
			wantDecision: domain.DecisionActionOverridden,
		},
		{
			name:         "override ordered overtime",
			input:        domain.TransitionInput{Type: domain.RequestTypeOvertime, Status: domain.RequestStatusOrdered, Action: domain.ActionOverride, OverrideAction: domain.ActionReject, CanOverride: true},
			wantTo:       domain.RequestStatusRejected,
			wantDecision: domain.DecisionActionOverridden,
		},
		{
			name:    "override pending request is rejected regardless of authority",
			input:   domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusPending, Action: domain.ActionOverride, OverrideAction: domain.ActionApprove, CanOverride: true},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "override without authority",
			input:   domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusRejected, Action: domain.ActionOverride, OverrideAction: domain.ActionApprove},
			wantErr: domain.ErrOverrideUnauthorized,
		},
		{
			name:    "override locked request",
			input:   domain.TransitionInput{Type: domain.RequestTypeCardlessEntry, Status: domain.RequestStatusApproved, Action: domain.ActionOverride, OverrideAction: domain.ActionReject, CanOverride: true, Locked: true},
			wantErr: domain.ErrRecordLocked,
		},
		{
			name:    "override meal request",
			input:   domain.TransitionInput{Type: domain.RequestTypeMeal, Status: domain.RequestStatusApproved, Action: domain.ActionOverride, OverrideAction: domain.ActionReject, CanOverride: true},
			wantErr: domain.ErrUnsupportedAction,
		},
		{
			name:    "override with invalid outcome",
			input:   domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusApproved, Action: domain.ActionOverride, OverrideAction: domain.ActionCancel, CanOverride: true},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:         "cancel approved leave",
			input:        domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusApproved, Action: domain.ActionCancel},
			wantTo:       domain.RequestStatusCancelled,
			wantDecision: domain.DecisionActionCancelled,
		},
		{
			name:    "cancel locked leave",
			input:   domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusApproved, Action: domain.ActionCancel, Locked: true},
			wantErr: domain.ErrRecordLocked,
		},
		{
			name:    "cancel overtime",
			input:   domain.TransitionInput{Type: domain.RequestTypeOvertime, Status: domain.RequestStatusApproved, Action: domain.ActionCancel},
			wantErr: domain.ErrUnsupportedAction,
		},
		{
			name:    "cancel pending leave",
			input:   domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusPending, Action: domain.ActionCancel},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "cancelled is terminal",
			input:   domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusCancelled, Action: domain.ActionApprove},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "potential is terminal",
			input:   domain.TransitionInput{Type: domain.RequestTypeOvertime, Status: domain.RequestStatusPotential, Action: domain.ActionApprove},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "unknown status is terminal",
			input:   domain.TransitionInput{Type: domain.RequestTypeLeave, Status: "ON_HOLD", Action: domain.ActionReject},
			wantErr: domain.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NextStatus(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input.Status, got.From)
			assert.Equal(t, tt.wantTo, got.To)
			assert.Equal(t, tt.wantDecision, got.Decision)
		})
	}
}

func TestAllowedActions(t *testing.T) {
	t.Run("pending request offers approve and reject", func(t *testing.T) {
		got := domain.AllowedActions(domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusPending, CanOverride: true})
		assert.Equal(t, []domain.ActionType{domain.ActionApprove, domain.ActionReject}, got)
	})

	t.Run("approved leave offers override and cancel to an overrider", func(t *testing.T) {
		got := domain.AllowedActions(domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusApproved, CanOverride: true})
		assert.Equal(t, []domain.ActionType{domain.ActionOverride, domain.ActionCancel}, got)
	})

	t.Run("locked approved leave offers nothing", func(t *testing.T) {
		got := domain.AllowedActions(domain.TransitionInput{Type: domain.RequestTypeLeave, Status: domain.RequestStatusApproved, CanOverride: true, Locked: true})
		assert.Empty(t, got)
	})

	t.Run("rejected meal offers re-approval only", func(t *testing.T) {
		got := domain.AllowedActions(domain.TransitionInput{Type: domain.RequestTypeMeal, Status: domain.RequestStatusRejected, CanOverride: true})
		assert.Equal(t, []domain.ActionType{domain.ActionApprove}, got)
	})
}
