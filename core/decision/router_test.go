package decision_test

import (
	"testing"

	"github.com/goto/workforce/core/decision"
	"github.com/goto/workforce/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	authority := &domain.SubstituteAuthority{ID: "auth-1", PrincipalID: "absent"}
	item := func(typ domain.RequestType, p domain.Provenance) *domain.InboxItem {
		i := &domain.InboxItem{Request: &domain.Request{Type: typ, ID: "42"}, Provenance: p}
		if p == domain.ProvenanceSubstitute {
			i.Authority = authority
		}
		return i
	}

	tests := []struct {
		name    string
		item    *domain.InboxItem
		cmd     domain.ActionCommand
		want    *domain.BackendCall
		wantErr error
	}{
		{
			name: "approve leave as self",
			item: item(domain.RequestTypeLeave, domain.ProvenanceDirect),
			cmd:  domain.ActionCommand{Action: domain.ActionApprove},
			want: &domain.BackendCall{Method: "POST", Path: "/leave/requests/42/approve/", Body: map[string]interface{}{}},
		},
		{
			name: "reject overtime with reason",
			item: item(domain.RequestTypeOvertime, domain.ProvenanceIndirect),
			cmd:  domain.ActionCommand{Action: domain.ActionReject, Reason: "  no budget "},
			want: &domain.BackendCall{Method: "POST", Path: "/overtime-requests/42/reject/", Body: map[string]interface{}{"reason": "no budget"}},
		},
		{
			name: "approve as substitute",
			item: item(domain.RequestTypeLeave, domain.ProvenanceSubstitute),
			cmd:  domain.ActionCommand{Action: domain.ActionApprove},
			want: &domain.BackendCall{Method: "POST", Path: "/leave/requests/42/approve/", Body: map[string]interface{}{
				"acting_as_substitute":     true,
				"substitute_authority_id":  "auth-1",
				"acting_as_substitute_for": "absent",
			}},
		},
		{
			name: "reject meal as substitute",
			item: item(domain.RequestTypeMeal, domain.ProvenanceSubstitute),
			cmd:  domain.ActionCommand{Action: domain.ActionReject, Reason: "duplicate"},
			want: &domain.BackendCall{Method: "POST", Path: "/meal-requests/42/reject/", Body: map[string]interface{}{
				"reason":                   "duplicate",
				"acting_as_substitute":     true,
				"substitute_authority_id":  "auth-1",
				"acting_as_substitute_for": "absent",
			}},
		},
		{
			name: "override cardless entry",
			item: item(domain.RequestTypeCardlessEntry, domain.ProvenanceDirect),
			cmd:  domain.ActionCommand{Action: domain.ActionOverride, OverrideAction: domain.ActionReject, Reason: "audit"},
			want: &domain.BackendCall{Method: "POST", Path: "/cardless-entry-requests/42/override_decision/", Body: map[string]interface{}{"action": "reject", "reason": "audit"}},
		},
		{
			name: "override of a directly fetched request",
			item: item(domain.RequestTypeLeave, ""),
			cmd:  domain.ActionCommand{Action: domain.ActionOverride, OverrideAction: domain.ActionApprove, Reason: "audit"},
			want: &domain.BackendCall{Method: "POST", Path: "/leave/requests/42/override_decision/", Body: map[string]interface{}{"action": "approve", "reason": "audit"}},
		},
		{
			name: "manager cancel",
			item: item(domain.RequestTypeLeave, domain.ProvenanceDirect),
			cmd:  domain.ActionCommand{Action: domain.ActionCancel, Reason: "plans changed"},
			want: &domain.BackendCall{Method: "POST", Path: "/leave/requests/42/manager-cancel/", Body: map[string]interface{}{"reason": "plans changed"}},
		},
		{
			name:    "reject requires a reason",
			item:    item(domain.RequestTypeLeave, domain.ProvenanceDirect),
			cmd:     domain.ActionCommand{Action: domain.ActionReject, Reason: "   "},
			wantErr: decision.ErrReasonRequired,
		},
		{
			name:    "cancel requires a reason",
			item:    item(domain.RequestTypeLeave, domain.ProvenanceDirect),
			cmd:     domain.ActionCommand{Action: domain.ActionCancel},
			wantErr: decision.ErrReasonRequired,
		},
		{
			name:    "override as substitute is forbidden",
			item:    item(domain.RequestTypeLeave, domain.ProvenanceSubstitute),
			cmd:     domain.ActionCommand{Action: domain.ActionOverride, OverrideAction: domain.ActionApprove, Reason: "x"},
			wantErr: decision.ErrActionForbidden,
		},
		{
			name:    "cancel as substitute is forbidden",
			item:    item(domain.RequestTypeLeave, domain.ProvenanceSubstitute),
			cmd:     domain.ActionCommand{Action: domain.ActionCancel, Reason: "x"},
			wantErr: decision.ErrActionForbidden,
		},
		{
			name:    "substitute without authority is forbidden",
			item:    &domain.InboxItem{Request: &domain.Request{Type: domain.RequestTypeLeave, ID: "42"}, Provenance: domain.ProvenanceSubstitute},
			cmd:     domain.ActionCommand{Action: domain.ActionApprove},
			wantErr: decision.ErrActionForbidden,
		},
		{
			name:    "approve outside the inbox is forbidden",
			item:    item(domain.RequestTypeLeave, ""),
			cmd:     domain.ActionCommand{Action: domain.ActionApprove},
			wantErr: decision.ErrActionForbidden,
		},
		{
			name:    "cancel of overtime is unsupported",
			item:    item(domain.RequestTypeOvertime, domain.ProvenanceDirect),
			cmd:     domain.ActionCommand{Action: domain.ActionCancel, Reason: "x"},
			wantErr: domain.ErrUnsupportedAction,
		},
		{
			name:    "override of meal is unsupported",
			item:    item(domain.RequestTypeMeal, domain.ProvenanceDirect),
			cmd:     domain.ActionCommand{Action: domain.ActionOverride, OverrideAction: domain.ActionApprove, Reason: "x"},
			wantErr: domain.ErrUnsupportedAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decision.Route(tt.item, tt.cmd)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
