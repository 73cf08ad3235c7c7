package decision

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goto/workforce/domain"
)

const cancelPathFormat = "/leave/requests/%s/manager-cancel/"

// Route builds the single backend call performing cmd on item. Substitute items may only
// be approved or rejected, on behalf of the authority principal. Items fetched directly,
// outside the viewer's inbox, may only be overridden.
func Route(item *domain.InboxItem, cmd domain.ActionCommand) (*domain.BackendCall, error) {
	if cmd.Action.RequiresReason() && !cmd.HasReason() {
		return nil, fmt.Errorf("%w: %s", ErrReasonRequired, cmd.Action)
	}
	if !domain.SupportsAction(item.Type, cmd.Action) {
		return nil, fmt.Errorf("%w: %s on %s", domain.ErrUnsupportedAction, cmd.Action, item.Type)
	}

	base := fmt.Sprintf("%s/%s", item.Type.ResourcePath(), item.ID)
	reason := strings.TrimSpace(cmd.Reason)

	switch cmd.Action {
	case domain.ActionApprove, domain.ActionReject:
		if item.Provenance == "" {
			return nil, fmt.Errorf("%w: %s outside the viewer's inbox", ErrActionForbidden, cmd.Action)
		}
		call := &domain.BackendCall{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("%s/%s/", base, cmd.Action),
			Body:   map[string]interface{}{},
		}
		if reason != "" {
			call.Body["reason"] = reason
		}
		if item.Provenance == domain.ProvenanceSubstitute {
			if item.Authority == nil {
				return nil, fmt.Errorf("%w: no substitute authority covers %s", ErrActionForbidden, item.Key())
			}
			call.Body["acting_as_substitute"] = true
			call.Body["substitute_authority_id"] = item.Authority.ID
			call.Body["acting_as_substitute_for"] = item.Authority.PrincipalID
		}
		return call, nil

	case domain.ActionOverride:
		if item.Provenance == domain.ProvenanceSubstitute {
			return nil, fmt.Errorf("%w: override as substitute", ErrActionForbidden)
		}
		return &domain.BackendCall{
			Method: http.MethodPost,
			Path:   base + "/override_decision/",
			Body:   map[string]interface{}{"action": string(cmd.OverrideAction), "reason": reason},
		}, nil

	case domain.ActionCancel:
		if item.Provenance == domain.ProvenanceSubstitute || item.Provenance == "" {
			return nil, fmt.Errorf("%w: cancel requires hierarchy authority", ErrActionForbidden)
		}
		return &domain.BackendCall{
			Method: http.MethodPost,
			Path:   fmt.Sprintf(cancelPathFormat, item.ID),
			Body:   map[string]interface{}{"reason": reason},
		}, nil
	}

	return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidActionParameter, cmd.Action)
}
