package v1beta1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goto/workforce/core/inbox"
	"github.com/goto/workforce/domain"
)

type listInboxQuery struct {
	domain.InboxFilter `mapstructure:",squash"`
	GroupBys           []string `mapstructure:"group_bys"`
}

type listInboxResponse struct {
	ViewerID     string                `json:"viewer_id"`
	Items        []*domain.InboxItem   `json:"items"`
	Summary      *domain.SummaryResult `json:"summary"`
	SourceErrors []*domain.SourceError `json:"source_errors"`
	Degraded     bool                  `json:"degraded"`
	GeneratedAt  time.Time             `json:"generated_at"`
}

type actRequest struct {
	Action         domain.ActionType `json:"action"`
	OverrideAction domain.ActionType `json:"override_action"`
	Reason         string            `json:"reason"`
}

func (h *Handler) ListInbox(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx := r.Context()
	viewer, err := h.getViewer(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	var q listInboxQuery
	if err := decodeQuery(r.URL.Query(), &q, "group_bys"); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	q.Type = domain.RequestType(strings.ToUpper(string(q.Type)))
	if len(q.GroupBys) > 0 {
		if err := h.validator.Struct(domain.SummaryParameters{GroupBys: q.GroupBys}); err != nil {
			h.writeError(ctx, w, fmt.Errorf("%w: %s", errInvalidQuery, err))
			return
		}
	}

	result, err := h.inboxService.List(ctx, viewer, q.InboxFilter)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	sourceErrors := result.SourceErrors
	if sourceErrors == nil {
		sourceErrors = []*domain.SourceError{}
	}
	items := result.Items
	if items == nil {
		items = []*domain.InboxItem{}
	}

	h.writeJSON(ctx, w, http.StatusOK, listInboxResponse{
		ViewerID:     result.ViewerID,
		Items:        items,
		Summary:      inbox.Summarize(items, q.GroupBys...),
		SourceErrors: sourceErrors,
		Degraded:     result.IsDegraded(),
		GeneratedAt:  result.GeneratedAt,
	})
}

func (h *Handler) GetRequestDetail(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	viewer, err := h.getViewer(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	key, err := requestKeyFromPath(pathParams)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	detail, err := h.decisionService.Detail(ctx, viewer, key)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) Act(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	viewer, err := h.getViewer(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	key, err := requestKeyFromPath(pathParams)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	var req actRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(ctx, w, fmt.Errorf("%w: %s", errInvalidRequestBody, err))
		return
	}

	result, err := h.decisionService.Act(ctx, viewer, domain.ActionCommand{
		Key:            key,
		Action:         domain.ActionType(strings.ToLower(string(req.Action))),
		OverrideAction: domain.ActionType(strings.ToLower(string(req.OverrideAction))),
		Reason:         req.Reason,
	})
	if err != nil {
		h.logger.Warn(ctx, "action rejected", "request", key.String(), "action", req.Action, "error", err)
		h.writeError(ctx, w, err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, result)
}

func requestKeyFromPath(pathParams map[string]string) (domain.RequestKey, error) {
	key := domain.RequestKey{
		Type: domain.RequestType(strings.ToUpper(pathParams["type"])),
		ID:   pathParams["id"],
	}
	if !key.Type.IsValid() {
		return key, fmt.Errorf("%w: unknown request type %q", errInvalidQuery, pathParams["type"])
	}
	if key.ID == "" {
		return key, fmt.Errorf("%w: request id is required", errInvalidQuery)
	}
	return key, nil
}
