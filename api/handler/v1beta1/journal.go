package v1beta1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goto/workforce/domain"
)

type listJournalResponse struct {
	Entries []*domain.JournalEntry `json:"entries"`
}

// ListJournal lists locally recorded actions, newest first.
// Viewers without override authority only see their own actions.
func (h *Handler) ListJournal(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx := r.Context()
	viewer, err := h.getViewer(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	var filter domain.ListJournalFilter
	if err := decodeQuery(r.URL.Query(), &filter, "actions", "order_by"); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	filter.RequestType = domain.RequestType(strings.ToUpper(string(filter.RequestType)))
	if !viewer.CanOverride {
		filter.ActorID = viewer.ID
	}
	if err := h.validator.Struct(filter); err != nil {
		h.writeError(ctx, w, fmt.Errorf("%w: %s", errInvalidQuery, err))
		return
	}

	entries, err := h.journalRepo.List(ctx, filter)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if entries == nil {
		entries = []*domain.JournalEntry{}
	}

	h.writeJSON(ctx, w, http.StatusOK, listJournalResponse{Entries: entries})
}
