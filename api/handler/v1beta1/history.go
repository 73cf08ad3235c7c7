package v1beta1

import (
	"net/http"

	"github.com/goto/workforce/domain"
)

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx := r.Context()
	viewer, err := h.getViewer(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	var key domain.HistoryKey
	if err := decodeQuery(r.URL.Query(), &key); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	timeline, err := h.historyService.GetTimeline(ctx, viewer, key)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, timeline)
}
