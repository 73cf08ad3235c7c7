package v1beta1

import (
	"context"

	"github.com/goto/workforce/domain"
)

type viewerContextKey struct{}

// WithViewer returns a copy of ctx carrying the authenticated viewer
func WithViewer(ctx context.Context, viewer domain.Viewer) context.Context {
	return context.WithValue(ctx, viewerContextKey{}, viewer)
}

func ViewerFromContext(ctx context.Context) (domain.Viewer, bool) {
	viewer, ok := ctx.Value(viewerContextKey{}).(domain.Viewer)
	if !ok || viewer.ID == "" {
		return domain.Viewer{}, false
	}
	return viewer, true
}

func (h *Handler) getViewer(ctx context.Context) (domain.Viewer, error) {
	viewer, ok := ViewerFromContext(ctx)
	if !ok {
		return domain.Viewer{}, errUnauthenticated
	}
	return viewer, nil
}
