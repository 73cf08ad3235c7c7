package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/goto/workforce/api/handler/v1beta1"
	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/log"
)

const requestIDHeaderKey = "X-Request-Id"

// headerAuth reads the viewer identity set by the gateway and puts it on the request context
func headerAuth(cfg DefaultAuth, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := strings.TrimSpace(r.Header.Get(cfg.UserIDHeaderKey)); id != "" {
			canOverride, _ := strconv.ParseBool(r.Header.Get(cfg.OverrideHeaderKey))
			ctx = v1beta1.WithViewer(ctx, domain.Viewer{
				ID:          id,
				Name:        r.Header.Get(cfg.UserNameHeaderKey),
				CanOverride: canOverride,
			})
			ctx = log.WithContextValue(ctx, log.ViewerIDKey, id)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// enrichLogFields tags every log line of the request with its id and path
func enrichLogFields(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeaderKey)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeaderKey, requestID)

		ctx := log.WithContextValue(r.Context(), log.RequestIDKey, requestID)
		ctx = log.WithMetadata(ctx, map[string]interface{}{"http_path": r.URL.Path})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
