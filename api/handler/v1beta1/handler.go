package v1beta1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goto/workforce/core/decision"
	"github.com/goto/workforce/core/history"
	"github.com/goto/workforce/core/inbox"
	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/log"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
)

var (
	errUnauthenticated    = errors.New("viewer identity is missing")
	errInvalidRequestBody = errors.New("invalid request body")
	errInvalidQuery       = errors.New("invalid query parameters")
)

//go:generate mockery --name=inboxService --exported --with-expecter
type inboxService interface {
	List(ctx context.Context, viewer domain.Viewer, filter domain.InboxFilter) (*domain.Inbox, error)
}

//go:generate mockery --name=decisionService --exported --with-expecter
type decisionService interface {
	Act(ctx context.Context, viewer domain.Viewer, cmd domain.ActionCommand) (*domain.ActionResult, error)
	Detail(ctx context.Context, viewer domain.Viewer, key domain.RequestKey) (*domain.RequestDetail, error)
}

//go:generate mockery --name=historyService --exported --with-expecter
type historyService interface {
	GetTimeline(ctx context.Context, viewer domain.Viewer, key domain.HistoryKey) (*domain.Timeline, error)
}

//go:generate mockery --name=journalRepository --exported --with-expecter
type journalRepository interface {
	List(ctx context.Context, filter domain.ListJournalFilter) ([]*domain.JournalEntry, error)
}

// Handler serves the v1beta1 REST API
type Handler struct {
	inboxService    inboxService
	decisionService decisionService
	historyService  historyService
	journalRepo     journalRepository
	logger          log.Logger
	validator       *validator.Validate
}

type HandlerOption func(*Handler)

// WithJournalRepository exposes the action journal listing
func WithJournalRepository(r journalRepository) HandlerOption {
	return func(h *Handler) {
		h.journalRepo = r
	}
}

func NewHandler(
	inboxService inboxService,
	decisionService decisionService,
	historyService historyService,
	logger log.Logger,
	opts ...HandlerOption,
) *Handler {
	h := &Handler{
		inboxService:    inboxService,
		decisionService: decisionService,
		historyService:  historyService,
		logger:          logger,
		validator:       validator.New(),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

type route struct {
	method  string
	pattern string
	handler runtime.HandlerFunc
}

// RegisterRoutes binds every endpoint on mux. The journal endpoint is only
// registered when a journal repository is configured.
func (h *Handler) RegisterRoutes(mux *runtime.ServeMux) error {
	routes := []route{
		{http.MethodGet, "/v1beta1/inbox", h.ListInbox},
		{http.MethodGet, "/v1beta1/inbox/{type}/{id}", h.GetRequestDetail},
		{http.MethodPost, "/v1beta1/inbox/{type}/{id}/actions", h.Act},
		{http.MethodGet, "/v1beta1/history", h.GetHistory},
	}
	if h.journalRepo != nil {
		routes = append(routes, route{http.MethodGet, "/v1beta1/journal", h.ListJournal})
	}

	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return err
		}
	}
	return nil
}

type errorResponse struct {
	Error           string `json:"error"`
	RequiresRefresh bool   `json:"requires_refresh,omitempty"`
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error(ctx, "failed to write response", "error", err)
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := errorStatus(err)
	res := errorResponse{Error: err.Error()}

	var be *domain.BackendError
	switch {
	case status == http.StatusConflict:
		res.RequiresRefresh = true
	case status == http.StatusInternalServerError:
		h.logger.Error(ctx, "internal error", "error", err)
		res.Error = http.StatusText(http.StatusInternalServerError)
	case errors.As(err, &be) && status == be.StatusCode:
		res.Error = be.Message
	}

	h.writeJSON(ctx, w, status, res)
}

func errorStatus(err error) int {
	var be *domain.BackendError
	switch {
	case errors.Is(err, errUnauthenticated),
		errors.Is(err, inbox.ErrEmptyViewer):
		return http.StatusUnauthorized
	case errors.Is(err, errInvalidRequestBody),
		errors.Is(err, errInvalidQuery),
		errors.Is(err, inbox.ErrInvalidFilter),
		errors.Is(err, history.ErrInvalidHistoryKey),
		errors.Is(err, decision.ErrInvalidActionParameter),
		errors.Is(err, decision.ErrReasonRequired),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrUnsupportedAction),
		errors.Is(err, domain.ErrInvalidOrderBy):
		return http.StatusBadRequest
	case errors.Is(err, decision.ErrActionForbidden),
		errors.Is(err, domain.ErrOverrideUnauthorized),
		errors.Is(err, domain.ErrRecordLocked):
		return http.StatusForbidden
	case errors.Is(err, inbox.ErrRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, decision.ErrDecisionConflict):
		return http.StatusConflict
	case errors.As(err, &be):
		switch be.StatusCode {
		case http.StatusForbidden, http.StatusNotFound:
			return be.StatusCode
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
