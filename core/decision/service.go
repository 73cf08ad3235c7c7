package decision

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goto/workforce/core/inbox"
	"github.com/goto/workforce/core/request"
	"github.com/goto/workforce/core/timelock"
	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/log"
)

//go:generate mockery --name=inboxService --exported --with-expecter
type inboxService interface {
	Get(ctx context.Context, viewer domain.Viewer, key domain.RequestKey) (*domain.InboxItem, error)
}

//go:generate mockery --name=backend --exported --with-expecter
type backend interface {
	GetRequest(ctx context.Context, viewer domain.Viewer, key domain.RequestKey) (domain.RawRecord, error)
	Dispatch(ctx context.Context, viewer domain.Viewer, call *domain.BackendCall) (map[string]interface{}, error)
}

//go:generate mockery --name=historyService --exported --with-expecter
type historyService interface {
	GetTimeline(ctx context.Context, viewer domain.Viewer, key domain.HistoryKey) (*domain.Timeline, error)
}

//go:generate mockery --name=journalRepository --exported --with-expecter
type journalRepository interface {
	Append(ctx context.Context, entry *domain.JournalEntry) error
}

type ServiceDeps struct {
	InboxService   inboxService
	Backend        backend
	HistoryService historyService
	JournalRepo    journalRepository
	TimeLock       *timelock.Evaluator
	Normalizer     *request.Normalizer
	Logger         log.Logger
}

// Service validates decisions against the state machine and dispatches them to the backend
type Service struct {
	inboxService   inboxService
	backend        backend
	historyService historyService
	journalRepo    journalRepository
	timeLock       *timelock.Evaluator
	normalizer     *request.Normalizer
	logger         log.Logger

	journalWG sync.WaitGroup

	TimeNow func() time.Time
}

func NewService(deps ServiceDeps) *Service {
	normalizer := deps.Normalizer
	if normalizer == nil {
		normalizer = request.NewNormalizer(time.UTC)
	}
	return &Service{
		inboxService:   deps.InboxService,
		backend:        deps.Backend,
		historyService: deps.HistoryService,
		journalRepo:    deps.JournalRepo,
		timeLock:       deps.TimeLock,
		normalizer:     normalizer,
		logger:         deps.Logger,

		TimeNow: time.Now,
	}
}

// Act performs one decision. Validation, reason, authority and lock checks all happen
// before the backend is called; the backend call itself is made exactly once.
// On success the caller must re-read the inbox: no state is updated locally.
func (s *Service) Act(ctx context.Context, viewer domain.Viewer, cmd domain.ActionCommand) (*domain.ActionResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidActionParameter, err)
	}
	if cmd.Action.RequiresReason() && !cmd.HasReason() {
		return nil, fmt.Errorf("%w: %s", ErrReasonRequired, cmd.Action)
	}

	item, err := s.resolve(ctx, viewer, cmd.Key, viewer.CanOverride && cmd.Action == domain.ActionOverride)
	if err != nil {
		return nil, err
	}

	lock := s.timeLock.Evaluate(item.Request, s.TimeNow())
	transition, err := domain.NextStatus(domain.TransitionInput{
		Type:           item.Type,
		Status:         item.Status,
		Action:         cmd.Action,
		OverrideAction: cmd.OverrideAction,
		CanOverride:    viewer.CanOverride,
		Locked:         lock.IsLocked,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOverrideUnauthorized) {
			return nil, fmt.Errorf("%w: %w", ErrActionForbidden, err)
		}
		return nil, err
	}

	call, err := Route(item, cmd)
	if err != nil {
		return nil, err
	}

	response, err := s.backend.Dispatch(ctx, viewer, call)
	s.record(ctx, viewer, cmd, item, call, err)
	if err != nil {
		var be *domain.BackendError
		if errors.As(err, &be) && be.StatusCode == http.StatusConflict {
			return nil, fmt.Errorf("%w: %w", ErrDecisionConflict, err)
		}
		return nil, err
	}

	s.logger.Info(ctx, "decision dispatched",
		"viewer_id", viewer.ID,
		"request", item.Key().String(),
		"action", cmd.Action,
		"provenance", item.Provenance,
	)

	return &domain.ActionResult{
		Key:             item.Key(),
		Action:          cmd.Action,
		OverrideAction:  cmd.OverrideAction,
		Provenance:      item.Provenance,
		PreviousStatus:  item.Status,
		ExpectedStatus:  transition.To,
		Endpoint:        call.Path,
		Response:        response,
		RequiresRefresh: true,
	}, nil
}

// Detail returns the request with its time lock, the actions the viewer may take and
// the decision history. A history failure is reported inside the timeline.
func (s *Service) Detail(ctx context.Context, viewer domain.Viewer, key domain.RequestKey) (*domain.RequestDetail, error) {
	item, err := s.resolve(ctx, viewer, key, viewer.CanOverride)
	if err != nil {
		return nil, err
	}

	lock := s.timeLock.Evaluate(item.Request, s.TimeNow())
	detail := &domain.RequestDetail{
		Item:           item,
		TimeLock:       lock,
		AllowedActions: s.allowedActions(item, viewer, lock),
	}

	historyKey := domain.HistoryKey{ContentType: key.Type.ContentType(), ObjectID: key.ID}
	timeline, err := s.historyService.GetTimeline(ctx, viewer, historyKey)
	if err != nil {
		timeline = &domain.Timeline{Key: historyKey, Entries: []*domain.TimelineEntry{}, Error: err.Error()}
	}
	detail.History = timeline

	return detail, nil
}

// Wait blocks until pending journal writes are done
func (s *Service) Wait() {
	s.journalWG.Wait()
}

func (s *Service) allowedActions(item *domain.InboxItem, viewer domain.Viewer, lock domain.TimeLock) []domain.ActionType {
	candidates := domain.AllowedActions(domain.TransitionInput{
		Type:        item.Type,
		Status:      item.Status,
		CanOverride: viewer.CanOverride,
		Locked:      lock.IsLocked,
	})

	allowed := []domain.ActionType{}
	for _, a := range candidates {
		cmd := domain.ActionCommand{Key: item.Key(), Action: a, OverrideAction: domain.ActionApprove, Reason: "-"}
		if _, err := Route(item, cmd); err == nil {
			allowed = append(allowed, a)
		}
	}
	return allowed
}

// resolve finds the request in the viewer's inbox. With allowDirect, a request outside
// the inbox is read from its own collection and carries no provenance.
func (s *Service) resolve(ctx context.Context, viewer domain.Viewer, key domain.RequestKey, allowDirect bool) (*domain.InboxItem, error) {
	item, err := s.inboxService.Get(ctx, viewer, key)
	if err == nil {
		return item, nil
	}
	if !allowDirect || !errors.Is(err, inbox.ErrRequestNotFound) {
		return nil, err
	}

	raw, err := s.backend.GetRequest(ctx, viewer, key)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", key, err)
	}
	r := s.normalizer.Normalize(raw, key.Type)
	if r.ID == "" {
		r.ID = key.ID
	}
	r.Type = key.Type

	return &domain.InboxItem{Request: r, Source: domain.InboxSourceDirect}, nil
}

func (s *Service) record(ctx context.Context, viewer domain.Viewer, cmd domain.ActionCommand, item *domain.InboxItem, call *domain.BackendCall, dispatchErr error) {
	if s.journalRepo == nil {
		return
	}

	entry := &domain.JournalEntry{
		ActorID:        viewer.ID,
		ActorName:      viewer.Name,
		RequestType:    item.Type,
		RequestID:      item.ID,
		Action:         cmd.Action,
		OverrideAction: cmd.OverrideAction,
		Provenance:     item.Provenance,
		PreviousStatus: item.Status,
		Endpoint:       call.Path,
		Reason:         cmd.Reason,
		Succeeded:      dispatchErr == nil,
		CreatedAt:      s.TimeNow(),
	}
	if dispatchErr != nil {
		entry.Error = dispatchErr.Error()
	}
	if item.Authority != nil {
		entry.Metadata = map[string]interface{}{
			"substitute_authority_id":  item.Authority.ID,
			"acting_as_substitute_for": item.Authority.PrincipalID,
		}
	}

	s.journalWG.Add(1)
	go func() {
		defer s.journalWG.Done()
		ctx := context.WithoutCancel(ctx)
		if err := s.journalRepo.Append(ctx, entry); err != nil {
			s.logger.Error(ctx, "failed to record action in journal", "request", item.Key().String(), "action", cmd.Action, "error", err)
		}
	}()
}
