package inbox

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goto/workforce/core/request"
	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/log"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name=source --exported --with-expecter
type source interface {
	ListTeamRequests(ctx context.Context, viewer domain.Viewer) ([]domain.RawRecord, error)
	ListLeaveTeamHistory(ctx context.Context, viewer domain.Viewer) ([]domain.RawRecord, error)
	ListSubstitutePending(ctx context.Context, viewer domain.Viewer) (*domain.SubstitutePendingPayload, error)
}

//go:generate mockery --name=hierarchyService --exported --with-expecter
type hierarchyService interface {
	Get(ctx context.Context, viewer domain.Viewer) (*domain.Hierarchy, error)
}

type ServiceDeps struct {
	Source           source
	HierarchyService hierarchyService
	Normalizer       *request.Normalizer
	Logger           log.Logger
	Validator        *validator.Validate
}

// Service builds a viewer's approval inbox from the backend streams
type Service struct {
	source           source
	hierarchyService hierarchyService
	normalizer       *request.Normalizer
	logger           log.Logger
	validator        *validator.Validate

	TimeNow func() time.Time
}

func NewService(deps ServiceDeps) *Service {
	normalizer := deps.Normalizer
	if normalizer == nil {
		normalizer = request.NewNormalizer(time.UTC)
	}
	v := deps.Validator
	if v == nil {
		v = validator.New()
	}
	return &Service{
		source:           deps.Source,
		hierarchyService: deps.HierarchyService,
		normalizer:       normalizer,
		logger:           deps.Logger,
		validator:        v,

		TimeNow: time.Now,
	}
}

// Aggregate fetches every stream concurrently and merges them. A failing stream is
// recorded in SourceErrors and contributes nothing; it never fails the aggregate.
func (s *Service) Aggregate(ctx context.Context, viewer domain.Viewer) (*domain.Inbox, error) {
	if viewer.ID == "" {
		return nil, ErrEmptyViewer
	}

	var (
		team, history []domain.RawRecord
		substitute    *domain.SubstitutePendingPayload
		hierarchy     *domain.Hierarchy

		teamErr, historyErr, substituteErr, hierarchyErr error
	)

	eg := new(errgroup.Group)
	eg.Go(func() error {
		team, teamErr = s.source.ListTeamRequests(ctx, viewer)
		return nil
	})
	eg.Go(func() error {
		history, historyErr = s.source.ListLeaveTeamHistory(ctx, viewer)
		return nil
	})
	eg.Go(func() error {
		substitute, substituteErr = s.source.ListSubstitutePending(ctx, viewer)
		return nil
	})
	eg.Go(func() error {
		hierarchy, hierarchyErr = s.hierarchyService.Get(ctx, viewer)
		return nil
	})
	eg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.TimeNow()
	inbox := &domain.Inbox{
		ViewerID:     viewer.ID,
		SourceErrors: []*domain.SourceError{},
		GeneratedAt:  now,
	}
	for _, se := range []struct {
		source domain.InboxSource
		err    error
	}{
		{domain.InboxSourceTeam, teamErr},
		{domain.InboxSourceHistory, historyErr},
		{domain.InboxSourceSubstitute, substituteErr},
		{domain.InboxSourceHierarchy, hierarchyErr},
	} {
		if se.err == nil {
			continue
		}
		s.logger.Warn(ctx, "inbox source unavailable", "source", se.source, "viewer_id", viewer.ID, "error", se.err)
		inbox.SourceErrors = append(inbox.SourceErrors, &domain.SourceError{Source: se.source, Message: se.err.Error()})
	}

	src := Sources{
		Team:    s.normalizer.NormalizeAll(team, ""),
		History: s.normalizer.NormalizeAll(history, domain.RequestTypeLeave),
	}
	if substitute != nil {
		src.Substitute = append(
			s.normalizer.NormalizeAll(substitute.LeaveRequests, domain.RequestTypeLeave),
			s.normalizer.NormalizeAll(substitute.OvertimeRequests, domain.RequestTypeOvertime)...,
		)
		for _, raw := range substitute.Authorities {
			a, err := s.normalizer.NormalizeAuthority(raw)
			if err != nil {
				s.logger.Warn(ctx, "skipping substitute authority", "viewer_id", viewer.ID, "error", err)
				continue
			}
			src.Authorities = append(src.Authorities, a)
		}
	}

	inbox.Items = Merge(src, viewer.ID, hierarchy, now)
	return inbox, nil
}

// List aggregates and applies the filter
func (s *Service) List(ctx context.Context, viewer domain.Viewer, filter domain.InboxFilter) (*domain.Inbox, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFilter, err)
	}

	inbox, err := s.Aggregate(ctx, viewer)
	if err != nil {
		return nil, err
	}
	inbox.Items = Filter(inbox.Items, filter)
	return inbox, nil
}

// Get returns the inbox item with the given key. Items of failed streams are not found.
func (s *Service) Get(ctx context.Context, viewer domain.Viewer, key domain.RequestKey) (*domain.InboxItem, error) {
	inbox, err := s.Aggregate(ctx, viewer)
	if err != nil {
		return nil, err
	}
	item := inbox.Find(key)
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestNotFound, key)
	}
	return item, nil
}
