package hierarchy

import (
	"context"
	"fmt"

	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/cache"
	"github.com/goto/workforce/pkg/log"
)

const cacheKeyPrefix = "hierarchy:"

//go:generate mockery --name=client --exported --with-expecter
type client interface {
	GetSubordinates(ctx context.Context, viewer domain.Viewer) (*domain.Hierarchy, error)
}

type ServiceDeps struct {
	Client client
	Cache  cache.Cache
	Logger log.Logger
}

// Service resolves the viewer's direct and extended subordinates
type Service struct {
	client client
	cache  cache.Cache
	logger log.Logger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		client: deps.Client,
		cache:  deps.Cache,
		logger: deps.Logger,
	}
}

// Get returns the viewer's hierarchy, from cache when available.
// Cache failures are logged and never fail the lookup.
func (s *Service) Get(ctx context.Context, viewer domain.Viewer) (*domain.Hierarchy, error) {
	key := cacheKeyPrefix + viewer.ID

	if s.cache != nil {
		cached := new(domain.Hierarchy)
		found, err := s.cache.Get(ctx, key, cached)
		if err != nil {
			s.logger.Warn(ctx, "failed to read cached hierarchy", "viewer_id", viewer.ID, "error", err)
		} else if found {
			return cached, nil
		}
	}

	h, err := s.client.GetSubordinates(ctx, viewer)
	if err != nil {
		return nil, fmt.Errorf("fetching subordinates of %q: %w", viewer.ID, err)
	}
	if h.ViewerID == "" {
		h.ViewerID = viewer.ID
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, h); err != nil {
			s.logger.Warn(ctx, "failed to cache hierarchy", "viewer_id", viewer.ID, "error", err)
		}
	}

	return h, nil
}

func (s *Service) Invalidate(ctx context.Context, viewerID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cacheKeyPrefix+viewerID)
}
