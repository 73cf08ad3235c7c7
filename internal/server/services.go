package server

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/goto/workforce/core/decision"
	"github.com/goto/workforce/core/hierarchy"
	"github.com/goto/workforce/core/history"
	"github.com/goto/workforce/core/inbox"
	"github.com/goto/workforce/core/request"
	"github.com/goto/workforce/core/timelock"
	"github.com/goto/workforce/internal/store/postgres"
	"github.com/goto/workforce/pkg/cache"
	"github.com/goto/workforce/pkg/hrms"
	httpclient "github.com/goto/workforce/pkg/http"
	"github.com/goto/workforce/pkg/log"
	"github.com/goto/workforce/plugins/notifiers"
)

type ServiceDeps struct {
	Config    *Config
	Logger    log.Logger
	Validator *validator.Validate
	// WithJournal opens the postgres store and records every dispatched action
	WithJournal bool
}

type Services struct {
	Config            *Config
	Backend           *hrms.Client
	TimeLock          *timelock.Evaluator
	HierarchyService  *hierarchy.Service
	InboxService      *inbox.Service
	HistoryService    *history.Service
	DecisionService   *decision.Service
	JournalRepository *postgres.ActionJournalRepository
	// Notifier is nil when no notifier provider is configured
	Notifier notifiers.Client

	logger  log.Logger
	closers []io.Closer
}

func InitServices(deps ServiceDeps) (*Services, error) {
	cfg := deps.Config
	s := &Services{Config: cfg, logger: deps.Logger}

	httpClient, err := httpclient.NewHTTPClient(&cfg.Backend.HTTP, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing backend http client: %w", err)
	}
	s.Backend, err = hrms.NewClient(cfg.Backend.HTTP.URL,
		hrms.WithHTTPClient(httpClient),
		hrms.WithViewerHeader(cfg.Backend.ViewerHeaderKey),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing backend client: %w", err)
	}

	s.TimeLock, err = timelock.NewEvaluator(cfg.Inbox.TimeLock)
	if err != nil {
		return nil, fmt.Errorf("initializing time lock evaluator: %w", err)
	}
	normalizer := request.NewNormalizer(s.TimeLock.Location())

	hierarchyCache, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("initializing cache: %w", err)
	}
	if c, ok := hierarchyCache.(io.Closer); ok {
		s.closers = append(s.closers, c)
	}

	s.HierarchyService = hierarchy.NewService(hierarchy.ServiceDeps{
		Client: s.Backend,
		Cache:  hierarchyCache,
		Logger: deps.Logger,
	})
	s.InboxService = inbox.NewService(inbox.ServiceDeps{
		Source:           s.Backend,
		HierarchyService: s.HierarchyService,
		Normalizer:       normalizer,
		Logger:           deps.Logger,
		Validator:        deps.Validator,
	})
	s.HistoryService = history.NewService(history.ServiceDeps{
		Client:     s.Backend,
		Normalizer: normalizer,
		Logger:     deps.Logger,
		Validator:  deps.Validator,
	})

	decisionDeps := decision.ServiceDeps{
		InboxService:   s.InboxService,
		Backend:        s.Backend,
		HistoryService: s.HistoryService,
		TimeLock:       s.TimeLock,
		Normalizer:     normalizer,
		Logger:         deps.Logger,
	}
	if deps.WithJournal && cfg.Journal.Enabled {
		store, err := postgres.NewStore(&cfg.DB)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("initializing store: %w", err)
		}
		s.closers = append(s.closers, store)

		version, err := store.Migrate()
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("migrating store: %w", err)
		}
		deps.Logger.Info(context.Background(), "action journal ready", "schema_version", version)

		s.JournalRepository = postgres.NewActionJournalRepository(store.DB())
		decisionDeps.JournalRepo = s.JournalRepository
	}
	s.DecisionService = decision.NewService(decisionDeps)

	if cfg.Notifier.Provider != "" {
		s.Notifier, err = notifiers.NewClient(&cfg.Notifier, deps.Logger)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("initializing notifier: %w", err)
		}
	}

	return s, nil
}

// Close waits for pending journal writes, then releases the store and the cache
func (s *Services) Close() {
	if s.DecisionService != nil {
		s.DecisionService.Wait()
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			s.logger.Error(context.Background(), "failed to close resource", "error", err)
		}
	}
}
