package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goto/workforce/core/request"
	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/log"
	"github.com/mitchellh/mapstructure"
)

//go:generate mockery --name=client --exported --with-expecter
type client interface {
	ListDecisionHistory(ctx context.Context, viewer domain.Viewer, key domain.HistoryKey) ([]domain.RawRecord, error)
}

type ServiceDeps struct {
	Client     client
	Normalizer *request.Normalizer
	Logger     log.Logger
	Validator  *validator.Validate
}

// Service reads the decision log of a request
type Service struct {
	client     client
	normalizer *request.Normalizer
	logger     log.Logger
	validator  *validator.Validate
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
		client:     deps.Client,
		normalizer: normalizer,
		logger:     deps.Logger,
		validator:  v,
	}
}

type decisionRecord struct {
	ID                        string    `mapstructure:"id"`
	Action                    string    `mapstructure:"action"`
	DecisionMakerName         string    `mapstructure:"decision_maker_name"`
	HierarchyLevel            *int      `mapstructure:"hierarchy_level"`
	ActingAsSubstituteForName string    `mapstructure:"acting_as_substitute_for_name"`
	Reason                    string    `mapstructure:"reason"`
	IsOverride                bool      `mapstructure:"is_override"`
	OverriddenDecisionID      *string   `mapstructure:"overridden_decision_id"`
	DecisionDate              time.Time `mapstructure:"decision_date"`
	IsImmutable               bool      `mapstructure:"is_immutable"`
}

// GetTimeline returns the decisions of the request in backend order. Only an invalid key
// fails the call; fetch and decode failures are reported in Timeline.Error.
func (s *Service) GetTimeline(ctx context.Context, viewer domain.Viewer, key domain.HistoryKey) (*domain.Timeline, error) {
	if err := s.validator.Struct(key); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHistoryKey, err)
	}

	timeline := &domain.Timeline{Key: key, Entries: []*domain.TimelineEntry{}}

	records, err := s.client.ListDecisionHistory(ctx, viewer, key)
	if err != nil {
		s.logger.Warn(ctx, "failed to fetch decision history", "content_type", key.ContentType, "object_id", key.ObjectID, "error", err)
		timeline.Error = err.Error()
		return timeline, nil
	}

	entries, err := s.decode(records)
	if err != nil {
		s.logger.Warn(ctx, "failed to decode decision history", "content_type", key.ContentType, "object_id", key.ObjectID, "error", err)
		timeline.Error = err.Error()
		return timeline, nil
	}

	timeline.Entries = linkOverrides(entries)
	return timeline, nil
}

func (s *Service) decode(records []domain.RawRecord) ([]*domain.TimelineEntry, error) {
	entries := make([]*domain.TimelineEntry, 0, len(records))
	for i, raw := range records {
		var rec decisionRecord
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook:       s.normalizer.DecodeHook(),
			WeaklyTypedInput: true,
			Result:           &rec,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(raw); err != nil {
			return nil, fmt.Errorf("decoding decision #%d: %w", i, err)
		}

		entries = append(entries, &domain.TimelineEntry{Decision: domain.Decision{
			ID:                        rec.ID,
			Action:                    domain.DecisionAction(strings.ToUpper(strings.TrimSpace(rec.Action))),
			DecisionMakerName:         rec.DecisionMakerName,
			HierarchyLevel:            rec.HierarchyLevel,
			ActingAsSubstituteForName: rec.ActingAsSubstituteForName,
			Reason:                    rec.Reason,
			IsOverride:                rec.IsOverride,
			OverriddenDecisionID:      rec.OverriddenDecisionID,
			DecisionDate:              rec.DecisionDate,
			IsImmutable:               rec.IsImmutable,
		}})
	}
	return entries, nil
}

// linkOverrides points every override at the decision it replaced. Superseded entries are
// left as they are; an override whose target is not in the log stays unlinked.
func linkOverrides(entries []*domain.TimelineEntry) []*domain.TimelineEntry {
	byID := make(map[string]*domain.Decision, len(entries))
	for _, e := range entries {
		if e.ID != "" {
			byID[e.ID] = &e.Decision
		}
	}
	for _, e := range entries {
		if e.OverriddenDecisionID == nil {
			continue
		}
		if superseded, ok := byID[*e.OverriddenDecisionID]; ok && superseded != &e.Decision {
			e.Supersedes = superseded
		}
	}
	return entries
}
