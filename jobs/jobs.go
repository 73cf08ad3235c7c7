package jobs

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/log"
	"github.com/mitchellh/mapstructure"
)

type Type string

const (
	TypePendingApprovalsReminder Type = "pending_approvals_reminder"
)

type Job struct {
	Enabled  bool   `mapstructure:"enabled"`
	Interval string `mapstructure:"interval"`
	Config   Config `mapstructure:"config"`
}

// Config is the raw, job specific configuration
type Config map[string]interface{}

func (c Config) Decode(v interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(c)
}

//go:generate mockery --name=inboxService --exported --with-expecter
type inboxService interface {
	Aggregate(ctx context.Context, viewer domain.Viewer) (*domain.Inbox, error)
}

//go:generate mockery --name=notifier --exported --with-expecter
type notifier interface {
	Notify(context.Context, []domain.Notification) []error
}

type handler struct {
	logger       log.Logger
	inboxService inboxService
	notifier     notifier
	validator    *validator.Validate
}

// NewHandler creates the job handler. notifier may be nil, reminders are then only logged.
func NewHandler(
	logger log.Logger,
	inboxService inboxService,
	notifier notifier,
	validator *validator.Validate,
) *handler {
	return &handler{
		logger:       logger,
		inboxService: inboxService,
		notifier:     notifier,
		validator:    validator,
	}
}
