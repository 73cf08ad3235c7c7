package notifiers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/log"
	"github.com/goto/workforce/plugins/notifiers/lark"
)

type Client interface {
	Notify(context.Context, []domain.Notification) []error
}

const (
	ProviderTypeLark = "lark"
)

var (
	ErrInvalidProvider = errors.New("invalid notifier provider type")
	ErrInvalidConfig   = errors.New("invalid notifier config")
)

type Config struct {
	// Provider is empty when notifications are disabled
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=lark"`

	// lark
	Lark lark.LarkWorkspace `mapstructure:"lark"`

	// custom messages
	Messages domain.NotificationMessages `mapstructure:"messages"`
}

func NewClient(config *Config, logger log.Logger) (Client, error) {
	if config.Provider == ProviderTypeLark {
		if config.Lark.ClientID == "" || config.Lark.ClientSecret == "" {
			return nil, fmt.Errorf("%w: lark client_id and client_secret are required", ErrInvalidConfig)
		}
		larkConfig := &lark.Config{
			Workspace: config.Lark,
			Messages:  config.Messages,
		}
		httpClient := &http.Client{Timeout: 10 * time.Second}
		return lark.NewNotifier(larkConfig, httpClient, logger), nil
	}

	return nil, ErrInvalidProvider
}
