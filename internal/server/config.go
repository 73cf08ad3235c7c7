package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goto/salt/config"
	"github.com/goto/workforce/core/timelock"
	"github.com/goto/workforce/internal/store"
	"github.com/goto/workforce/jobs"
	"github.com/goto/workforce/pkg/cache"
	httpclient "github.com/goto/workforce/pkg/http"
	"github.com/goto/workforce/pkg/opentelemetry"
	"github.com/goto/workforce/plugins/notifiers"
	"github.com/mcuadros/go-defaults"
)

// DefaultAuth reads the viewer identity from headers set by the upstream gateway
type DefaultAuth struct {
	UserIDHeaderKey   string `mapstructure:"user_id_header_key" default:"X-Auth-User-Id"`
	UserNameHeaderKey string `mapstructure:"user_name_header_key" default:"X-Auth-User-Name"`
	OverrideHeaderKey string `mapstructure:"override_header_key" default:"X-Auth-Override"`
}

type Auth struct {
	Default DefaultAuth `mapstructure:"default"`
}

type BackendConfig struct {
	HTTP httpclient.HTTPClientConfig `mapstructure:"http"`
	// ViewerHeaderKey carries the acting viewer's id on every backend call
	ViewerHeaderKey string `mapstructure:"viewer_header_key" default:"X-Auth-User-Id"`
}

type InboxConfig struct {
	TimeLock     timelock.Config `mapstructure:"time_lock"`
	PollInterval time.Duration   `mapstructure:"poll_interval" default:"30s"`
}

type JournalConfig struct {
	Enabled bool `mapstructure:"enabled" default:"true"`
}

type Config struct {
	Port      int                    `mapstructure:"port" default:"8080"`
	LogLevel  string                 `mapstructure:"log_level" default:"info"`
	Auth      Auth                   `mapstructure:"auth"`
	Backend   BackendConfig          `mapstructure:"backend"`
	Inbox     InboxConfig            `mapstructure:"inbox"`
	Cache     cache.Config           `mapstructure:"cache"`
	DB        store.Config           `mapstructure:"db"`
	Journal   JournalConfig          `mapstructure:"journal"`
	Notifier  notifiers.Config       `mapstructure:"notifier"`
	Jobs      map[jobs.Type]jobs.Job `mapstructure:"jobs"`
	Telemetry opentelemetry.Config   `mapstructure:"telemetry"`
}

func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	loader := config.NewLoader(config.WithFile(configFile))

	if err := loader.Load(&cfg); err != nil {
		if !errors.As(err, &config.ConfigFileNotFoundError{}) {
			return Config{}, err
		}
		fmt.Println(err)
		defaults.SetDefaults(&cfg)
	}

	v := validator.New()
	if err := v.Struct(cfg.Cache); err != nil {
		return Config{}, fmt.Errorf("invalid cache config: %w", err)
	}
	if err := v.Struct(cfg.Notifier); err != nil {
		return Config{}, fmt.Errorf("invalid notifier config: %w", err)
	}

	return cfg, nil
}
