package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/internal/server"
	"github.com/goto/workforce/pkg/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func loadConfig(cmd *cobra.Command) (*server.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("getting config flag value: %w", err)
	}
	cfg, err := server.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

func initServices(cmd *cobra.Command, withJournal bool) (*server.Services, log.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewCtxLogger(cfg.LogLevel, log.DefaultContextKeys)
	services, err := server.InitServices(server.ServiceDeps{
		Config:      cfg,
		Logger:      logger,
		Validator:   validator.New(),
		WithJournal: withJournal,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing services: %w", err)
	}
	return services, logger, nil
}

func addViewerFlags(cmd *cobra.Command) {
	cmd.Flags().String("viewer", "", "ID of the viewer acting on the inbox")
	cmd.Flags().String("viewer-name", "", "Display name of the viewer")
	cmd.Flags().Bool("can-override", false, "Viewer holds system-wide override authority")
	cmd.MarkFlagRequired("viewer")
}

func getViewer(cmd *cobra.Command) (domain.Viewer, error) {
	id, err := cmd.Flags().GetString("viewer")
	if err != nil {
		return domain.Viewer{}, err
	}
	name, err := cmd.Flags().GetString("viewer-name")
	if err != nil {
		return domain.Viewer{}, err
	}
	canOverride, err := cmd.Flags().GetBool("can-override")
	if err != nil {
		return domain.Viewer{}, err
	}
	return domain.Viewer{ID: id, Name: name, CanOverride: canOverride}, nil
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "o", formatYAML, "Output format: yaml or json")
}

func printOutput(cmd *cobra.Command, v interface{}) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	return encode(cmd.OutOrStdout(), format, v)
}

func encode(w io.Writer, format string, v interface{}) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		// json tags name the fields, so YAML goes through the JSON form
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var doc interface{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func parseRequestType(s string) (domain.RequestType, error) {
	t := domain.RequestType(strings.ToUpper(strings.ReplaceAll(s, "-", "_")))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown request type %q", s)
	}
	return t, nil
}
