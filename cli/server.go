package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/workforce/internal/server"
	"github.com/goto/workforce/internal/store/postgres"
	"github.com/spf13/cobra"
)

func ServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Server management",
		Example: heredoc.Doc(`
			$ workforce server start
			$ workforce server start -c ./config.yaml
			$ workforce server migrate
		`),
	}

	cmd.AddCommand(
		startCommand(),
		migrateCommand(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

func startCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return server.RunServer(cfg)
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the action journal schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store, err := postgres.NewStore(&cfg.DB)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer store.Close()

			version, err := store.Migrate()
			if err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "action journal schema at version %d\n", version)
			return nil
		},
	}
}
