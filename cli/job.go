package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/go-playground/validator/v10"
	"github.com/goto/workforce/jobs"
	"github.com/spf13/cobra"
)

func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "job",
		Aliases: []string{"jobs"},
		Short:   "Manage jobs",
		Example: heredoc.Doc(`
			$ workforce job run pending_approvals_reminder
		`),
	}

	cmd.AddCommand(
		runJobCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

func runJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fire a specific job",
		Example: heredoc.Doc(`
			$ workforce job run pending_approvals_reminder
		`),
		Args: cobra.ExactValidArgs(1),
		ValidArgs: []string{
			string(jobs.TypePendingApprovalsReminder),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			services, logger, err := initServices(cmd, false)
			if err != nil {
				return err
			}
			defer services.Close()

			handler := jobs.NewHandler(
				logger,
				services.InboxService,
				services.Notifier,
				validator.New(),
			)

			jobsMap := map[jobs.Type]func(context.Context, jobs.Config) error{
				jobs.TypePendingApprovalsReminder: handler.PendingApprovalsReminder,
			}

			jobName := jobs.Type(args[0])
			job := jobsMap[jobName]
			if job == nil {
				return fmt.Errorf("invalid job name: %s", jobName)
			}
			jobConfig := services.Config.Jobs[jobName].Config
			if err := job(cmd.Context(), jobConfig); err != nil {
				return fmt.Errorf(`failed to run job "%s": %w`, jobName, err)
			}

			return nil
		},
	}

	return cmd
}
