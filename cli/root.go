package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "workforce <command> <subcommand> [flags]",
		Short:         "Approval inbox for leave, overtime, meal and cardless entry requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: heredoc.Doc(`
			$ workforce server start -c ./config.yaml
			$ workforce inbox list --viewer 7 --status pending
			$ workforce inbox act --viewer 7 --type leave --id 11 --action approve
		`),
	}

	cmd.AddCommand(
		ServerCmd(),
		InboxCmd(),
		HistoryCmd(),
		JobCmd(),
	)

	return cmd
}
