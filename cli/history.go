package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the decision history of a request",
		Example: heredoc.Doc(`
			$ workforce history --viewer 7 --type leave --id 11
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			viewer, err := getViewer(cmd)
			if err != nil {
				return err
			}
			key, err := getRequestKey(cmd)
			if err != nil {
				return err
			}

			services, _, err := initServices(cmd, false)
			if err != nil {
				return err
			}
			defer services.Close()

			timeline, err := services.HistoryService.GetTimeline(cmd.Context(), viewer, key.HistoryKey())
			if err != nil {
				return err
			}
			return printOutput(cmd, timeline)
		},
	}

	addViewerFlags(cmd)
	addRequestKeyFlags(cmd)
	addFormatFlag(cmd)
	cmd.Flags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkFlagFilename("config")
	return cmd
}
