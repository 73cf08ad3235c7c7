package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/workforce/core/inbox"
	"github.com/goto/workforce/domain"
	"github.com/spf13/cobra"
)

func InboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Read and act on a viewer's approval inbox",
		Example: heredoc.Doc(`
			$ workforce inbox list --viewer 7
			$ workforce inbox list --viewer 7 --source substitute --status all -o json
			$ workforce inbox watch --viewer 7 --interval 1m
			$ workforce inbox view --viewer 7 --type overtime --id 41
			$ workforce inbox act --viewer 7 --type leave --id 11 --action reject --reason "team offsite"
		`),
	}

	cmd.AddCommand(
		listInboxCmd(),
		watchInboxCmd(),
		viewRequestCmd(),
		actCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "", "Filter by provenance: all, team, direct, indirect or substitute")
	cmd.Flags().String("type", "", "Filter by request type: leave, overtime, meal or cardless_entry")
	cmd.Flags().String("status", "", "Filter by status, ALL includes potential requests")
	cmd.Flags().StringP("query", "q", "", "Filter by employee name")
}

func getFilter(cmd *cobra.Command) (domain.InboxFilter, error) {
	var f domain.InboxFilter
	source, _ := cmd.Flags().GetString("source")
	typ, _ := cmd.Flags().GetString("type")
	status, _ := cmd.Flags().GetString("status")
	q, _ := cmd.Flags().GetString("query")

	f.Source = source
	f.Status = domain.RequestStatus(status)
	f.Q = q
	if typ != "" {
		t, err := parseRequestType(typ)
		if err != nil {
			return f, err
		}
		f.Type = t
	}
	return f, nil
}

type inboxOutput struct {
	*domain.Inbox
	Summary *domain.SummaryResult `json:"summary"`
}

func listInboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the viewer's inbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			viewer, err := getViewer(cmd)
			if err != nil {
				return err
			}
			filter, err := getFilter(cmd)
			if err != nil {
				return err
			}

			services, _, err := initServices(cmd, false)
			if err != nil {
				return err
			}
			defer services.Close()

			result, err := services.InboxService.List(cmd.Context(), viewer, filter)
			if err != nil {
				return err
			}
			return printOutput(cmd, inboxOutput{Inbox: result, Summary: inbox.Summarize(result.Items)})
		},
	}

	addViewerFlags(cmd)
	addFilterFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}

func watchInboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the viewer's inbox and print a summary on every refresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			viewer, err := getViewer(cmd)
			if err != nil {
				return err
			}
			filter, err := getFilter(cmd)
			if err != nil {
				return err
			}

			services, logger, err := initServices(cmd, false)
			if err != nil {
				return err
			}
			defer services.Close()

			interval, _ := cmd.Flags().GetDuration("interval")
			if interval <= 0 {
				interval = services.Config.Inbox.PollInterval
			}

			view := inbox.NewView(services.InboxService)
			defer view.Close()

			poller := inbox.NewPoller(interval, func(ctx context.Context) error {
				prev := view.Current()
				result, err := view.Refresh(ctx, viewer, filter)
				if err != nil {
					return err
				}
				summary := inbox.Summarize(result.Items)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %d item(s)", result.GeneratedAt.Format("15:04:05"), summary.Total)
				for _, g := range summary.SummaryGroups {
					fmt.Fprintf(cmd.OutOrStdout(), "  %v=%d", g.GroupFields[domain.SummaryGroupByProvenance], g.Total)
				}
				for _, se := range result.SourceErrors {
					fmt.Fprintf(cmd.OutOrStdout(), "  [%s unavailable]", se.Source)
				}
				fmt.Fprintln(cmd.OutOrStdout())

				if prev == nil {
					return nil
				}
				changes, err := inbox.Changes(prev, result)
				if err != nil {
					logger.Warn(ctx, "failed to compare inbox refreshes", "error", err)
					return nil
				}
				for _, c := range changes {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-7s %s", c.Op, c.Path())
					if c.Op == "replace" {
						fmt.Fprintf(cmd.OutOrStdout(), " %v -> %v", c.From, c.To)
					}
					fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			}, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	addViewerFlags(cmd)
	addFilterFlags(cmd)
	cmd.Flags().Duration("interval", 0, "Polling interval, defaults to inbox.poll_interval")
	return cmd
}

func addRequestKeyFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "Request type: leave, overtime, meal or cardless_entry")
	cmd.Flags().String("id", "", "Request ID")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("id")
}

func getRequestKey(cmd *cobra.Command) (domain.RequestKey, error) {
	typ, _ := cmd.Flags().GetString("type")
	id, _ := cmd.Flags().GetString("id")
	t, err := parseRequestType(typ)
	if err != nil {
		return domain.RequestKey{}, err
	}
	return domain.RequestKey{Type: t, ID: id}, nil
}

func viewRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show a request with its time lock, allowed actions and decision history",
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

			detail, err := services.DecisionService.Detail(cmd.Context(), viewer, key)
			if err != nil {
				return err
			}
			return printOutput(cmd, detail)
		},
	}

	addViewerFlags(cmd)
	addRequestKeyFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}

func actCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "act",
		Short: "Approve, reject, override or cancel a request",
		Example: heredoc.Doc(`
			$ workforce inbox act --viewer 7 --type overtime --id 41 --action approve
			$ workforce inbox act --viewer 1 --can-override --type leave --id 9 --action override --override-action approve --reason "payroll correction"
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
			action, _ := cmd.Flags().GetString("action")
			overrideAction, _ := cmd.Flags().GetString("override-action")
			reason, _ := cmd.Flags().GetString("reason")

			services, _, err := initServices(cmd, true)
			if err != nil {
				return err
			}
			defer services.Close()

			result, err := services.DecisionService.Act(cmd.Context(), viewer, domain.ActionCommand{
				Key:            key,
				Action:         domain.ActionType(action),
				OverrideAction: domain.ActionType(overrideAction),
				Reason:         reason,
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, result)
		},
	}

	addViewerFlags(cmd)
	addRequestKeyFlags(cmd)
	addFormatFlag(cmd)
	cmd.Flags().String("action", "", "approve, reject, override or cancel")
	cmd.Flags().String("override-action", "", "Outcome of an override: approve or reject")
	cmd.Flags().String("reason", "", "Reason, required for reject, override and cancel")
	cmd.MarkFlagRequired("action")
	return cmd
}
