package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goto/workforce/core/inbox"
	"github.com/goto/workforce/domain"
)

var ErrAllRemindersFailed = errors.New("no reminder could be prepared")

type ReminderRecipient struct {
	domain.Viewer `mapstructure:",squash"`
	// Email is where the notifier delivers the reminder; without it the reminder is only logged
	Email string `mapstructure:"email" validate:"omitempty,email"`
}

type PendingApprovalsReminderConfig struct {
	Viewers []ReminderRecipient `mapstructure:"viewers" validate:"required,min=1,dive"`
}

// Reminder is the pending approvals count of one viewer
type Reminder struct {
	ViewerID     string
	ViewerName   string
	Email        string
	PendingCount int
	Summary      *domain.SummaryResult
	Degraded     bool
}

func (r *Reminder) notification() domain.Notification {
	counts := make([]string, 0, len(r.Summary.SummaryGroups))
	for _, g := range r.Summary.SummaryGroups {
		counts = append(counts, fmt.Sprintf("%v: %d", g.GroupFields[domain.SummaryGroupByType], g.Total))
	}
	name := r.ViewerName
	if name == "" {
		name = r.ViewerID
	}
	return domain.Notification{
		User:   r.Email,
		Labels: map[string]string{"viewer_id": r.ViewerID},
		Message: domain.NotificationMessage{
			Type: domain.NotificationTypePendingApprovalsReminder,
			Variables: map[string]interface{}{
				"viewer_id":               r.ViewerID,
				"viewer_name":             name,
				"pending_approvals_count": r.PendingCount,
				"summary":                 strings.Join(counts, ", "),
				"degraded":                r.Degraded,
			},
		},
	}
}

func (h *handler) PendingApprovalsReminder(ctx context.Context, c Config) error {
	reminders, err := h.pendingApprovalsReminders(ctx, c)
	if err != nil {
		return err
	}
	h.sendReminders(ctx, reminders)
	return nil
}

func (h *handler) pendingApprovalsReminders(ctx context.Context, c Config) ([]*Reminder, error) {
	h.logger.Info(ctx, fmt.Sprintf("starting %q job", TypePendingApprovalsReminder))

	var cfg PendingApprovalsReminderConfig
	if err := c.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config for %s job: %w", TypePendingApprovalsReminder, err)
	}
	if err := h.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config for %s job: %w", TypePendingApprovalsReminder, err)
	}

	var (
		reminders []*Reminder
		failures  int
	)
	for _, recipient := range cfg.Viewers {
		viewer := recipient.Viewer
		result, err := h.inboxService.Aggregate(ctx, viewer)
		if err != nil {
			h.logger.Error(ctx, "failed to aggregate inbox", "viewer_id", viewer.ID, "error", err)
			failures++
			continue
		}
		if result.IsDegraded() {
			for _, se := range result.SourceErrors {
				h.logger.Warn(ctx, "inbox source unavailable, count may be incomplete", "viewer_id", viewer.ID, "source", se.Source, "error", se.Message)
			}
		}

		pending := inbox.Filter(result.Items, domain.InboxFilter{Status: domain.RequestStatusPending})
		actionable := make([]*domain.InboxItem, 0, len(pending))
		for _, item := range pending {
			if item.Provenance != "" {
				actionable = append(actionable, item)
			}
		}
		if len(actionable) == 0 {
			continue
		}

		r := &Reminder{
			ViewerID:     viewer.ID,
			ViewerName:   viewer.Name,
			Email:        recipient.Email,
			PendingCount: len(actionable),
			Summary:      inbox.Summarize(actionable, domain.SummaryGroupByType),
			Degraded:     result.IsDegraded(),
		}
		reminders = append(reminders, r)
		h.logger.Info(ctx, "pending approvals reminder", "viewer_id", r.ViewerID, "pending_approvals_count", r.PendingCount, "degraded", r.Degraded)
	}

	if failures == len(cfg.Viewers) {
		return nil, ErrAllRemindersFailed
	}
	h.logger.Info(ctx, "pending approvals reminders prepared", "count", len(reminders))
	return reminders, nil
}

// sendReminders delivers reminders of viewers with an email. Delivery failures are logged only.
func (h *handler) sendReminders(ctx context.Context, reminders []*Reminder) {
	if h.notifier == nil {
		return
	}

	var notifications []domain.Notification
	for _, r := range reminders {
		if r.Email == "" {
			continue
		}
		notifications = append(notifications, r.notification())
	}
	if len(notifications) == 0 {
		return
	}

	errs := h.notifier.Notify(ctx, notifications)
	for _, err := range errs {
		h.logger.Error(ctx, "failed to send pending approvals reminder", "error", err)
	}
	h.logger.Info(ctx, "pending approvals reminders sent", "count", len(notifications)-len(errs))
}
