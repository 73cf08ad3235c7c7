package domain

const (
	NotificationTypePendingApprovalsReminder = "PendingApprovalsReminder"
)

type NotificationMessage struct {
	Type      string
	Variables map[string]interface{}
}

// Notification is a message for one recipient. User is the address the notifier delivers to.
type Notification struct {
	User    string
	Labels  map[string]string
	Message NotificationMessage
}

// NotificationMessages overrides the built-in templates per notification type
type NotificationMessages struct {
	PendingApprovalsReminder string `mapstructure:"pending_approvals_reminder"`
}
