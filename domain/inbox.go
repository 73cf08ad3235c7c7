package domain

import "time"

// InboxSource names the backend stream an item was read from
type InboxSource string

const (
	InboxSourceTeam       InboxSource = "team_requests"
	InboxSourceHistory    InboxSource = "leave_team_history"
	InboxSourceSubstitute InboxSource = "substitute_pending"
	InboxSourceHierarchy  InboxSource = "hierarchy"
	InboxSourceDirect     InboxSource = "direct_fetch"
)

type InboxItem struct {
	*Request
	Provenance Provenance           `json:"provenance,omitempty"`
	Source     InboxSource          `json:"source"`
	Authority  *SubstituteAuthority `json:"substitute_authority,omitempty"`
}

type SourceError struct {
	Source  InboxSource `json:"source"`
	Message string      `json:"message"`
}

type Inbox struct {
	ViewerID     string         `json:"viewer_id"`
	Items        []*InboxItem   `json:"items"`
	SourceErrors []*SourceError `json:"source_errors,omitempty"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// IsDegraded reports whether at least one stream failed and the inbox may be incomplete
func (i *Inbox) IsDegraded() bool {
	return len(i.SourceErrors) > 0
}

func (i *Inbox) Find(key RequestKey) *InboxItem {
	for _, item := range i.Items {
		if item.Key() == key {
			return item
		}
	}
	return nil
}

const (
	InboxFilterSourceAll        = "all"
	InboxFilterSourceTeam       = "team"
	InboxFilterSourceDirect     = "direct"
	InboxFilterSourceIndirect   = "indirect"
	InboxFilterSourceSubstitute = "substitute"
)

type InboxFilter struct {
	Source string        `mapstructure:"source" validate:"omitempty,oneof=all team direct indirect substitute"`
	Type   RequestType   `mapstructure:"type" validate:"omitempty,oneof=LEAVE OVERTIME MEAL CARDLESS_ENTRY"`
	Status RequestStatus `mapstructure:"status" validate:"omitempty"`
	Q      string        `mapstructure:"q" validate:"omitempty"`
}

// InboxFilterStatusAll matches every status, POTENTIAL included
const InboxFilterStatusAll RequestStatus = "ALL"
