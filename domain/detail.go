package domain

// RequestDetail is what a viewer needs to decide on one request
type RequestDetail struct {
	Item           *InboxItem   `json:"item"`
	TimeLock       TimeLock     `json:"time_lock"`
	AllowedActions []ActionType `json:"allowed_actions"`
	History        *Timeline    `json:"history"`
}
