package domain

import "time"

type LockSource string

const (
	LockSourceNone     LockSource = ""
	LockSourceExplicit LockSource = "lock_date"
	LockSourceFallback LockSource = "fallback_period"
	LockSourceBackend  LockSource = "is_immutable"
)

type TimeLock struct {
	IsLocked      bool       `json:"is_locked"`
	LockDate      *time.Time `json:"lock_date,omitempty"`
	DaysUntilLock int        `json:"days_until_lock"`
	Source        LockSource `json:"source,omitempty"`
}
