package domain

import (
	"fmt"
	"time"
)

type RequestType string

const (
	RequestTypeLeave         RequestType = "LEAVE"
	RequestTypeOvertime      RequestType = "OVERTIME"
	RequestTypeMeal          RequestType = "MEAL"
	RequestTypeCardlessEntry RequestType = "CARDLESS_ENTRY"
)

var RequestTypes = []RequestType{
	RequestTypeLeave,
	RequestTypeOvertime,
	RequestTypeMeal,
	RequestTypeCardlessEntry,
}

var (
	requestTypeResourcePaths = map[RequestType]string{
		RequestTypeLeave:         "/leave/requests",
		RequestTypeOvertime:      "/overtime-requests",
		RequestTypeMeal:          "/meal-requests",
		RequestTypeCardlessEntry: "/cardless-entry-requests",
	}
	requestTypeContentTypes = map[RequestType]string{
		RequestTypeLeave:         "leaverequest",
		RequestTypeOvertime:      "overtimerequest",
		RequestTypeMeal:          "mealrequest",
		RequestTypeCardlessEntry: "cardlessentryrequest",
	}
)

func (t RequestType) IsValid() bool {
	_, ok := requestTypeResourcePaths[t]
	return ok
}

// ResourcePath is the backend collection path of the request type, without trailing slash
func (t RequestType) ResourcePath() string {
	return requestTypeResourcePaths[t]
}

// ContentType is the name the backend decision log uses for the request type
func (t RequestType) ContentType() string {
	return requestTypeContentTypes[t]
}

func RequestTypeFromContentType(contentType string) (RequestType, bool) {
	for t, ct := range requestTypeContentTypes {
		if ct == contentType {
			return t, true
		}
	}
	return "", false
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusApproved  RequestStatus = "APPROVED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
	RequestStatusOrdered   RequestStatus = "ORDERED"
	RequestStatusPotential RequestStatus = "POTENTIAL"
)

var requestStatusSynonyms = map[RequestStatus]RequestStatus{
	RequestStatusOrdered:   RequestStatusApproved,
	RequestStatusCancelled: RequestStatusRejected,
}

func (s RequestStatus) IsKnown() bool {
	switch s {
	case RequestStatusPending,
		RequestStatusApproved,
		RequestStatusRejected,
		RequestStatusCancelled,
		RequestStatusOrdered,
		RequestStatusPotential:
		return true
	}
	return false
}

// Fold maps display synonyms onto the status they are filtered as.
// ORDERED reads as APPROVED and CANCELLED as REJECTED.
func (s RequestStatus) Fold() RequestStatus {
	if folded, ok := requestStatusSynonyms[s]; ok {
		return folded
	}
	return s
}

type RequestKey struct {
	Type RequestType `json:"type" mapstructure:"type" validate:"required"`
	ID   string      `json:"id" mapstructure:"id" validate:"required"`
}

func (k RequestKey) String() string {
	return fmt.Sprintf("%s/%s", k.Type, k.ID)
}

func (k RequestKey) HistoryKey() HistoryKey {
	return HistoryKey{ContentType: k.Type.ContentType(), ObjectID: k.ID}
}

// Request is the normalized view of a leave, overtime, meal or cardless entry record
type Request struct {
	Type RequestType `json:"type" yaml:"type"`
	ID   string      `json:"id" yaml:"id"`

	EmployeeID         string `json:"employee_id" yaml:"employee_id"`
	EmployeeName       string `json:"employee_name" yaml:"employee_name"`
	EmployeeDepartment string `json:"employee_department,omitempty" yaml:"employee_department,omitempty"`
	OwnerManagerID     string `json:"owner_manager_id,omitempty" yaml:"owner_manager_id,omitempty"`
	Level              string `json:"level,omitempty" yaml:"level,omitempty"`

	Status             RequestStatus `json:"status" yaml:"status"`
	TargetApproverID   string        `json:"target_approver_id,omitempty" yaml:"target_approver_id,omitempty"`
	TargetApproverName string        `json:"target_approver_name,omitempty" yaml:"target_approver_name,omitempty"`
	ApprovedByName     string        `json:"approved_by_name,omitempty" yaml:"approved_by_name,omitempty"`
	ApprovedAt         *time.Time    `json:"approved_at,omitempty" yaml:"approved_at,omitempty"`
	RejectionReason    string        `json:"rejection_reason,omitempty" yaml:"rejection_reason,omitempty"`
	Reason             string        `json:"reason,omitempty" yaml:"reason,omitempty"`

	IsImmutable bool       `json:"is_immutable" yaml:"is_immutable"`
	LockDate    *time.Time `json:"lock_date,omitempty" yaml:"lock_date,omitempty"`

	StartDate *time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Date      *time.Time `json:"date,omitempty" yaml:"date,omitempty"`
	StartTime string     `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   string     `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

func (r *Request) Key() RequestKey {
	return RequestKey{Type: r.Type, ID: r.ID}
}

// EventDate returns the date the request is about: start_date, then date
func (r *Request) EventDate() *time.Time {
	if r.StartDate != nil {
		return r.StartDate
	}
	return r.Date
}

// SortDate returns the best date for ordering: start_date, then date, then created_at.
// Zero time when none is present.
func (r *Request) SortDate() time.Time {
	if d := r.EventDate(); d != nil {
		return *d
	}
	if r.CreatedAt != nil {
		return *r.CreatedAt
	}
	return time.Time{}
}

// RawRecord is one JSON object as returned by the backend
type RawRecord = map[string]interface{}

type SubstitutePendingPayload struct {
	Authorities      []RawRecord `json:"authorities" mapstructure:"authorities"`
	LeaveRequests    []RawRecord `json:"leave_requests" mapstructure:"leave_requests"`
	OvertimeRequests []RawRecord `json:"overtime_requests" mapstructure:"overtime_requests"`
}
