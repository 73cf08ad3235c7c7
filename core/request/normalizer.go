package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goto/workforce/domain"
	"github.com/mcuadros/go-lookup"
	"github.com/mitchellh/mapstructure"
)

var ErrInvalidAuthority = errors.New("invalid substitute authority")

var typeCodes = map[string]domain.RequestType{
	"LEAVE":                  domain.RequestTypeLeave,
	"LEAVE_REQUEST":          domain.RequestTypeLeave,
	"LEAVEREQUEST":           domain.RequestTypeLeave,
	"OVERTIME":               domain.RequestTypeOvertime,
	"OVERTIME_REQUEST":       domain.RequestTypeOvertime,
	"OVERTIMEREQUEST":        domain.RequestTypeOvertime,
	"MEAL":                   domain.RequestTypeMeal,
	"MEAL_REQUEST":           domain.RequestTypeMeal,
	"MEALREQUEST":            domain.RequestTypeMeal,
	"CARDLESS":               domain.RequestTypeCardlessEntry,
	"CARDLESS_ENTRY":         domain.RequestTypeCardlessEntry,
	"CARDLESS_ENTRY_REQUEST": domain.RequestTypeCardlessEntry,
	"CARDLESSENTRYREQUEST":   domain.RequestTypeCardlessEntry,
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
}

const dateLayout = "2006-01-02"

// Normalizer maps raw backend records onto domain types. It never fails on
// missing or oddly shaped fields: absent values become zero values.
type Normalizer struct {
	location *time.Location
}

// NewNormalizer uses loc for timestamps and dates that carry no zone
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{location: loc}
}

// Normalize maps one record. resource is the type of the collection the record was
// read from and is used when the record itself carries no type code.
func (n *Normalizer) Normalize(raw domain.RawRecord, resource domain.RequestType) *domain.Request {
	r := &domain.Request{
		ID:                 lookupString(raw, idPaths...),
		Type:               NormalizeType(lookupString(raw, typePaths...)),
		EmployeeID:         lookupString(raw, employeeIDPaths...),
		EmployeeName:       lookupString(raw, employeeNamePaths...),
		EmployeeDepartment: lookupString(raw, departmentPaths...),
		Level:              strings.ToLower(lookupString(raw, levelPaths...)),
		Status:             NormalizeStatus(lookupString(raw, statusPaths...)),
		TargetApproverID:   lookupString(raw, targetApproverIDPaths...),
		TargetApproverName: lookupString(raw, targetApproverNamePaths...),
		ApprovedByName:     lookupString(raw, approvedByNamePaths...),
		ApprovedAt:         n.lookupTime(raw, approvedAtPaths...),
		RejectionReason:    lookupString(raw, rejectionReasonPaths...),
		Reason:             lookupString(raw, reasonPaths...),
		IsImmutable:        lookupBool(raw, immutablePaths...),
		LockDate:           n.lookupTime(raw, lockDatePaths...),
		StartDate:          n.lookupTime(raw, startDatePaths...),
		EndDate:            n.lookupTime(raw, endDatePaths...),
		Date:               n.lookupTime(raw, datePaths...),
		StartTime:          lookupString(raw, startTimePaths...),
		EndTime:            lookupString(raw, endTimePaths...),
		CreatedAt:          n.lookupTime(raw, createdAtPaths...),
	}
	if r.Type == "" {
		r.Type = resource
	}

	r.OwnerManagerID = lookupString(raw, ownerManagerPaths...)
	if r.OwnerManagerID == "" {
		r.OwnerManagerID = r.TargetApproverID
	}

	return r
}

func (n *Normalizer) NormalizeAll(records []domain.RawRecord, resource domain.RequestType) []*domain.Request {
	requests := make([]*domain.Request, 0, len(records))
	for _, raw := range records {
		requests = append(requests, n.Normalize(raw, resource))
	}
	return requests
}

// NormalizeAuthority maps a substitute authority record. Authorities without principal
// or validity window are rejected. A date-only valid_to covers the whole day.
func (n *Normalizer) NormalizeAuthority(raw domain.RawRecord) (*domain.SubstituteAuthority, error) {
	a := &domain.SubstituteAuthority{
		ID:            lookupString(raw, authorityIDPaths...),
		PrincipalID:   lookupString(raw, authorityPrincipalIDPaths...),
		PrincipalName: lookupString(raw, authorityPrincipalNamePaths...),
		AgentID:       lookupString(raw, authorityAgentIDPaths...),
		AgentName:     lookupString(raw, authorityAgentNamePaths...),
	}
	if a.PrincipalID == "" {
		return nil, fmt.Errorf("%w: missing principal", ErrInvalidAuthority)
	}

	validFrom, _, ok := n.ParseTime(lookupString(raw, authorityValidFromPaths...))
	if !ok {
		return nil, fmt.Errorf("%w: missing or invalid valid_from", ErrInvalidAuthority)
	}
	validTo, dateOnly, ok := n.ParseTime(lookupString(raw, authorityValidToPaths...))
	if !ok {
		return nil, fmt.Errorf("%w: missing or invalid valid_to", ErrInvalidAuthority)
	}
	if dateOnly {
		validTo = validTo.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	a.ValidFrom = validFrom
	a.ValidTo = validTo

	return a, nil
}

// ParseTime accepts RFC 3339 timestamps, naive timestamps and plain dates.
// dateOnly is true for plain dates.
func (n *Normalizer) ParseTime(s string) (t time.Time, dateOnly bool, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false
	}
	if t, err := time.ParseInLocation(dateLayout, s, n.location); err == nil {
		return t, true, true
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, n.location); err == nil {
			return t, false, true
		}
	}
	return time.Time{}, false, false
}

// DecodeHook converts backend date strings into time.Time for mapstructure decoding
func (n *Normalizer) DecodeHook() mapstructure.DecodeHookFuncType {
	timeType := reflect.TypeOf(time.Time{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != timeType || from.Kind() != reflect.String {
			return data, nil
		}
		t, _, ok := n.ParseTime(reflect.ValueOf(data).String())
		if !ok {
			return nil, fmt.Errorf("invalid time %q", data)
		}
		return t, nil
	}
}

func (n *Normalizer) lookupTime(raw domain.RawRecord, paths ...string) *time.Time {
	s := lookupString(raw, paths...)
	if s == "" {
		return nil
	}
	t, _, ok := n.ParseTime(s)
	if !ok {
		return nil
	}
	return &t
}

// NormalizeType folds backend type codes onto the canonical request types.
// Unknown codes map to "".
func NormalizeType(code string) domain.RequestType {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.NewReplacer("-", "_", " ", "_").Replace(code)
	return typeCodes[code]
}

// NormalizeStatus upper-cases known statuses; unknown values are kept verbatim
func NormalizeStatus(s string) domain.RequestStatus {
	upper := domain.RequestStatus(strings.ToUpper(strings.TrimSpace(s)))
	if upper.IsKnown() {
		return upper
	}
	return domain.RequestStatus(s)
}

func lookupString(raw domain.RawRecord, paths ...string) string {
	for _, path := range paths {
		v, ok := lookupValue(raw, path)
		if !ok {
			continue
		}
		if s := valueAsString(v); s != "" {
			return s
		}
	}
	return ""
}

func lookupBool(raw domain.RawRecord, paths ...string) bool {
	for _, path := range paths {
		v, ok := lookupValue(raw, path)
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if parsed, err := strconv.ParseBool(b); err == nil {
				return parsed
			}
		}
	}
	return false
}

func lookupValue(raw domain.RawRecord, path string) (value interface{}, ok bool) {
	if raw == nil {
		return nil, false
	}
	defer func() {
		if recover() != nil {
			value, ok = nil, false
		}
	}()

	v, err := lookup.LookupString(raw, path)
	if err != nil || !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	return v.Interface(), true
}

func valueAsString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
