package domain

import "time"

// Provenance tells why a request is in the viewer's inbox
type Provenance string

const (
	ProvenanceDirect     Provenance = "DIRECT"
	ProvenanceIndirect   Provenance = "INDIRECT"
	ProvenanceSubstitute Provenance = "SUBSTITUTE"
)

// SubstituteAuthority is a time-bounded delegation of a manager's (principal) approval rights to an agent
type SubstituteAuthority struct {
	ID            string    `json:"id" mapstructure:"id"`
	PrincipalID   string    `json:"principal_id" mapstructure:"principal_id"`
	PrincipalName string    `json:"principal_name,omitempty" mapstructure:"principal_name"`
	AgentID       string    `json:"agent_id" mapstructure:"agent_id"`
	AgentName     string    `json:"agent_name,omitempty" mapstructure:"agent_name"`
	ValidFrom     time.Time `json:"valid_from" mapstructure:"valid_from"`
	ValidTo       time.Time `json:"valid_to" mapstructure:"valid_to"`
}

// IsValidAt reports whether now falls within [ValidFrom, ValidTo], both ends inclusive
func (a *SubstituteAuthority) IsValidAt(now time.Time) bool {
	if a == nil {
		return false
	}
	return !now.Before(a.ValidFrom) && !now.After(a.ValidTo)
}

const LevelDirect = "direct"

// Hierarchy holds the viewer's subordinates. Extended contains every employee
// below the viewer and may include direct reports too.
type Hierarchy struct {
	ViewerID string          `json:"viewer_id"`
	Direct   map[string]bool `json:"direct"`
	Extended map[string]bool `json:"extended"`
}

func NewHierarchy(viewerID string) *Hierarchy {
	return &Hierarchy{
		ViewerID: viewerID,
		Direct:   map[string]bool{},
		Extended: map[string]bool{},
	}
}

func (h *Hierarchy) IsDirect(employeeID string) bool {
	return h != nil && employeeID != "" && h.Direct[employeeID]
}

func (h *Hierarchy) IsExtended(employeeID string) bool {
	return h != nil && employeeID != "" && h.Extended[employeeID]
}

// Clone returns a deep copy so cached hierarchies are never mutated by callers
func (h *Hierarchy) Clone() *Hierarchy {
	if h == nil {
		return nil
	}
	c := NewHierarchy(h.ViewerID)
	for id := range h.Direct {
		c.Direct[id] = true
	}
	for id := range h.Extended {
		c.Extended[id] = true
	}
	return c
}

type Viewer struct {
	ID          string `json:"id" mapstructure:"id" validate:"required"`
	Name        string `json:"name,omitempty" mapstructure:"name"`
	CanOverride bool   `json:"can_override" mapstructure:"can_override"`
}

// WithLevelHints returns a copy of h extended with the level hint every team request
// carries: "direct" (or level 1) marks a direct report, anything else the extended hierarchy.
func (h *Hierarchy) WithLevelHints(requests []*Request) *Hierarchy {
	merged := h.Clone()
	if merged == nil {
		merged = NewHierarchy("")
	}
	for _, r := range requests {
		if r.EmployeeID == "" || r.Level == "" {
			continue
		}
		if r.Level == LevelDirect || r.Level == "1" {
			merged.Direct[r.EmployeeID] = true
		}
		merged.Extended[r.EmployeeID] = true
	}
	return merged
}
