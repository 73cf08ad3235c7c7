package provenance

import (
	"time"

	"github.com/goto/workforce/domain"
)

// Classify tells why req is visible to viewerID.
// Hierarchy membership takes precedence over substitute authority: a request from a
// direct report is DIRECT even when an authority also covers it. visible is false when
// nothing grants the viewer access; such requests must not reach the inbox.
func Classify(req *domain.Request, viewerID string, hierarchy *domain.Hierarchy, authorities []*domain.SubstituteAuthority, now time.Time) (p domain.Provenance, authority *domain.SubstituteAuthority, visible bool) {
	switch {
	case hierarchy.IsDirect(req.EmployeeID):
		return domain.ProvenanceDirect, nil, true
	case hierarchy.IsExtended(req.EmployeeID):
		return domain.ProvenanceIndirect, nil, true
	}

	if a := MatchAuthority(req, viewerID, authorities, now); a != nil {
		return domain.ProvenanceSubstitute, a, true
	}

	return "", nil, false
}

// MatchAuthority returns the first authority valid at now whose principal owns req and
// which was granted to viewerID. An authority without an agent applies to any viewer.
func MatchAuthority(req *domain.Request, viewerID string, authorities []*domain.SubstituteAuthority, now time.Time) *domain.SubstituteAuthority {
	if req.OwnerManagerID == "" {
		return nil
	}
	for _, a := range authorities {
		if a.PrincipalID != req.OwnerManagerID || !a.IsValidAt(now) {
			continue
		}
		if a.AgentID == "" || a.AgentID == viewerID {
			return a
		}
	}
	return nil
}
