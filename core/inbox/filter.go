package inbox

import (
	"strings"

	"github.com/goto/workforce/domain"
)

// Filter keeps the items matching every criterion of f. Empty criteria match everything,
// except that POTENTIAL items are only kept when POTENTIAL or ALL is requested.
// Statuses are compared after folding display synonyms.
func Filter(items []*domain.InboxItem, f domain.InboxFilter) []*domain.InboxItem {
	status := domain.RequestStatus(strings.ToUpper(strings.TrimSpace(string(f.Status))))
	q := strings.ToLower(strings.TrimSpace(f.Q))

	filtered := []*domain.InboxItem{}
	for _, item := range items {
		if !matchSource(item, f.Source) {
			continue
		}
		if f.Type != "" && item.Type != f.Type {
			continue
		}
		if !matchStatus(item.Status, status) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(item.EmployeeName), q) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func matchSource(item *domain.InboxItem, source string) bool {
	switch source {
	case "", domain.InboxFilterSourceAll:
		return true
	case domain.InboxFilterSourceTeam:
		return item.Provenance == domain.ProvenanceDirect || item.Provenance == domain.ProvenanceIndirect
	case domain.InboxFilterSourceDirect:
		return item.Provenance == domain.ProvenanceDirect
	case domain.InboxFilterSourceIndirect:
		return item.Provenance == domain.ProvenanceIndirect
	case domain.InboxFilterSourceSubstitute:
		return item.Provenance == domain.ProvenanceSubstitute
	default:
		return false
	}
}

func matchStatus(itemStatus, wanted domain.RequestStatus) bool {
	switch wanted {
	case domain.InboxFilterStatusAll:
		return true
	case "":
		return itemStatus != domain.RequestStatusPotential
	default:
		return itemStatus.Fold() == wanted.Fold()
	}
}
