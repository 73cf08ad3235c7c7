package inbox

import (
	"sort"
	"time"

	"github.com/goto/workforce/core/provenance"
	"github.com/goto/workforce/domain"
)

// Sources are the normalized streams feeding one inbox. A failed stream is simply empty.
type Sources struct {
	Team        []*domain.Request
	History     []*domain.Request
	Substitute  []*domain.Request
	Authorities []*domain.SubstituteAuthority
}

// Merge folds the streams into one ordered item list.
//
// Team requests are authoritative for direct and indirect items. History entries are
// skipped when their key is already present. Substitute entries are deduplicated among
// themselves only; they keep hierarchy precedence when classified and are dropped when
// neither the hierarchy nor an authority granted to viewerID and valid at now covers them. Items are ordered by
// best date, newest first, ties keeping their merge order.
func Merge(src Sources, viewerID string, hierarchy *domain.Hierarchy, now time.Time) []*domain.InboxItem {
	h := hierarchy.WithLevelHints(src.Team)

	items := []*domain.InboxItem{}
	seen := map[domain.RequestKey]bool{}

	for _, r := range src.Team {
		if seen[r.Key()] {
			continue
		}
		seen[r.Key()] = true
		items = append(items, &domain.InboxItem{Request: r, Provenance: hierarchyProvenance(r, h), Source: domain.InboxSourceTeam})
	}

	for _, r := range src.History {
		if seen[r.Key()] {
			continue
		}
		seen[r.Key()] = true
		items = append(items, &domain.InboxItem{Request: r, Provenance: hierarchyProvenance(r, h), Source: domain.InboxSourceHistory})
	}

	seenSubstitute := map[domain.RequestKey]bool{}
	for _, r := range src.Substitute {
		if seenSubstitute[r.Key()] {
			continue
		}
		p, authority, visible := provenance.Classify(r, viewerID, h, src.Authorities, now)
		if !visible {
			continue
		}
		seenSubstitute[r.Key()] = true
		items = append(items, &domain.InboxItem{Request: r, Provenance: p, Source: domain.InboxSourceSubstitute, Authority: authority})
	}

	sortItems(items)
	return items
}

// hierarchyProvenance classifies items of the hierarchy-scoped streams. The backend already
// restricted them to the viewer's hierarchy, so anyone not known as a direct report is indirect.
func hierarchyProvenance(r *domain.Request, h *domain.Hierarchy) domain.Provenance {
	if h.IsDirect(r.EmployeeID) {
		return domain.ProvenanceDirect
	}
	return domain.ProvenanceIndirect
}

func sortItems(items []*domain.InboxItem) {
	order := make(map[*domain.InboxItem]int, len(items))
	for i, item := range items {
		order[item] = i
	}
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].SortDate(), items[j].SortDate()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return order[items[i]] < order[items[j]]
	})
}
