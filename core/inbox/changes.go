package inbox

import (
	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/diff"
)

type itemSnapshot struct {
	Status     domain.RequestStatus `json:"status"`
	Provenance domain.Provenance    `json:"provenance,omitempty"`
}

func snapshot(in *domain.Inbox) map[string]itemSnapshot {
	s := map[string]itemSnapshot{}
	if in == nil {
		return s
	}
	for _, item := range in.Items {
		s[item.Key().String()] = itemSnapshot{Status: item.Status, Provenance: item.Provenance}
	}
	return s
}

// Changes lists the items that appeared, disappeared, or changed status or provenance
// between two refreshes, keyed by request key and ordered by it.
func Changes(prev, next *domain.Inbox) ([]*diff.Change, error) {
	return diff.Snapshots(snapshot(prev), snapshot(next))
}
