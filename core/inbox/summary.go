package inbox

import (
	"fmt"
	"strings"

	"github.com/goto/workforce/domain"
)

var defaultSummaryGroupBys = []string{domain.SummaryGroupByProvenance}

// Summarize counts items per combination of the requested fields, groups in order of first appearance.
// Statuses are counted folded.
func Summarize(items []*domain.InboxItem, groupBys ...string) *domain.SummaryResult {
	if len(groupBys) == 0 {
		groupBys = defaultSummaryGroupBys
	}

	result := &domain.SummaryResult{
		AppliedParameters: &domain.SummaryParameters{GroupBys: groupBys},
		SummaryGroups:     []*domain.SummaryGroup{},
	}
	groups := map[string]*domain.SummaryGroup{}

	for _, item := range items {
		fields := make(map[string]any, len(groupBys))
		keyParts := make([]string, 0, len(groupBys))
		for _, g := range groupBys {
			v := groupValue(item, g)
			fields[g] = v
			keyParts = append(keyParts, fmt.Sprintf("%s=%s", g, v))
		}

		key := strings.Join(keyParts, ",")
		group, ok := groups[key]
		if !ok {
			group = &domain.SummaryGroup{GroupFields: fields}
			groups[key] = group
			result.SummaryGroups = append(result.SummaryGroups, group)
		}
		group.Total++
		result.Total++
	}

	return result
}

func groupValue(item *domain.InboxItem, groupBy string) string {
	switch groupBy {
	case domain.SummaryGroupByProvenance:
		return string(item.Provenance)
	case domain.SummaryGroupByType:
		return string(item.Type)
	case domain.SummaryGroupByStatus:
		return string(item.Status.Fold())
	default:
		return ""
	}
}
