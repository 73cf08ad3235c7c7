package inbox_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/goto/workforce/core/inbox"
	"github.com/goto/workforce/domain"
	"github.com/stretchr/testify/assert"
)

func day(d int) *time.Time {
	t := time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func keysOf(items []*domain.InboxItem) []string {
	keys := []string{}
	for _, item := range items {
		keys = append(keys, item.Key().String())
	}
	return keys
}

func TestMerge(t *testing.T) {
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	authority := &domain.SubstituteAuthority{
		ID:          "a1",
		PrincipalID: "absent-manager",
		ValidFrom:   now.AddDate(0, 0, -3),
		ValidTo:     now.AddDate(0, 0, 3),
	}

	t.Run("team requests are authoritative and history skips known keys", func(t *testing.T) {
		src := inbox.Sources{
			Team: []*domain.Request{
				{Type: domain.RequestTypeLeave, ID: "1", EmployeeID: "e1", Level: "direct", Status: domain.RequestStatusPending, StartDate: day(10)},
				{Type: domain.RequestTypeOvertime, ID: "1", EmployeeID: "e2", Level: "indirect", Status: domain.RequestStatusPending, Date: day(9)},
			},
			History: []*domain.Request{
				{Type: domain.RequestTypeLeave, ID: "1", EmployeeID: "e1", Status: domain.RequestStatusApproved, StartDate: day(10)},
				{Type: domain.RequestTypeLeave, ID: "2", EmployeeID: "e3", Status: domain.RequestStatusApproved, StartDate: day(1)},
			},
		}

		items := inbox.Merge(src, "boss", nil, now)

		assert.Equal(t, []string{"LEAVE/1", "OVERTIME/1", "LEAVE/2"}, keysOf(items))
		assert.Equal(t, domain.RequestStatusPending, items[0].Status)
		assert.Equal(t, domain.InboxSourceTeam, items[0].Source)
		assert.Equal(t, domain.ProvenanceDirect, items[0].Provenance)
		assert.Equal(t, domain.ProvenanceIndirect, items[1].Provenance)
		assert.Equal(t, domain.InboxSourceHistory, items[2].Source)
		assert.Equal(t, domain.ProvenanceIndirect, items[2].Provenance)
	})

	t.Run("hierarchy marks history entries from direct reports", func(t *testing.T) {
		h := domain.NewHierarchy("boss")
		h.Direct["e3"] = true

		items := inbox.Merge(inbox.Sources{
			History: []*domain.Request{{Type: domain.RequestTypeLeave, ID: "2", EmployeeID: "e3"}},
		}, "boss", h, now)

		assert.Equal(t, domain.ProvenanceDirect, items[0].Provenance)
	})

	t.Run("substitute entries are deduplicated among themselves only", func(t *testing.T) {
		src := inbox.Sources{
			Team: []*domain.Request{
				{Type: domain.RequestTypeLeave, ID: "7", EmployeeID: "e1", Level: "direct", StartDate: day(7)},
			},
			Substitute: []*domain.Request{
				{Type: domain.RequestTypeLeave, ID: "8", EmployeeID: "x1", OwnerManagerID: "absent-manager", StartDate: day(8)},
				{Type: domain.RequestTypeLeave, ID: "8", EmployeeID: "x1", OwnerManagerID: "absent-manager", StartDate: day(8)},
				{Type: domain.RequestTypeOvertime, ID: "8", EmployeeID: "x2", OwnerManagerID: "absent-manager", Date: day(6)},
			},
			Authorities: []*domain.SubstituteAuthority{authority},
		}

		items := inbox.Merge(src, "boss", nil, now)

		assert.Equal(t, []string{"LEAVE/8", "LEAVE/7", "OVERTIME/8"}, keysOf(items))
		assert.Equal(t, domain.ProvenanceSubstitute, items[0].Provenance)
		assert.Equal(t, authority, items[0].Authority)
		assert.Equal(t, domain.InboxSourceSubstitute, items[0].Source)
	})

	t.Run("substitute entries without a valid authority are dropped", func(t *testing.T) {
		expired := &domain.SubstituteAuthority{ID: "a2", PrincipalID: "gone", ValidFrom: now.AddDate(0, 0, -9), ValidTo: now.AddDate(0, 0, -1)}
		src := inbox.Sources{
			Substitute: []*domain.Request{
				{Type: domain.RequestTypeLeave, ID: "1", EmployeeID: "x", OwnerManagerID: "gone"},
				{Type: domain.RequestTypeLeave, ID: "2", EmployeeID: "y", OwnerManagerID: "nobody"},
			},
			Authorities: []*domain.SubstituteAuthority{expired},
		}

		assert.Empty(t, inbox.Merge(src, "boss", nil, now))
	})

	t.Run("substitute entries covered by another agent's authority are dropped", func(t *testing.T) {
		delegated := &domain.SubstituteAuthority{
			ID:          "a3",
			PrincipalID: "absent-manager",
			AgentID:     "someone-else",
			ValidFrom:   now.AddDate(0, 0, -3),
			ValidTo:     now.AddDate(0, 0, 3),
		}
		src := inbox.Sources{
			Substitute:  []*domain.Request{{Type: domain.RequestTypeLeave, ID: "9", EmployeeID: "x1", OwnerManagerID: "absent-manager"}},
			Authorities: []*domain.SubstituteAuthority{delegated},
		}

		assert.Empty(t, inbox.Merge(src, "boss", nil, now))
		assert.Len(t, inbox.Merge(src, "someone-else", nil, now), 1)
	})

	t.Run("hierarchy wins over substitute authority", func(t *testing.T) {
		h := domain.NewHierarchy("boss")
		h.Direct["x1"] = true
		src := inbox.Sources{
			Substitute:  []*domain.Request{{Type: domain.RequestTypeLeave, ID: "8", EmployeeID: "x1", OwnerManagerID: "absent-manager"}},
			Authorities: []*domain.SubstituteAuthority{authority},
		}

		items := inbox.Merge(src, "boss", h, now)

		assert.Equal(t, domain.ProvenanceDirect, items[0].Provenance)
		assert.Nil(t, items[0].Authority)
	})

	t.Run("sort is stable on equal dates and places undated items last", func(t *testing.T) {
		src := inbox.Sources{
			Team: []*domain.Request{
				{Type: domain.RequestTypeMeal, ID: "1", Date: day(3)},
				{Type: domain.RequestTypeMeal, ID: "2"},
				{Type: domain.RequestTypeMeal, ID: "3", Date: day(3)},
				{Type: domain.RequestTypeLeave, ID: "4", StartDate: day(3), Date: day(20)},
				{Type: domain.RequestTypeMeal, ID: "5", CreatedAt: day(4)},
			},
		}

		items := inbox.Merge(src, "boss", nil, now)

		want := []string{"MEAL/5", "MEAL/1", "MEAL/3", "LEAVE/4", "MEAL/2"}
		if diff := cmp.Diff(want, keysOf(items)); diff != "" {
			t.Errorf("unexpected order (-want +got):\n%s", diff)
		}
	})

	t.Run("failed streams contribute nothing", func(t *testing.T) {
		src := inbox.Sources{
			Team: []*domain.Request{{Type: domain.RequestTypeLeave, ID: "1", Level: "direct", EmployeeID: "e1"}},
		}

		items := inbox.Merge(src, "boss", nil, now)

		assert.Equal(t, []string{"LEAVE/1"}, keysOf(items))
	})
}
