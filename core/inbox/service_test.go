package inbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goto/workforce/core/inbox"
	"github.com/goto/workforce/core/inbox/mocks"
	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/log"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type serviceTestHelper struct {
	mockSource           *mocks.Source
	mockHierarchyService *mocks.HierarchyService
	service              *inbox.Service
	now                  time.Time
}

func newServiceTestHelper(t *testing.T) *serviceTestHelper {
	h := &serviceTestHelper{
		mockSource:           mocks.NewSource(t),
		mockHierarchyService: mocks.NewHierarchyService(t),
		now:                  time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC),
	}
	h.service = inbox.NewService(inbox.ServiceDeps{
		Source:           h.mockSource,
		HierarchyService: h.mockHierarchyService,
		Logger:           log.NewNoop(),
	})
	h.service.TimeNow = func() time.Time { return h.now }
	return h
}

type ServiceTestSuite struct {
	suite.Suite
	viewer domain.Viewer
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.viewer = domain.Viewer{ID: "mgr-1", Name: "Manager One"}
}

var (
	teamRecords = []domain.RawRecord{
		{"id": 11, "type": "LEAVE", "employee": map[string]interface{}{"id": "e1", "name": "Ayu"}, "level": "direct", "status": "PENDING", "start_date": "2024-05-20"},
		{"id": 12, "type": "overtime-request", "employee_id": "e2", "employee_name": "Budi", "level": "2", "status": "PENDING", "date": "2024-05-18"},
	}
	historyRecords = []domain.RawRecord{
		{"id": 11, "employee_id": "e1", "status": "APPROVED", "start_date": "2024-05-20"},
		{"id": 9, "employee_id": "e3", "employee_name": "Citra", "status": "APPROVED", "start_date": "2024-04-01"},
	}
	substitutePayload = &domain.SubstitutePendingPayload{
		Authorities: []domain.RawRecord{
			{"id": "a1", "principal_id": "absent", "principal_name": "Absent Manager", "valid_from": "2024-05-10", "valid_to": "2024-05-15"},
			{"id": "broken"},
		},
		LeaveRequests: []domain.RawRecord{
			{"id": 31, "employee_id": "x1", "employee_name": "Dewi", "manager_id": "absent", "status": "PENDING", "start_date": "2024-05-19"},
			{"id": 32, "employee_id": "x2", "manager_id": "stranger", "status": "PENDING", "start_date": "2024-05-19"},
		},
		OvertimeRequests: []domain.RawRecord{
			{"id": 41, "employee_id": "x3", "target_approver_id": "absent", "status": "PENDING", "date": "2024-05-17"},
		},
	}
)

func (s *ServiceTestSuite) TestAggregate() {
	s.Run("should merge every stream with provenance", func() {
		h := newServiceTestHelper(s.T())
		hierarchy := domain.NewHierarchy(s.viewer.ID)
		hierarchy.Direct["e1"] = true
		hierarchy.Extended["e1"] = true
		hierarchy.Extended["e3"] = true

		h.mockSource.EXPECT().ListTeamRequests(mock.Anything, s.viewer).Return(teamRecords, nil).Once()
		h.mockSource.EXPECT().ListLeaveTeamHistory(mock.Anything, s.viewer).Return(historyRecords, nil).Once()
		h.mockSource.EXPECT().ListSubstitutePending(mock.Anything, s.viewer).Return(substitutePayload, nil).Once()
		h.mockHierarchyService.EXPECT().Get(mock.Anything, s.viewer).Return(hierarchy, nil).Once()

		got, err := h.service.Aggregate(context.Background(), s.viewer)

		s.NoError(err)
		s.False(got.IsDegraded())
		s.Equal(s.viewer.ID, got.ViewerID)
		s.Equal(h.now, got.GeneratedAt)
		s.Equal([]string{"LEAVE/11", "LEAVE/31", "OVERTIME/12", "OVERTIME/41", "LEAVE/9"}, keysOf(got.Items))

		leave := got.Find(domain.RequestKey{Type: domain.RequestTypeLeave, ID: "11"})
		s.Equal(domain.RequestStatusPending, leave.Status)
		s.Equal(domain.ProvenanceDirect, leave.Provenance)
		s.Equal("Ayu", leave.EmployeeName)

		overtime := got.Find(domain.RequestKey{Type: domain.RequestTypeOvertime, ID: "12"})
		s.Equal(domain.ProvenanceIndirect, overtime.Provenance)

		substitute := got.Find(domain.RequestKey{Type: domain.RequestTypeLeave, ID: "31"})
		s.Equal(domain.ProvenanceSubstitute, substitute.Provenance)
		s.Equal("a1", substitute.Authority.ID)

		s.Nil(got.Find(domain.RequestKey{Type: domain.RequestTypeLeave, ID: "32"}))
		s.Equal(domain.ProvenanceSubstitute, got.Find(domain.RequestKey{Type: domain.RequestTypeOvertime, ID: "41"}).Provenance)
	})

	s.Run("should keep partial results when streams fail", func() {
		h := newServiceTestHelper(s.T())

		h.mockSource.EXPECT().ListTeamRequests(mock.Anything, s.viewer).Return(teamRecords, nil).Once()
		h.mockSource.EXPECT().ListLeaveTeamHistory(mock.Anything, s.viewer).Return(nil, errors.New("history down")).Once()
		h.mockSource.EXPECT().ListSubstitutePending(mock.Anything, s.viewer).Return(nil, errors.New("timeout")).Once()
		h.mockHierarchyService.EXPECT().Get(mock.Anything, s.viewer).Return(nil, errors.New("hierarchy down")).Once()

		got, err := h.service.Aggregate(context.Background(), s.viewer)

		s.NoError(err)
		s.True(got.IsDegraded())
		s.Equal([]*domain.SourceError{
			{Source: domain.InboxSourceHistory, Message: "history down"},
			{Source: domain.InboxSourceSubstitute, Message: "timeout"},
			{Source: domain.InboxSourceHierarchy, Message: "hierarchy down"},
		}, got.SourceErrors)
		s.Equal([]string{"LEAVE/11", "OVERTIME/12"}, keysOf(got.Items))
		s.Equal(domain.ProvenanceDirect, got.Items[0].Provenance)
		s.Equal(domain.ProvenanceIndirect, got.Items[1].Provenance)
	})

	s.Run("should return an empty inbox when every stream fails", func() {
		h := newServiceTestHelper(s.T())
		expectedErr := errors.New("unavailable")

		h.mockSource.EXPECT().ListTeamRequests(mock.Anything, s.viewer).Return(nil, expectedErr).Once()
		h.mockSource.EXPECT().ListLeaveTeamHistory(mock.Anything, s.viewer).Return(nil, expectedErr).Once()
		h.mockSource.EXPECT().ListSubstitutePending(mock.Anything, s.viewer).Return(nil, expectedErr).Once()
		h.mockHierarchyService.EXPECT().Get(mock.Anything, s.viewer).Return(nil, expectedErr).Once()

		got, err := h.service.Aggregate(context.Background(), s.viewer)

		s.NoError(err)
		s.Empty(got.Items)
		s.Len(got.SourceErrors, 4)
	})

	s.Run("should return error if viewer is empty", func() {
		h := newServiceTestHelper(s.T())

		got, err := h.service.Aggregate(context.Background(), domain.Viewer{})

		s.ErrorIs(err, inbox.ErrEmptyViewer)
		s.Nil(got)
	})

	s.Run("should return error if context is cancelled", func() {
		h := newServiceTestHelper(s.T())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		h.mockSource.EXPECT().ListTeamRequests(mock.Anything, s.viewer).Return(nil, context.Canceled).Once()
		h.mockSource.EXPECT().ListLeaveTeamHistory(mock.Anything, s.viewer).Return(nil, context.Canceled).Once()
		h.mockSource.EXPECT().ListSubstitutePending(mock.Anything, s.viewer).Return(nil, context.Canceled).Once()
		h.mockHierarchyService.EXPECT().Get(mock.Anything, s.viewer).Return(nil, context.Canceled).Once()

		got, err := h.service.Aggregate(ctx, s.viewer)

		s.ErrorIs(err, context.Canceled)
		s.Nil(got)
	})
}

func (s *ServiceTestSuite) TestList() {
	s.Run("should apply the filter to the merged inbox", func() {
		h := newServiceTestHelper(s.T())

		h.mockSource.EXPECT().ListTeamRequests(mock.Anything, s.viewer).Return(teamRecords, nil).Once()
		h.mockSource.EXPECT().ListLeaveTeamHistory(mock.Anything, s.viewer).Return(historyRecords, nil).Once()
		h.mockSource.EXPECT().ListSubstitutePending(mock.Anything, s.viewer).Return(substitutePayload, nil).Once()
		h.mockHierarchyService.EXPECT().Get(mock.Anything, s.viewer).Return(nil, errors.New("unavailable")).Once()

		got, err := h.service.List(context.Background(), s.viewer, domain.InboxFilter{Source: domain.InboxFilterSourceSubstitute})

		s.NoError(err)
		s.Equal([]string{"LEAVE/31", "OVERTIME/41"}, keysOf(got.Items))
		s.Len(got.SourceErrors, 1)
	})

	s.Run("should return error if filter is invalid", func() {
		h := newServiceTestHelper(s.T())

		got, err := h.service.List(context.Background(), s.viewer, domain.InboxFilter{Source: "everyone"})

		s.ErrorIs(err, inbox.ErrInvalidFilter)
		s.Nil(got)
	})
}

func (s *ServiceTestSuite) TestGet() {
	expectAll := func(h *serviceTestHelper) {
		h.mockSource.EXPECT().ListTeamRequests(mock.Anything, s.viewer).Return(teamRecords, nil).Once()
		h.mockSource.EXPECT().ListLeaveTeamHistory(mock.Anything, s.viewer).Return(nil, nil).Once()
		h.mockSource.EXPECT().ListSubstitutePending(mock.Anything, s.viewer).Return(nil, nil).Once()
		h.mockHierarchyService.EXPECT().Get(mock.Anything, s.viewer).Return(nil, nil).Once()
	}

	s.Run("should return the item with the given key", func() {
		h := newServiceTestHelper(s.T())
		expectAll(h)

		got, err := h.service.Get(context.Background(), s.viewer, domain.RequestKey{Type: domain.RequestTypeOvertime, ID: "12"})

		s.NoError(err)
		s.Equal("Budi", got.EmployeeName)
	})

	s.Run("should return not found for keys outside the inbox", func() {
		h := newServiceTestHelper(s.T())
		expectAll(h)

		got, err := h.service.Get(context.Background(), s.viewer, domain.RequestKey{Type: domain.RequestTypeMeal, ID: "12"})

		s.ErrorIs(err, inbox.ErrRequestNotFound)
		s.Nil(got)
	})
}
