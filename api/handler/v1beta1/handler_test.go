package v1beta1_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goto/workforce/api/handler/v1beta1"
	"github.com/goto/workforce/api/handler/v1beta1/mocks"
	"github.com/goto/workforce/core/decision"
	"github.com/goto/workforce/core/history"
	"github.com/goto/workforce/core/inbox"
	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/log"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite

	inboxService    *mocks.InboxService
	decisionService *mocks.DecisionService
	historyService  *mocks.HistoryService
	journalRepo     *mocks.JournalRepository
	mux             *runtime.ServeMux

	viewer domain.Viewer
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) setup() {
	s.inboxService = new(mocks.InboxService)
	s.decisionService = new(mocks.DecisionService)
	s.historyService = new(mocks.HistoryService)
	s.journalRepo = new(mocks.JournalRepository)
	s.viewer = domain.Viewer{ID: "mgr-1", Name: "Manager One"}

	h := v1beta1.NewHandler(s.inboxService, s.decisionService, s.historyService, log.NewNoop(), v1beta1.WithJournalRepository(s.journalRepo))
	s.mux = runtime.NewServeMux()
	s.Require().NoError(h.RegisterRoutes(s.mux))
}

func (s *HandlerTestSuite) do(viewer *domain.Viewer, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if viewer != nil {
		req = req.WithContext(v1beta1.WithViewer(req.Context(), *viewer))
	}

	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) (string, bool) {
	var res struct {
		Error           string `json:"error"`
		RequiresRefresh bool   `json:"requires_refresh"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	return res.Error, res.RequiresRefresh
}

func (s *HandlerTestSuite) TestListInbox() {
	s.Run("should return items, summary and source errors", func() {
		s.setup()
		generatedAt := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
		expectedFilter := domain.InboxFilter{Source: "direct", Type: domain.RequestTypeLeave, Status: "pending", Q: "ana"}
		s.inboxService.EXPECT().
			List(mock.Anything, s.viewer, expectedFilter).
			Return(&domain.Inbox{
				ViewerID: "mgr-1",
				Items: []*domain.InboxItem{
					{Request: &domain.Request{Type: domain.RequestTypeLeave, ID: "11", EmployeeName: "Ana", Status: domain.RequestStatusPending}, Provenance: domain.ProvenanceDirect, Source: domain.InboxSourceTeam},
					{Request: &domain.Request{Type: domain.RequestTypeLeave, ID: "12", EmployeeName: "Ana B", Status: domain.RequestStatusPending}, Provenance: domain.ProvenanceDirect, Source: domain.InboxSourceTeam},
				},
				SourceErrors: []*domain.SourceError{{Source: domain.InboxSourceSubstitute, Message: "timeout"}},
				GeneratedAt:  generatedAt,
			}, nil).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/inbox?source=direct&type=leave&status=pending&q=ana", "")

		s.Equal(http.StatusOK, rec.Code)
		var res struct {
			ViewerID string `json:"viewer_id"`
			Items    []struct {
				Type       string `json:"type"`
				ID         string `json:"id"`
				Provenance string `json:"provenance"`
			} `json:"items"`
			Summary      domain.SummaryResult `json:"summary"`
			SourceErrors []domain.SourceError `json:"source_errors"`
			Degraded     bool                 `json:"degraded"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.Equal("mgr-1", res.ViewerID)
		s.Len(res.Items, 2)
		s.Equal("11", res.Items[0].ID)
		s.Equal("DIRECT", res.Items[0].Provenance)
		s.Equal(int32(2), res.Summary.Total)
		s.Len(res.Summary.SummaryGroups, 1)
		s.Equal([]domain.SourceError{{Source: domain.InboxSourceSubstitute, Message: "timeout"}}, res.SourceErrors)
		s.True(res.Degraded)
		s.inboxService.AssertExpectations(s.T())
	})

	s.Run("should return empty arrays for an empty inbox", func() {
		s.setup()
		s.inboxService.EXPECT().
			List(mock.Anything, s.viewer, domain.InboxFilter{}).
			Return(&domain.Inbox{ViewerID: "mgr-1"}, nil).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/inbox", "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"items":[]`)
		s.Contains(rec.Body.String(), `"source_errors":[]`)
		s.Contains(rec.Body.String(), `"degraded":false`)
	})

	s.Run("should group the summary by the requested fields", func() {
		s.setup()
		s.inboxService.EXPECT().
			List(mock.Anything, s.viewer, domain.InboxFilter{}).
			Return(&domain.Inbox{
				ViewerID: "mgr-1",
				Items: []*domain.InboxItem{
					{Request: &domain.Request{Type: domain.RequestTypeLeave, ID: "11", Status: domain.RequestStatusPending}, Provenance: domain.ProvenanceDirect},
					{Request: &domain.Request{Type: domain.RequestTypeOvertime, ID: "12", Status: domain.RequestStatusOrdered}, Provenance: domain.ProvenanceDirect},
				},
			}, nil).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/inbox?group_bys=type,status", "")

		s.Equal(http.StatusOK, rec.Code)
		var res struct {
			Summary domain.SummaryResult `json:"summary"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.Equal(int32(2), res.Summary.Total)
		s.Len(res.Summary.SummaryGroups, 2)
		s.Equal([]string{"type", "status"}, res.Summary.AppliedParameters.GroupBys)
	})

	s.Run("should return bad request on unknown group by", func() {
		s.setup()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/inbox?group_bys=employee", "")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.inboxService.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should return bad request on invalid filter", func() {
		s.setup()
		s.inboxService.EXPECT().
			List(mock.Anything, s.viewer, domain.InboxFilter{Source: "everyone"}).
			Return(nil, fmt.Errorf("%w: source", inbox.ErrInvalidFilter)).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/inbox?source=everyone", "")

		s.Equal(http.StatusBadRequest, rec.Code)
		msg, _ := s.decodeError(rec)
		s.Contains(msg, inbox.ErrInvalidFilter.Error())
	})

	s.Run("should return unauthorized without viewer identity", func() {
		s.setup()

		rec := s.do(nil, http.MethodGet, "/v1beta1/inbox", "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("should hide internal errors", func() {
		s.setup()
		s.inboxService.EXPECT().
			List(mock.Anything, s.viewer, domain.InboxFilter{}).
			Return(nil, errors.New("boom")).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/inbox", "")

		s.Equal(http.StatusInternalServerError, rec.Code)
		msg, _ := s.decodeError(rec)
		s.Equal(http.StatusText(http.StatusInternalServerError), msg)
	})
}

func (s *HandlerTestSuite) TestGetRequestDetail() {
	key := domain.RequestKey{Type: domain.RequestTypeOvertime, ID: "41"}

	s.Run("should return the detail of a request", func() {
		s.setup()
		s.decisionService.EXPECT().
			Detail(mock.Anything, s.viewer, key).
			Return(&domain.RequestDetail{
				Item:           &domain.InboxItem{Request: &domain.Request{Type: key.Type, ID: key.ID, Status: domain.RequestStatusPending}},
				AllowedActions: []domain.ActionType{domain.ActionApprove, domain.ActionReject},
				History:        &domain.Timeline{Entries: []*domain.TimelineEntry{}, Error: "history unavailable"},
			}, nil).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/inbox/overtime/41", "")

		s.Equal(http.StatusOK, rec.Code)
		var res struct {
			AllowedActions []domain.ActionType `json:"allowed_actions"`
			History        domain.Timeline     `json:"history"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.Equal([]domain.ActionType{domain.ActionApprove, domain.ActionReject}, res.AllowedActions)
		s.Equal("history unavailable", res.History.Error)
	})

	s.Run("should return not found when the request is not visible", func() {
		s.setup()
		s.decisionService.EXPECT().
			Detail(mock.Anything, s.viewer, key).
			Return(nil, fmt.Errorf("%w: %s", inbox.ErrRequestNotFound, key)).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/inbox/OVERTIME/41", "")

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("should return bad request on unknown request type", func() {
		s.setup()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/inbox/vacation/41", "")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.decisionService.AssertNotCalled(s.T(), "Detail", mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *HandlerTestSuite) TestAct() {
	key := domain.RequestKey{Type: domain.RequestTypeLeave, ID: "11"}

	s.Run("should dispatch the action and ask for a refresh", func() {
		s.setup()
		expectedCmd := domain.ActionCommand{Key: key, Action: domain.ActionReject, Reason: "overlaps"}
		s.decisionService.EXPECT().
			Act(mock.Anything, s.viewer, expectedCmd).
			Return(&domain.ActionResult{
				Key:             key,
				Action:          domain.ActionReject,
				PreviousStatus:  domain.RequestStatusPending,
				ExpectedStatus:  domain.RequestStatusRejected,
				Endpoint:        "/leave/requests/11/reject/",
				RequiresRefresh: true,
			}, nil).Once()

		rec := s.do(&s.viewer, http.MethodPost, "/v1beta1/inbox/leave/11/actions", `{"action":"REJECT","reason":"overlaps"}`)

		s.Equal(http.StatusOK, rec.Code)
		var res domain.ActionResult
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.Equal(domain.RequestStatusRejected, res.ExpectedStatus)
		s.True(res.RequiresRefresh)
	})

	s.Run("should pass override parameters through", func() {
		s.setup()
		overrider := domain.Viewer{ID: "hr-1", CanOverride: true}
		expectedCmd := domain.ActionCommand{Key: key, Action: domain.ActionOverride, OverrideAction: domain.ActionApprove, Reason: "policy exception"}
		s.decisionService.EXPECT().
			Act(mock.Anything, overrider, expectedCmd).
			Return(&domain.ActionResult{Key: key, Action: domain.ActionOverride, RequiresRefresh: true}, nil).Once()

		rec := s.do(&overrider, http.MethodPost, "/v1beta1/inbox/leave/11/actions", `{"action":"override","override_action":"approve","reason":"policy exception"}`)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("should return bad request on malformed body", func() {
		s.setup()

		rec := s.do(&s.viewer, http.MethodPost, "/v1beta1/inbox/leave/11/actions", `{"action":`)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.decisionService.AssertNotCalled(s.T(), "Act", mock.Anything, mock.Anything, mock.Anything)
	})

	testCases := []struct {
		name                    string
		err                     error
		expectedStatus          int
		expectedMessage         string
		expectedRequiresRefresh bool
	}{
		{
			name:           "should return bad request when reason is missing",
			err:            fmt.Errorf("%w: %s", decision.ErrReasonRequired, domain.ActionReject),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "should return bad request on invalid transition",
			err:            domain.ErrInvalidTransition,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "should return bad request on unsupported action",
			err:            domain.ErrUnsupportedAction,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "should return forbidden when the viewer lacks authority",
			err:            fmt.Errorf("%w: %w", decision.ErrActionForbidden, domain.ErrOverrideUnauthorized),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "should return forbidden when the record is locked",
			err:            domain.ErrRecordLocked,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:                    "should return conflict and ask for a refresh",
			err:                     fmt.Errorf("%w: %w", decision.ErrDecisionConflict, &domain.BackendError{StatusCode: http.StatusConflict, Message: "already approved"}),
			expectedStatus:          http.StatusConflict,
			expectedRequiresRefresh: true,
		},
		{
			name:            "should surface backend forbidden verbatim",
			err:             &domain.BackendError{StatusCode: http.StatusForbidden, Message: "You are not the approver"},
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "You are not the approver",
		},
		{
			name:           "should return bad gateway on backend failure",
			err:            &domain.BackendError{StatusCode: http.StatusInternalServerError, Message: "request failed with status 500"},
			expectedStatus: http.StatusBadGateway,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.setup()
			s.decisionService.EXPECT().
				Act(mock.Anything, s.viewer, mock.AnythingOfType("domain.ActionCommand")).
				Return(nil, tc.err).Once()

			rec := s.do(&s.viewer, http.MethodPost, "/v1beta1/inbox/leave/11/actions", `{"action":"reject","reason":"x"}`)

			s.Equal(tc.expectedStatus, rec.Code)
			msg, requiresRefresh := s.decodeError(rec)
			if tc.expectedMessage != "" {
				s.Equal(tc.expectedMessage, msg)
			} else {
				s.Equal(tc.err.Error(), msg)
			}
			s.Equal(tc.expectedRequiresRefresh, requiresRefresh)
		})
	}
}

func (s *HandlerTestSuite) TestGetHistory() {
	s.Run("should return the timeline", func() {
		s.setup()
		key := domain.HistoryKey{ContentType: "leaverequest", ObjectID: "11"}
		s.historyService.EXPECT().
			GetTimeline(mock.Anything, s.viewer, key).
			Return(&domain.Timeline{Key: key, Entries: []*domain.TimelineEntry{}}, nil).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/history?content_type=leaverequest&object_id=11", "")

		s.Equal(http.StatusOK, rec.Code)
		var res domain.Timeline
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.Equal(key, res.Key)
		s.Empty(res.Entries)
	})

	s.Run("should return bad request on invalid key", func() {
		s.setup()
		s.historyService.EXPECT().
			GetTimeline(mock.Anything, s.viewer, domain.HistoryKey{ContentType: "appeal"}).
			Return(nil, fmt.Errorf("%w: object_id", history.ErrInvalidHistoryKey)).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/history?content_type=appeal", "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerTestSuite) TestListJournal() {
	s.Run("should restrict regular viewers to their own actions", func() {
		s.setup()
		expectedFilter := domain.ListJournalFilter{
			ActorID:     "mgr-1",
			RequestType: domain.RequestTypeLeave,
			Actions:     []domain.ActionType{domain.ActionApprove, domain.ActionReject},
			Size:        10,
		}
		s.journalRepo.EXPECT().
			List(mock.Anything, expectedFilter).
			Return([]*domain.JournalEntry{{ID: "e-1", ActorID: "mgr-1", Action: domain.ActionApprove, Succeeded: true}}, nil).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/journal?actor=someone-else&type=leave&actions=approve,reject&size=10", "")

		s.Equal(http.StatusOK, rec.Code)
		var res struct {
			Entries []*domain.JournalEntry `json:"entries"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.Len(res.Entries, 1)
		s.Equal("e-1", res.Entries[0].ID)
	})

	s.Run("should let override viewers query any actor", func() {
		s.setup()
		overrider := domain.Viewer{ID: "hr-1", CanOverride: true}
		s.journalRepo.EXPECT().
			List(mock.Anything, domain.ListJournalFilter{ActorID: "mgr-1", RequestID: "11"}).
			Return(nil, nil).Once()

		rec := s.do(&overrider, http.MethodGet, "/v1beta1/journal?actor=mgr-1&object_id=11", "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"entries":[]}`, rec.Body.String())
	})

	s.Run("should pass order by through and map rejected columns to bad request", func() {
		s.setup()
		s.journalRepo.EXPECT().
			List(mock.Anything, domain.ListJournalFilter{ActorID: "mgr-1", OrderBy: []string{"reason:asc"}}).
			Return(nil, fmt.Errorf("%w: cannot order by column %q", domain.ErrInvalidOrderBy, "reason")).Once()

		rec := s.do(&s.viewer, http.MethodGet, "/v1beta1/journal?order_by=reason:asc", "")

		s.Equal(http.StatusBadRequest, rec.Code)
		msg, _ := s.decodeError(rec)
		s.Contains(msg, "cannot order by column")
	})

	s.Run("should return bad request on invalid parameters", func() {
		s.setup()

		for _, target := range []string{
			"/v1beta1/journal?actions=approve,delete",
			"/v1beta1/journal?size=abc",
			"/v1beta1/journal?size=0&offset=-1",
		} {
			rec := s.do(&s.viewer, http.MethodGet, target, "")
			s.Equal(http.StatusBadRequest, rec.Code, target)
		}
		s.journalRepo.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
	})
}

func TestHandler_WithoutJournal(t *testing.T) {
	h := v1beta1.NewHandler(new(mocks.InboxService), new(mocks.DecisionService), new(mocks.HistoryService), log.NewNoop())
	mux := runtime.NewServeMux()
	if err := h.RegisterRoutes(mux); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1beta1/journal", nil)
	req = req.WithContext(v1beta1.WithViewer(context.Background(), domain.Viewer{ID: "mgr-1"}))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
