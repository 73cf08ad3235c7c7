package hrms

import "github.com/goto/workforce/domain"

const (
	pathTeamRequests      = "team-requests/"
	pathLeaveTeamHistory  = "leave/requests/team_history/"
	pathSubstitutePending = "substitute-authority/pending_requests/"
	pathSubordinates      = "employees/subordinates/"
	pathDecisionHistory   = "decision-history/for_request/"

	DefaultViewerHeader = "X-Auth-User-Id"
)

// listEnvelope accepts both bare arrays and paginated {results: [...]} bodies
type listEnvelope struct {
	Results []domain.RawRecord `json:"results"`
	Data    []domain.RawRecord `json:"data"`
}

type subordinatesResponse struct {
	Direct   []interface{} `json:"direct"`
	Indirect []interface{} `json:"indirect"`
}

type errorResponse struct {
	Error  interface{} `json:"error"`
	Detail interface{} `json:"detail"`
}
