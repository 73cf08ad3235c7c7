package domain

const (
	SummaryGroupByProvenance = "provenance"
	SummaryGroupByType       = "type"
	SummaryGroupByStatus     = "status"
)

type SummaryParameters struct {
	GroupBys []string `mapstructure:"group_bys" validate:"required,min=1,dive,oneof=provenance type status"`
}

type SummaryResult struct {
	AppliedParameters *SummaryParameters `json:"applied_parameters,omitempty"`
	SummaryGroups     []*SummaryGroup    `json:"summary_groups,omitempty"`
	Total             int32              `json:"total"`
}

type SummaryGroup struct {
	GroupFields map[string]any `json:"group_fields,omitempty"`
	Total       int32          `json:"total"`
}
