package request

// Ordered fallback paths per canonical field. The first present, non-empty value wins.
var (
	idPaths   = []string{"id", "pk"}
	typePaths = []string{"type", "request_type"}

	employeeIDPaths   = []string{"employee_detail.id", "employee.id", "employee_id", "employee", "user_id"}
	employeeNamePaths = []string{
		"employee_detail.name",
		"employee_detail.full_name",
		"employee.name",
		"employee.full_name",
		"employee_name",
		"user_name",
	}
	departmentPaths = []string{
		"employee_detail.department.name",
		"employee_detail.department_name",
		"employee.department.name",
		"employee.department_name",
		"department_name",
		"department",
	}
	ownerManagerPaths = []string{
		"employee_detail.manager_id",
		"employee_detail.manager.id",
		"employee.manager_id",
		"employee.manager.id",
		"manager_id",
	}
	levelPaths = []string{"level", "hierarchy_level"}

	statusPaths             = []string{"status"}
	targetApproverIDPaths   = []string{"target_approver_detail.id", "target_approver.id", "target_approver_id", "target_approver"}
	targetApproverNamePaths = []string{"target_approver_detail.name", "target_approver.name", "target_approver_name"}
	approvedByNamePaths     = []string{"approved_by_detail.name", "approved_by.name", "approved_by_name"}
	approvedAtPaths         = []string{"approved_at", "decided_at"}
	rejectionReasonPaths    = []string{"rejection_reason", "reject_reason"}
	reasonPaths             = []string{"reason", "description", "note"}

	immutablePaths = []string{"is_immutable"}
	lockDatePaths  = []string{"lock_date", "immutable_date"}

	startDatePaths = []string{"start_date"}
	endDatePaths   = []string{"end_date"}
	datePaths      = []string{"date", "overtime_date", "entry_date", "meal_date"}
	startTimePaths = []string{"start_time"}
	endTimePaths   = []string{"end_time"}
	createdAtPaths = []string{"created_at", "created"}

	authorityIDPaths            = []string{"id", "pk"}
	authorityPrincipalIDPaths   = []string{"principal_detail.id", "principal.id", "principal_id", "principal"}
	authorityPrincipalNamePaths = []string{"principal_detail.name", "principal.name", "principal_name"}
	authorityAgentIDPaths       = []string{"agent_detail.id", "agent.id", "agent_id", "agent", "substitute_id", "substitute"}
	authorityAgentNamePaths     = []string{"agent_detail.name", "agent.name", "agent_name", "substitute_name"}
	authorityValidFromPaths     = []string{"valid_from", "start_date"}
	authorityValidToPaths       = []string{"valid_to", "end_date"}
)
