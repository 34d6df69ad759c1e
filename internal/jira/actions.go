package jira

// CreateResult reports the outcome of a create attempt. A jira-cli rejection
// (bad project, missing field) is a result with Error set, not a Go error;
// Go errors are reserved for failures to run jira-cli at all.
type CreateResult struct {
	Key   string
	URL   string
	Error string
}

// MoveResult reports a status transition.
type MoveResult struct {
	Key            string
	PreviousStatus string
	NewStatus      string
	Message        string
}

// AssignResult reports an assignment to the current user.
type AssignResult struct {
	Key      string
	Assignee string
	Message  string
}

// ActionResult is the generic acknowledgement for single-issue mutations
// (comments, description updates, sprint membership).
type ActionResult struct {
	Key     string
	Message string
}

// EditResult reports a field edit. UpdatedFields is empty when nothing was
// specified to change; that case is a result, not an error.
type EditResult struct {
	Key           string
	UpdatedFields []string
	Message       string
}

// CreateTicketParams are the inputs to Client.CreateTicket. Project, Type
// and Summary are required; everything else is optional.
type CreateTicketParams struct {
	Project     string
	Type        string
	Summary     string
	Description string
	Priority    string
	Assignee    string
	Labels      []string
	Components  []string
}

// EditTicketParams are the optional field edits for Client.EditTicket.
// AssigneeSet distinguishes "leave assignee alone" from "unassign" (empty
// Assignee with AssigneeSet true).
type EditTicketParams struct {
	Summary      string
	Priority     string
	Assignee     string
	AssigneeSet  bool
	Labels       []string
	AddLabels    []string
	RemoveLabels []string
	Components   []string
	FixVersions  []string
	Parent       string
	CustomFields map[string]string
}

// ListTicketsParams are the filters for Client.ListTickets. A raw JQL query
// overrides the semantic filters.
type ListTicketsParams struct {
	JQL             string
	Limit           int
	AssignedToMe    bool
	Unassigned      bool
	Status          string
	Project         string
	CreatedRecently bool
	UpdatedRecently bool
	OrderBy         string
	OrderDirection  string
}
