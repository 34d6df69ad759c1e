// Package jira translates tool-level Jira operations into jira-cli
// invocations and parses the CLI's output back into domain types.
//
// Status, priority, and type are flexible strings throughout: Jira instances
// carry custom values for all three depending on project configuration and
// workflow settings.
package jira

import "strings"

// commonStatusNames maps lowercase spellings of typical Jira statuses to
// their display names. Instances may define statuses outside this table;
// unknown values pass through unchanged.
var commonStatusNames = map[string]string{
	"open":             "Open",
	"in progress":      "In Progress",
	"in review":        "In Review",
	"done":             "Done",
	"closed":           "Closed",
	"canceled":         "Canceled",
	"todo":             "To Do",
	"to do":            "To Do",
	"backlog":          "Backlog",
	"blocked":          "Blocked",
	"ready for review": "Ready for Review",
	"ready for qa":     "Ready for QA",
	"in qa":            "In QA",
	"deployed":         "Deployed",
}

// NormalizeStatus maps a status string to its Jira display name when it
// matches a common status (case-insensitive); otherwise it is returned
// as-is.
func NormalizeStatus(status string) string {
	if name, ok := commonStatusNames[strings.ToLower(status)]; ok {
		return name
	}
	return status
}

// Ticket is the summary view of a Jira issue as produced by `jira issue
// list`. Empty string means the field was absent.
type Ticket struct {
	Key      string
	Summary  string
	Status   string
	Priority string
	Type     string
	Assignee string
	Reporter string
	Created  string
	Updated  string
}

// Comment is a single issue comment with its body already rendered to text.
type Comment struct {
	Author  string
	Created string
	Body    string
}

// TicketDetail is the full view of an issue from `jira issue view --raw`,
// including the rendered description and comments.
type TicketDetail struct {
	Ticket
	Description string
	Comments    []Comment
}

// Sprint is one row of `jira sprint list`.
type Sprint struct {
	ID        int
	Name      string
	State     string
	StartDate string
	EndDate   string
}
