package jira

import (
	"strings"

	"jiramcp/internal/validation"
)

// buildJQL translates the semantic list filters into a JQL query. A raw JQL
// string overrides everything else; with no filters at all it returns "".
func buildJQL(p ListTicketsParams) string {
	if p.JQL != "" {
		return p.JQL
	}

	var conditions []string

	// Assignee filters are mutually exclusive; assigned-to-me wins.
	if p.AssignedToMe {
		conditions = append(conditions, "assignee = currentUser()")
	} else if p.Unassigned {
		conditions = append(conditions, "assignee is EMPTY")
	}

	if p.Status != "" {
		status := NormalizeStatus(p.Status)
		conditions = append(conditions, "status = "+validation.QuoteJQLValue(status))
	}

	if p.Project != "" {
		conditions = append(conditions, "project = "+p.Project)
	}

	if p.CreatedRecently {
		conditions = append(conditions, "created >= -7d")
	}
	if p.UpdatedRecently {
		conditions = append(conditions, "updated >= -7d")
	}

	return strings.Join(conditions, " AND ")
}
