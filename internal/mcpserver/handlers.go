package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"jiramcp/internal/jira"
	"jiramcp/internal/validation"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers return tool errors as protocol results, never as Go errors. A Go
// error from a handler would tear down the serving loop; a bad ticket key
// should not.

func (s *Server) handleListTickets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := jira.ListTicketsParams{
		JQL:             req.GetString("jql", ""),
		Limit:           req.GetInt("limit", 20),
		AssignedToMe:    req.GetBool("assigned_to_me", false),
		Unassigned:      req.GetBool("unassigned", false),
		Status:          req.GetString("status", ""),
		Project:         req.GetString("project", ""),
		CreatedRecently: req.GetBool("created_recently", false),
		UpdatedRecently: req.GetBool("updated_recently", false),
		OrderBy:         req.GetString("order_by", ""),
		OrderDirection:  req.GetString("order_direction", ""),
	}

	tickets, err := s.client.ListTickets(ctx, params)
	if err != nil {
		s.logger.Error("Error listing tickets", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error listing tickets: %v", err)), nil
	}

	return mcp.NewToolResultText(formatTicketList(tickets)), nil
}

func (s *Server) handleGetTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := s.requireTicketKey(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	comments := req.GetInt("comments", 5)

	detail, err := s.client.GetTicket(ctx, key, comments)
	if err != nil {
		s.logger.Error("Error getting ticket", "key", key, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error getting ticket %s: %v", key, err)), nil
	}

	return mcp.NewToolResultText(formatTicketDetail(detail)), nil
}

func (s *Server) handleCreateTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := req.RequireString("project")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := validation.ValidateProjectKey(project); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	issueType, err := req.RequireString("issue_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	summary, err := req.RequireString("summary")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.CreateTicket(ctx, jira.CreateTicketParams{
		Project:     project,
		Type:        issueType,
		Summary:     summary,
		Description: req.GetString("description", ""),
		Priority:    req.GetString("priority", ""),
		Assignee:    req.GetString("assignee", ""),
		Labels:      req.GetStringSlice("labels", nil),
		Components:  req.GetStringSlice("components", nil),
	})
	if err != nil {
		s.logger.Error("Error creating ticket", "project", project, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error creating ticket: %v", err)), nil
	}
	if result.Error != "" {
		s.logger.Error("Ticket creation rejected", "project", project, "reason", result.Error)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create ticket: %s", result.Error)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Successfully created ticket %s\nURL: %s", result.Key, result.URL)), nil
}

func (s *Server) handleMoveTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := s.requireTicketKey(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	status, err := req.RequireString("status")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.MoveTicket(ctx, key, status)
	if err != nil {
		s.logger.Error("Error moving ticket", "key", key, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error moving ticket %s: %v", key, err)), nil
	}

	return mcp.NewToolResultText(result.Message), nil
}

func (s *Server) handleAddComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := s.requireTicketKey(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	comment, err := req.RequireString("comment")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.AddComment(ctx, key, comment)
	if err != nil {
		s.logger.Error("Error adding comment", "key", key, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error adding comment to %s: %v", key, err)), nil
	}

	return mcp.NewToolResultText(result.Message), nil
}

func (s *Server) handleAssignToMe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := s.requireTicketKey(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.AssignToMe(ctx, key)
	if err != nil {
		s.logger.Error("Error assigning ticket", "key", key, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error assigning ticket %s: %v", key, err)), nil
	}

	return mcp.NewToolResultText(result.Message), nil
}

func (s *Server) handleOpenInBrowser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := s.requireTicketKey(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := s.client.OpenInBrowser(ctx, key)
	if err != nil {
		s.logger.Error("Error opening ticket in browser", "key", key, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error opening ticket %s in browser: %v", key, err)), nil
	}

	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleUpdateDescription(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := s.requireTicketKey(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.UpdateDescription(ctx, key, description)
	if err != nil {
		s.logger.Error("Error updating description", "key", key, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error updating description for %s: %v", key, err)), nil
	}

	return mcp.NewToolResultText(result.Message), nil
}

func (s *Server) handleListSprints(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := req.RequireInt("board_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	state := req.GetString("state", "")
	limit := req.GetInt("limit", 20)

	sprints, err := s.client.ListSprints(ctx, boardID, state, limit)
	if err != nil {
		s.logger.Error("Error listing sprints", "board", boardID, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error listing sprints: %v", err)), nil
	}

	return mcp.NewToolResultText(formatSprintList(sprints)), nil
}

func (s *Server) handleAddToSprint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := s.requireTicketKey(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sprintID, err := req.RequireInt("sprint_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.AddToSprint(ctx, key, sprintID)
	if err != nil {
		s.logger.Error("Error adding ticket to sprint", "key", key, "sprint", sprintID, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error adding %s to sprint: %v", key, err)), nil
	}

	return mcp.NewToolResultText(result.Message), nil
}

func (s *Server) handleRemoveFromSprint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := s.requireTicketKey(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.RemoveFromSprint(ctx, key)
	if err != nil {
		s.logger.Error("Error removing ticket from sprint", "key", key, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error removing %s from sprint: %v", key, err)), nil
	}

	return mcp.NewToolResultText(result.Message), nil
}

func (s *Server) handleEditTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := s.requireTicketKey(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := jira.EditTicketParams{
		Summary:      req.GetString("summary", ""),
		Priority:     req.GetString("priority", ""),
		Labels:       req.GetStringSlice("labels", nil),
		AddLabels:    req.GetStringSlice("add_labels", nil),
		RemoveLabels: req.GetStringSlice("remove_labels", nil),
		Components:   req.GetStringSlice("components", nil),
		FixVersions:  req.GetStringSlice("fix_versions", nil),
		Parent:       req.GetString("parent", ""),
	}

	args := req.GetArguments()
	// An explicitly supplied empty assignee means unassign, so presence
	// matters, not just the value.
	if raw, ok := args["assignee"]; ok {
		params.AssigneeSet = true
		params.Assignee, _ = raw.(string)
	}
	if raw, ok := args["custom_fields"].(map[string]any); ok {
		params.CustomFields = make(map[string]string, len(raw))
		for k, v := range raw {
			params.CustomFields[k] = fmt.Sprint(v)
		}
	}

	result, err := s.client.EditTicket(ctx, key, params)
	if err != nil {
		s.logger.Error("Error editing ticket", "key", key, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error editing ticket %s: %v", key, err)), nil
	}

	return mcp.NewToolResultText(result.Message), nil
}

// requireTicketKey reads and validates the ticket_key argument shared by most
// tools.
func (s *Server) requireTicketKey(req mcp.CallToolRequest) (string, error) {
	key, err := req.RequireString("ticket_key")
	if err != nil {
		return "", err
	}
	key = strings.TrimSpace(key)
	if err := validation.ValidateTicketKey(key); err != nil {
		return "", err
	}
	return key, nil
}

func formatTicketList(tickets []jira.Ticket) string {
	if len(tickets) == 0 {
		return "No tickets found."
	}

	entries := make([]string, 0, len(tickets))
	for _, t := range tickets {
		assignee := ""
		if t.Assignee != "" {
			assignee = " | Assignee: " + t.Assignee
		}
		entries = append(entries, fmt.Sprintf("%s: %s\n  Status: %s | Priority: %s | Type: %s%s",
			t.Key, t.Summary, t.Status, t.Priority, t.Type, assignee))
	}
	return strings.Join(entries, "\n\n")
}

func formatTicketDetail(t jira.TicketDetail) string {
	assignee := t.Assignee
	if assignee == "" {
		assignee = "Unassigned"
	}
	reporter := t.Reporter
	if reporter == "" {
		reporter = "Unknown"
	}
	description := t.Description
	if description == "" {
		description = "No description provided"
	}

	comments := "No comments"
	if len(t.Comments) > 0 {
		entries := make([]string, 0, len(t.Comments))
		for _, c := range t.Comments {
			entries = append(entries, fmt.Sprintf("- **%s** (%s):\n  %s", c.Author, c.Created, c.Body))
		}
		comments = strings.Join(entries, "\n\n")
	}

	return fmt.Sprintf(`**%s: %s**

**Details:**
- Status: %s
- Priority: %s
- Type: %s
- Assignee: %s
- Reporter: %s
- Created: %s
- Updated: %s

**Description:**
%s

**Comments (%d):**
%s`,
		t.Key, t.Summary,
		t.Status, t.Priority, t.Type, assignee, reporter, t.Created, t.Updated,
		description,
		len(t.Comments), comments)
}

func formatSprintList(sprints []jira.Sprint) string {
	if len(sprints) == 0 {
		return "No sprints found."
	}

	entries := make([]string, 0, len(sprints))
	for _, s := range sprints {
		dates := ""
		if s.StartDate != "" {
			dates += " | Start: " + s.StartDate
		}
		if s.EndDate != "" {
			dates += " | End: " + s.EndDate
		}
		entries = append(entries, fmt.Sprintf("Sprint %d: %s\n  State: %s%s", s.ID, s.Name, s.State, dates))
	}
	return strings.Join(entries, "\n\n")
}
