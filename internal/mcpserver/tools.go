package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools declares every Jira tool and binds its handler. Descriptions
// are written for the LLM on the other side of the protocol; they name the
// accepted values because the model cannot discover them any other way.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_tickets",
		mcp.WithDescription("List Jira tickets with optional filters. Supports JQL queries, semantic filters (assigned to me, unassigned, by status, by project), date filters (created/updated recently), and sorting options."),
		mcp.WithTitleAnnotation("Search and list Jira tickets with filters."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("jql",
			mcp.Description("Raw JQL query (advanced users only). Overrides other filters if provided."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tickets to return (default 20)."),
		),
		mcp.WithBoolean("assigned_to_me",
			mcp.Description("Show only tickets assigned to me."),
		),
		mcp.WithBoolean("unassigned",
			mcp.Description("Show only unassigned tickets."),
		),
		mcp.WithString("status",
			mcp.Description("Filter by status. Common values: Open, In Progress, Done, Closed. Your Jira may have custom statuses."),
		),
		mcp.WithString("project",
			mcp.Description("Filter by project key (e.g., 'PROJ')."),
		),
		mcp.WithBoolean("created_recently",
			mcp.Description("Show tickets created in the last 7 days."),
		),
		mcp.WithBoolean("updated_recently",
			mcp.Description("Show tickets updated in the last 7 days."),
		),
		mcp.WithString("order_by",
			mcp.Description("Sort tickets by field (created, updated, priority)."),
		),
		mcp.WithString("order_direction",
			mcp.Description("Sort direction (asc, desc)."),
		),
	), s.handleListTickets)

	s.mcpServer.AddTool(mcp.NewTool("get_ticket",
		mcp.WithDescription("Retrieve detailed information about a Jira ticket including summary, status, priority, type, assignee, reporter, dates, description, and comments."),
		mcp.WithTitleAnnotation("Get detailed information about a specific Jira ticket."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("ticket_key",
			mcp.Required(),
			mcp.Description("Jira ticket key (e.g., PROJ-123)."),
		),
		mcp.WithNumber("comments",
			mcp.Description("Number of comments to include (default 5)."),
		),
	), s.handleGetTicket)

	s.mcpServer.AddTool(mcp.NewTool("create_ticket",
		mcp.WithDescription("Create a new Jira ticket with project, type, summary, and optional description, priority, assignee, labels, and components."),
		mcp.WithTitleAnnotation("Create a new Jira ticket."),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Jira project key (e.g., PROJ)."),
		),
		mcp.WithString("issue_type",
			mcp.Required(),
			mcp.Description("Issue type (e.g., Bug, Story, Task)."),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Issue summary/title."),
		),
		mcp.WithString("description",
			mcp.Description("Issue description (markdown supported)."),
		),
		mcp.WithString("priority",
			mcp.Description("Priority level (e.g., High, Medium, Low)."),
		),
		mcp.WithString("assignee",
			mcp.Description("Assignee username or email."),
		),
		mcp.WithArray("labels",
			mcp.Description("List of labels to add."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("components",
			mcp.Description("List of components to add."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), s.handleCreateTicket)

	s.mcpServer.AddTool(mcp.NewTool("move_ticket",
		mcp.WithDescription("Move a Jira ticket to a different status. The available statuses depend on your Jira project's workflow configuration."),
		mcp.WithTitleAnnotation("Move a Jira ticket to a different status."),
		mcp.WithString("ticket_key",
			mcp.Required(),
			mcp.Description("Jira ticket key (e.g., PROJ-123)."),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("Target status. Common values: Open, In Progress, Done, Closed. Your Jira may have custom statuses."),
		),
	), s.handleMoveTicket)

	s.mcpServer.AddTool(mcp.NewTool("add_comment",
		mcp.WithDescription("Add a comment to an existing Jira ticket. The comment text supports multi-line content."),
		mcp.WithTitleAnnotation("Add a comment to a Jira ticket."),
		mcp.WithString("ticket_key",
			mcp.Required(),
			mcp.Description("Jira ticket key (e.g., PROJ-123)."),
		),
		mcp.WithString("comment",
			mcp.Required(),
			mcp.Description("Comment text to add to the ticket."),
		),
	), s.handleAddComment)

	s.mcpServer.AddTool(mcp.NewTool("assign_to_me",
		mcp.WithDescription("Assign a Jira ticket to yourself (the currently authenticated user)."),
		mcp.WithTitleAnnotation("Assign a Jira ticket to the current user."),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("ticket_key",
			mcp.Required(),
			mcp.Description("Jira ticket key (e.g., PROJ-123)."),
		),
	), s.handleAssignToMe)

	s.mcpServer.AddTool(mcp.NewTool("open_ticket_in_browser",
		mcp.WithDescription("Open a Jira ticket in your default web browser for viewing in the Jira web interface."),
		mcp.WithTitleAnnotation("Open a Jira ticket in the default web browser."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("ticket_key",
			mcp.Required(),
			mcp.Description("Jira ticket key (e.g., PROJ-123)."),
		),
	), s.handleOpenInBrowser)

	s.mcpServer.AddTool(mcp.NewTool("update_ticket_description",
		mcp.WithDescription("Update the description of an existing Jira ticket. The description supports multi-line content and markdown formatting."),
		mcp.WithTitleAnnotation("Update the description of a Jira ticket."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("ticket_key",
			mcp.Required(),
			mcp.Description("Jira ticket key (e.g., PROJ-123)."),
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("New description content for the ticket."),
		),
	), s.handleUpdateDescription)

	s.mcpServer.AddTool(mcp.NewTool("list_sprints",
		mcp.WithDescription("List all sprints from a Jira board. Can filter by sprint state (active, future, closed)."),
		mcp.WithTitleAnnotation("List sprints from a Jira board."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithNumber("board_id",
			mcp.Required(),
			mcp.Description("Jira board ID to list sprints from."),
		),
		mcp.WithString("state",
			mcp.Description("Filter sprints by state (active, future, closed)."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of sprints to return (default 20)."),
		),
	), s.handleListSprints)

	s.mcpServer.AddTool(mcp.NewTool("add_to_sprint",
		mcp.WithDescription("Add a Jira ticket to a specific sprint by sprint ID. Use list_sprints to find available sprint IDs."),
		mcp.WithTitleAnnotation("Add a Jira ticket to a sprint."),
		mcp.WithString("ticket_key",
			mcp.Required(),
			mcp.Description("Jira ticket key (e.g., PROJ-123)."),
		),
		mcp.WithNumber("sprint_id",
			mcp.Required(),
			mcp.Description("Sprint ID to add the ticket to."),
		),
	), s.handleAddToSprint)

	s.mcpServer.AddTool(mcp.NewTool("remove_from_sprint",
		mcp.WithDescription("Remove a Jira ticket from its current sprint. The ticket will be moved to the backlog."),
		mcp.WithTitleAnnotation("Remove a Jira ticket from its current sprint."),
		mcp.WithString("ticket_key",
			mcp.Required(),
			mcp.Description("Jira ticket key (e.g., PROJ-123)."),
		),
	), s.handleRemoveFromSprint)

	s.mcpServer.AddTool(mcp.NewTool("edit_ticket",
		mcp.WithDescription("Edit various fields on a Jira ticket including summary, priority, assignee, labels, components, fix versions, parent, and custom fields."),
		mcp.WithTitleAnnotation("Edit fields on a Jira ticket."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("ticket_key",
			mcp.Required(),
			mcp.Description("Jira ticket key (e.g., PROJ-123)."),
		),
		mcp.WithString("summary",
			mcp.Description("New summary/title for the ticket."),
		),
		mcp.WithString("priority",
			mcp.Description("New priority level (e.g., High, Medium, Low)."),
		),
		mcp.WithString("assignee",
			mcp.Description("New assignee username or email (use empty string to unassign)."),
		),
		mcp.WithArray("labels",
			mcp.Description("Labels to set on the ticket (replaces existing labels)."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("add_labels",
			mcp.Description("Labels to add to the ticket."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("remove_labels",
			mcp.Description("Labels to remove from the ticket."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("components",
			mcp.Description("Components to set on the ticket."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("fix_versions",
			mcp.Description("Fix versions to set on the ticket."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("parent",
			mcp.Description("Parent issue key (for subtasks/child issues)."),
		),
		mcp.WithObject("custom_fields",
			mcp.Description("Custom fields to set (key-value pairs)."),
			mcp.AdditionalProperties(map[string]any{"type": "string"}),
		),
	), s.handleEditTicket)
}
