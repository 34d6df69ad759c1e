package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"jiramcp/internal/executor"
	"jiramcp/internal/logging"
)

// Runner abstracts the jira-cli executor so the client can be tested against
// canned results without spawning processes.
type Runner interface {
	Run(ctx context.Context, args []string, stdin string) (executor.Result, error)
}

// Client implements the Jira operations exposed as MCP tools. Each call maps
// to one or two jira-cli invocations; no state is carried between calls.
type Client struct {
	run    Runner
	logger *logging.AppLogger
}

// NewClient wraps a Runner.
func NewClient(r Runner, logger *logging.AppLogger) *Client {
	return &Client{run: r, logger: logger}
}

// noResult reports the jira-cli stderr that means an empty result set rather
// than a failure.
func noResult(stderr string) bool {
	return strings.Contains(stderr, "No result found")
}

// ListTickets runs `jira issue list` with the filters translated to JQL and
// parses the tab-separated plain output.
func (c *Client) ListTickets(ctx context.Context, p ListTicketsParams) ([]Ticket, error) {
	args := []string{
		"issue", "list",
		"--no-headers",
		"--plain",
		"--columns", "key,summary,status,priority,type,assignee",
	}

	if jql := buildJQL(p); jql != "" {
		args = append(args, "--jql", jql)
	}

	if p.OrderBy != "" {
		args = append(args, "--order-by", p.OrderBy)
		// jira-cli sorts descending by default; --reverse flips it.
		if p.OrderDirection == "asc" {
			args = append(args, "--reverse")
		}
	}

	if p.Limit > 0 {
		args = append(args, "--paginate", fmt.Sprintf("0:%d", p.Limit))
	}

	res, err := c.run.Run(ctx, args, "")
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		if noResult(res.Stderr) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list tickets: %s", strings.TrimSpace(res.Stderr))
	}

	var tickets []Ticket
	for _, line := range strings.Split(strings.TrimSpace(res.Stdout), "\n") {
		cols := splitColumns(line)
		if len(cols) < 5 {
			continue
		}
		t := Ticket{
			Key:      cols[0],
			Summary:  cols[1],
			Status:   cols[2],
			Priority: cols[3],
			Type:     cols[4],
		}
		if len(cols) > 5 {
			t.Assignee = cols[5]
		}
		tickets = append(tickets, t)
	}
	c.logger.Debug("Parsed ticket list", "count", len(tickets))
	return tickets, nil
}

// rawIssue mirrors the JSON emitted by `jira issue view --raw`.
type rawIssue struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
		Status  struct {
			Name string `json:"name"`
		} `json:"status"`
		Priority struct {
			Name string `json:"name"`
		} `json:"priority"`
		IssueType struct {
			Name string `json:"name"`
		} `json:"issuetype"`
		Assignee *struct {
			DisplayName string `json:"displayName"`
		} `json:"assignee"`
		Reporter *struct {
			DisplayName string `json:"displayName"`
		} `json:"reporter"`
		Created     string          `json:"created"`
		Updated     string          `json:"updated"`
		Description json.RawMessage `json:"description"`
		Comment     struct {
			Comments []rawComment `json:"comments"`
		} `json:"comment"`
	} `json:"fields"`
}

type rawComment struct {
	Author struct {
		DisplayName string `json:"displayName"`
	} `json:"author"`
	Created string          `json:"created"`
	Body    json.RawMessage `json:"body"`
}

// GetTicket fetches full issue details, converting ADF descriptions and
// comment bodies to text.
func (c *Client) GetTicket(ctx context.Context, key string, comments int) (TicketDetail, error) {
	args := []string{"issue", "view", key, "--raw"}
	if comments > 0 {
		args = append(args, "--comments", strconv.Itoa(comments))
	}

	res, err := c.run.Run(ctx, args, "")
	if err != nil {
		return TicketDetail{}, err
	}
	if res.ExitCode != 0 {
		return TicketDetail{}, fmt.Errorf("failed to get ticket %s: %s", key, strings.TrimSpace(res.Stderr))
	}

	var raw rawIssue
	if err := json.Unmarshal([]byte(res.Stdout), &raw); err != nil {
		return TicketDetail{}, fmt.Errorf("failed to parse jira response for %s: %w", key, err)
	}

	detail := TicketDetail{
		Ticket: Ticket{
			Key:      raw.Key,
			Summary:  raw.Fields.Summary,
			Status:   raw.Fields.Status.Name,
			Priority: raw.Fields.Priority.Name,
			Type:     raw.Fields.IssueType.Name,
			Created:  raw.Fields.Created,
			Updated:  raw.Fields.Updated,
		},
		Description: renderBody(raw.Fields.Description),
	}
	if raw.Fields.Assignee != nil {
		detail.Assignee = raw.Fields.Assignee.DisplayName
	}
	if raw.Fields.Reporter != nil {
		detail.Reporter = raw.Fields.Reporter.DisplayName
	}

	for _, rc := range raw.Fields.Comment.Comments {
		author := rc.Author.DisplayName
		if author == "" {
			author = "Unknown"
		}
		detail.Comments = append(detail.Comments, Comment{
			Author:  author,
			Created: rc.Created,
			Body:    renderBody(rc.Body),
		})
	}

	return detail, nil
}

// renderBody turns a description or comment body into text. Jira API v3
// sends ADF objects, v2 sends plain strings; both appear in the wild.
func renderBody(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err == nil {
		return renderADF(doc)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// CreateTicket runs `jira issue create`. A description travels over stdin
// with `--template -` so multi-line markdown survives intact.
func (c *Client) CreateTicket(ctx context.Context, p CreateTicketParams) (CreateResult, error) {
	args := []string{
		"issue", "create",
		"--project", p.Project,
		"--type", p.Type,
		"--summary", p.Summary,
		"--no-input",
		"--raw",
	}

	if p.Priority != "" {
		args = append(args, "--priority", p.Priority)
	}
	if p.Assignee != "" {
		args = append(args, "--assignee", p.Assignee)
	}
	for _, label := range p.Labels {
		args = append(args, "--label", label)
	}
	for _, component := range p.Components {
		args = append(args, "--component", component)
	}

	stdin := ""
	if p.Description != "" {
		args = append(args, "--template", "-")
		stdin = p.Description
	}

	res, err := c.run.Run(ctx, args, stdin)
	if err != nil {
		return CreateResult{}, err
	}
	if res.ExitCode != 0 {
		msg := strings.TrimSpace(res.Stderr)
		if msg == "" {
			msg = fmt.Sprintf("jira-cli exited with status %d", res.ExitCode)
		}
		return CreateResult{Error: msg}, nil
	}

	var out struct {
		Key  string `json:"key"`
		Self string `json:"self"`
	}
	if err := json.Unmarshal([]byte(res.Stdout), &out); err != nil {
		return CreateResult{}, fmt.Errorf("failed to parse create response: %w", err)
	}

	return CreateResult{Key: out.Key, URL: out.Self}, nil
}

// MoveTicket transitions an issue to a new status and reports the previous
// one. The current status is read first with a keyed JQL lookup.
func (c *Client) MoveTicket(ctx context.Context, key, status string) (MoveResult, error) {
	target := NormalizeStatus(status)

	view, err := c.run.Run(ctx, []string{
		"issue", "list",
		"--jql", fmt.Sprintf("key = %s", key),
		"--plain",
		"--no-headers",
		"--columns", "status",
	}, "")
	if err != nil {
		return MoveResult{}, err
	}
	if view.ExitCode != 0 {
		return MoveResult{}, fmt.Errorf("failed to get current status for %s: %s", key, strings.TrimSpace(view.Stderr))
	}

	current := "Unknown"
	if cols := splitColumns(strings.TrimSpace(view.Stdout)); len(cols) > 0 {
		// Some jira-cli builds prefix the key column even when only status
		// is requested.
		current = cols[len(cols)-1]
	}

	move, err := c.run.Run(ctx, []string{"issue", "move", key, target}, "")
	if err != nil {
		return MoveResult{}, err
	}
	if move.ExitCode != 0 {
		return MoveResult{}, fmt.Errorf("failed to move ticket %s: %s", key, strings.TrimSpace(move.Stderr))
	}

	return MoveResult{
		Key:            key,
		PreviousStatus: current,
		NewStatus:      target,
		Message:        fmt.Sprintf("Successfully moved %s from %s to %s", key, current, target),
	}, nil
}

// AddComment adds a comment, passing the body over stdin so newlines are
// preserved.
func (c *Client) AddComment(ctx context.Context, key, comment string) (ActionResult, error) {
	res, err := c.run.Run(ctx, []string{"issue", "comment", "add", key, "--no-input"}, comment)
	if err != nil {
		return ActionResult{}, err
	}
	if res.ExitCode != 0 {
		return ActionResult{}, fmt.Errorf("failed to add comment to %s: %s", key, strings.TrimSpace(res.Stderr))
	}
	return ActionResult{
		Key:     key,
		Message: fmt.Sprintf("Successfully added comment to %s", key),
	}, nil
}

// AssignToMe looks up the current user with `jira me` and assigns the issue
// to them.
func (c *Client) AssignToMe(ctx context.Context, key string) (AssignResult, error) {
	me, err := c.run.Run(ctx, []string{"me"}, "")
	if err != nil {
		return AssignResult{}, err
	}
	if me.ExitCode != 0 {
		return AssignResult{}, fmt.Errorf("failed to get current user: %s", strings.TrimSpace(me.Stderr))
	}

	user := strings.TrimSpace(me.Stdout)
	if user == "" {
		return AssignResult{}, fmt.Errorf("unable to determine current user")
	}

	assign, err := c.run.Run(ctx, []string{"issue", "assign", key, user}, "")
	if err != nil {
		return AssignResult{}, err
	}
	if assign.ExitCode != 0 {
		return AssignResult{}, fmt.Errorf("failed to assign ticket %s: %s", key, strings.TrimSpace(assign.Stderr))
	}

	return AssignResult{
		Key:      key,
		Assignee: user,
		Message:  fmt.Sprintf("Successfully assigned %s to %s", key, user),
	}, nil
}

// OpenInBrowser opens the issue in the default browser via `jira open`.
func (c *Client) OpenInBrowser(ctx context.Context, key string) (string, error) {
	res, err := c.run.Run(ctx, []string{"open", key}, "")
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("failed to open ticket %s in browser: %s", key, strings.TrimSpace(res.Stderr))
	}
	return fmt.Sprintf("Successfully opened ticket %s in browser", key), nil
}

// UpdateDescription replaces the issue description with the stdin payload.
func (c *Client) UpdateDescription(ctx context.Context, key, description string) (ActionResult, error) {
	res, err := c.run.Run(ctx, []string{"issue", "edit", key, "--no-input"}, description)
	if err != nil {
		return ActionResult{}, err
	}
	if res.ExitCode != 0 {
		return ActionResult{}, fmt.Errorf("failed to update ticket %s: %s", key, strings.TrimSpace(res.Stderr))
	}
	return ActionResult{
		Key:     key,
		Message: fmt.Sprintf("Successfully updated description for %s", key),
	}, nil
}

// ListSprints lists board sprints. A "no sprints" response is an empty list.
func (c *Client) ListSprints(ctx context.Context, boardID int, state string, limit int) ([]Sprint, error) {
	args := []string{
		"sprint", "list",
		"--board", strconv.Itoa(boardID),
		"--plain",
		"--no-headers",
		"--columns", "id,name,state,startdate,enddate",
	}
	if state != "" {
		args = append(args, "--state", state)
	}
	if limit > 0 {
		args = append(args, "--paginate", fmt.Sprintf("0:%d", limit))
	}

	res, err := c.run.Run(ctx, args, "")
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		if noResult(res.Stderr) || strings.Contains(strings.ToLower(res.Stderr), "no sprints") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list sprints: %s", strings.TrimSpace(res.Stderr))
	}

	var sprints []Sprint
	for _, line := range strings.Split(strings.TrimSpace(res.Stdout), "\n") {
		cols := splitColumns(line)
		if len(cols) < 3 {
			continue
		}
		id, err := strconv.Atoi(cols[0])
		if err != nil {
			continue
		}
		s := Sprint{ID: id, Name: cols[1], State: cols[2]}
		if len(cols) > 3 {
			s.StartDate = cols[3]
		}
		if len(cols) > 4 {
			s.EndDate = cols[4]
		}
		sprints = append(sprints, s)
	}
	return sprints, nil
}

// AddToSprint puts an issue into a sprint by ID.
func (c *Client) AddToSprint(ctx context.Context, key string, sprintID int) (ActionResult, error) {
	res, err := c.run.Run(ctx, []string{"sprint", "add", strconv.Itoa(sprintID), key}, "")
	if err != nil {
		return ActionResult{}, err
	}
	if res.ExitCode != 0 {
		return ActionResult{}, fmt.Errorf("failed to add %s to sprint %d: %s", key, sprintID, strings.TrimSpace(res.Stderr))
	}
	return ActionResult{
		Key:     key,
		Message: fmt.Sprintf("Successfully added %s to sprint %d", key, sprintID),
	}, nil
}

// RemoveFromSprint moves an issue back to the backlog by clearing its sprint
// custom field.
func (c *Client) RemoveFromSprint(ctx context.Context, key string) (ActionResult, error) {
	res, err := c.run.Run(ctx, []string{"issue", "edit", key, "--custom", "sprint=", "--no-input"}, "")
	if err != nil {
		return ActionResult{}, err
	}
	if res.ExitCode != 0 {
		return ActionResult{}, fmt.Errorf("failed to remove %s from sprint: %s", key, strings.TrimSpace(res.Stderr))
	}
	return ActionResult{
		Key:     key,
		Message: fmt.Sprintf("Successfully removed %s from its sprint", key),
	}, nil
}

// EditTicket applies the requested field edits in a single `jira issue edit`
// call. Asking for no changes is answered with a plain message rather than
// an error so the LLM sees a normal result.
func (c *Client) EditTicket(ctx context.Context, key string, p EditTicketParams) (EditResult, error) {
	args := []string{"issue", "edit", key, "--no-input"}
	var updated []string

	if p.Summary != "" {
		args = append(args, "--summary", p.Summary)
		updated = append(updated, "summary")
	}
	if p.Priority != "" {
		args = append(args, "--priority", p.Priority)
		updated = append(updated, "priority")
	}
	if p.AssigneeSet {
		if p.Assignee == "" {
			// jira-cli convention: "x" unassigns.
			args = append(args, "--assignee", "x")
		} else {
			args = append(args, "--assignee", p.Assignee)
		}
		updated = append(updated, "assignee")
	}

	if len(p.Labels) > 0 {
		for _, label := range p.Labels {
			args = append(args, "--label", label)
		}
		updated = append(updated, "labels")
	}
	if len(p.AddLabels) > 0 {
		for _, label := range p.AddLabels {
			args = append(args, "--label", "+"+label)
		}
		updated = append(updated, "labels (added)")
	}
	if len(p.RemoveLabels) > 0 {
		for _, label := range p.RemoveLabels {
			args = append(args, "--label", "-"+label)
		}
		updated = append(updated, "labels (removed)")
	}

	if len(p.Components) > 0 {
		for _, component := range p.Components {
			args = append(args, "--component", component)
		}
		updated = append(updated, "components")
	}
	if len(p.FixVersions) > 0 {
		for _, v := range p.FixVersions {
			args = append(args, "--fix-version", v)
		}
		updated = append(updated, "fix_versions")
	}
	if p.Parent != "" {
		args = append(args, "--parent", p.Parent)
		updated = append(updated, "parent")
	}
	for _, k := range sortedKeys(p.CustomFields) {
		args = append(args, "--custom", k+"="+p.CustomFields[k])
		updated = append(updated, "custom:"+k)
	}

	if len(updated) == 0 {
		return EditResult{
			Key:     key,
			Message: "No fields specified to update",
		}, nil
	}

	res, err := c.run.Run(ctx, args, "")
	if err != nil {
		return EditResult{}, err
	}
	if res.ExitCode != 0 {
		return EditResult{}, fmt.Errorf("failed to edit ticket %s: %s", key, strings.TrimSpace(res.Stderr))
	}

	return EditResult{
		Key:           key,
		UpdatedFields: updated,
		Message:       fmt.Sprintf("Successfully updated %s: %s", key, strings.Join(updated, ", ")),
	}, nil
}

// splitColumns splits one line of jira-cli plain output on tabs, trimming
// each cell and dropping empties.
func splitColumns(line string) []string {
	var cols []string
	for _, col := range strings.Split(line, "\t") {
		if col = strings.TrimSpace(col); col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}

// sortedKeys keeps --custom ordering deterministic across calls.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
