package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// ticketKeyPattern matches Jira issue keys: an uppercase project key followed
// by a numeric suffix, e.g. PROJ-123.
var ticketKeyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*-[0-9]+$`)

// ValidateTicketKey checks that key looks like a Jira issue key before it is
// placed on a jira-cli command line. Returns nil if valid, or an error
// describing the problem.
func ValidateTicketKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("ticket key is empty")
	}
	if !ticketKeyPattern.MatchString(key) {
		return fmt.Errorf("ticket key %q does not match the expected form PROJ-123", key)
	}
	return nil
}

// ValidateProjectKey checks a bare project key (the part before the dash).
func ValidateProjectKey(project string) error {
	project = strings.TrimSpace(project)
	if project == "" {
		return fmt.Errorf("project key is empty")
	}
	for _, r := range project {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("project key %q may only contain uppercase letters and digits", project)
		}
	}
	return nil
}

// QuoteJQLValue wraps a value for use inside a JQL string literal, escaping
// embedded quotes so a status like `Won"t Fix` cannot break out of the
// expression.
func QuoteJQLValue(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}
