package validation

import (
	"testing"
)

func TestValidateTicketKey(t *testing.T) {
	t.Run("valid keys", func(t *testing.T) {
		for _, key := range []string{"PROJ-123", "A-1", "AB2C-9999", "X9-42"} {
			if err := ValidateTicketKey(key); err != nil {
				t.Errorf("expected %q to be valid, got error: %v", key, err)
			}
		}
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		if err := ValidateTicketKey("  PROJ-123  "); err != nil {
			t.Errorf("expected trimmed key to be valid, got error: %v", err)
		}
	})

	t.Run("empty key", func(t *testing.T) {
		err := ValidateTicketKey("")
		if err == nil || err.Error() != "ticket key is empty" {
			t.Errorf("expected 'ticket key is empty', got: %v", err)
		}
	})

	t.Run("invalid keys", func(t *testing.T) {
		for _, key := range []string{"proj-123", "PROJ", "PROJ-", "-123", "PROJ-abc", "1PROJ-1", "PROJ 123"} {
			if err := ValidateTicketKey(key); err == nil {
				t.Errorf("expected %q to be rejected", key)
			}
		}
	})
}

func TestValidateProjectKey(t *testing.T) {
	t.Run("valid projects", func(t *testing.T) {
		for _, p := range []string{"PROJ", "AB2", "X"} {
			if err := ValidateProjectKey(p); err != nil {
				t.Errorf("expected %q to be valid, got error: %v", p, err)
			}
		}
	})

	t.Run("empty project", func(t *testing.T) {
		if err := ValidateProjectKey("  "); err == nil {
			t.Error("expected empty project to be rejected")
		}
	})

	t.Run("invalid characters", func(t *testing.T) {
		for _, p := range []string{"proj", "PR OJ", "PR-OJ", "PRØJ"} {
			if err := ValidateProjectKey(p); err == nil {
				t.Errorf("expected %q to be rejected", p)
			}
		}
	})
}

func TestQuoteJQLValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"In Progress", `"In Progress"`},
		{`Won"t Fix`, `"Won\"t Fix"`},
		{"", `""`},
	}

	for _, tt := range tests {
		if got := QuoteJQLValue(tt.in); got != tt.want {
			t.Errorf("QuoteJQLValue(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
