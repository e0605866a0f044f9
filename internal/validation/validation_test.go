package validation_test

import (
	"strings"
	"testing"

	"listkeeper/internal/policy"
	"listkeeper/internal/validation"
)

func TestListTitle(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"valid", "Groceries", "Groceries", false},
		{"trims whitespace", "  Weekend Plans  ", "Weekend Plans", false},
		{"empty", "", "", true},
		{"whitespace only", "   \t ", "", true},
		{"exactly max length", strings.Repeat("a", validation.MaxListTitleLen), strings.Repeat("a", validation.MaxListTitleLen), false},
		{"one over max length", strings.Repeat("a", validation.MaxListTitleLen+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ListTitle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItemText(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", "Milk", false},
		{"empty", "", true},
		{"whitespace only", "  ", true},
		{"exactly max", strings.Repeat("x", validation.MaxItemTextLen), false},
		{"one over max", strings.Repeat("x", validation.MaxItemTextLen+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := validation.ItemText(tt.in); (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestListCategory(t *testing.T) {
	if _, err := validation.ListCategory("Tasks"); err != nil {
		t.Errorf("Tasks should be valid: %v", err)
	}
	if _, err := validation.ListCategory("Miscellany"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"User@Example.COM ", "user@example.com", false},
		{"plain@host.io", "plain@host.io", false},
		{"not-an-email", "", true},
		{"@missing.local", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := validation.Email(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Email(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuantity(t *testing.T) {
	pos, zero, neg := 3, 0, -1
	if err := validation.Quantity(nil); err != nil {
		t.Errorf("nil quantity should pass: %v", err)
	}
	if err := validation.Quantity(&pos); err != nil {
		t.Errorf("positive quantity should pass: %v", err)
	}
	if err := validation.Quantity(&zero); err == nil {
		t.Error("zero quantity should fail")
	}
	if err := validation.Quantity(&neg); err == nil {
		t.Error("negative quantity should fail")
	}
}

func TestNotesStripsControlCharacters(t *testing.T) {
	got, err := validation.Notes("line one\nline\ttwo\x00\x07bell")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "line one\nline\ttwobell" {
		t.Errorf("unexpected sanitized notes: %q", got)
	}

	if _, err := validation.Notes(strings.Repeat("n", validation.MaxNotesLen+1)); err == nil {
		t.Error("over-length notes should fail")
	}
}

func TestTag(t *testing.T) {
	if got, err := validation.Tag("  urgent "); err != nil || got != "urgent" {
		t.Errorf("Tag = %q, %v", got, err)
	}
	if _, err := validation.Tag("   "); err == nil {
		t.Error("blank tag should fail")
	}
	if _, err := validation.Tag(strings.Repeat("t", validation.MaxTagLen+1)); err == nil {
		t.Error("over-length tag should fail")
	}
}

func TestLimitChecks(t *testing.T) {
	if err := validation.CheckListLimit(4, 5); err != nil {
		t.Errorf("under limit should pass: %v", err)
	}
	if err := validation.CheckListLimit(5, 5); err == nil {
		t.Error("at limit should fail")
	}
	if err := validation.CheckListLimit(10_000, policy.Unlimited); err != nil {
		t.Errorf("unlimited sentinel should pass: %v", err)
	}
	if err := validation.CheckItemLimit(20, 20); err == nil {
		t.Error("at item limit should fail")
	}
	if err := validation.CheckItemLimit(499, 500); err != nil {
		t.Errorf("under item limit should pass: %v", err)
	}
}
