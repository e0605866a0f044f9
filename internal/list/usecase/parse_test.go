package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"listkeeper/internal/export"
	"listkeeper/internal/list"
	"listkeeper/internal/model"
)

func TestParseCSV(t *testing.T) {
	t.Run("Quoted Cells", func(t *testing.T) {
		raw := "Item Name,Notes\n\"Milk, whole\",\"She said \"\"2%\"\"\"\n"
		items, err := parseCSV(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].Text != "Milk, whole" {
			t.Errorf("expected comma kept inside quotes, got %q", items[0].Text)
		}
		if items[0].Notes != `She said "2%"` {
			t.Errorf("expected doubled quotes unescaped, got %q", items[0].Notes)
		}
	})

	t.Run("Header Synonyms", func(t *testing.T) {
		raw := "name,qty,deadline,done\nMilk,3,2026-03-01,yes\n"
		items, err := parseCSV(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		it := items[0]
		if it.Quantity == nil || *it.Quantity != 3 {
			t.Errorf("expected quantity 3, got %v", it.Quantity)
		}
		if it.DueDate == nil || it.DueDate.Format("2006-01-02") != "2026-03-01" {
			t.Errorf("expected due date parsed, got %v", it.DueDate)
		}
		if !it.Completed {
			t.Error("expected completed from done=yes")
		}
	})

	t.Run("No Header", func(t *testing.T) {
		items, err := parseCSV("Milk\nEggs\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || items[0].Text != "Milk" {
			t.Errorf("expected first column as text, got %+v", items)
		}
	})

	t.Run("Blank Rows Skipped", func(t *testing.T) {
		items, err := parseCSV("Item Name\nMilk\n\n,\nEggs\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("expected 2 items, got %d", len(items))
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := parseCSV("  \n"); !errors.Is(err, list.ErrEmptyImport) {
			t.Errorf("expected ErrEmptyImport, got %v", err)
		}
	})
}

func TestParseTXT(t *testing.T) {
	t.Run("Bullets And Checkboxes", func(t *testing.T) {
		raw := "- [ ] Milk\n- [x] Eggs\n• Bread\nPlain line\n"
		items, err := parseTXT(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 4 {
			t.Fatalf("expected 4 items, got %d", len(items))
		}
		if items[0].Completed || !items[1].Completed {
			t.Errorf("checkbox state wrong: %+v", items[:2])
		}
		if items[3].Text != "Plain line" {
			t.Errorf("expected bare lines kept, got %q", items[3].Text)
		}
	})

	t.Run("Attribute Lines", func(t *testing.T) {
		raw := "- Milk\n  qty: 2\n  priority: high\n  due: 2026-03-01\n  notes: whole\n"
		items, err := parseTXT(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected attribute lines to fold into the item, got %d items", len(items))
		}
		it := items[0]
		if it.Quantity == nil || *it.Quantity != 2 {
			t.Errorf("expected quantity 2, got %v", it.Quantity)
		}
		if it.Priority != model.PriorityHigh {
			t.Errorf("expected high priority, got %q", it.Priority)
		}
		if it.DueDate == nil {
			t.Error("expected due date parsed")
		}
		if it.Notes != "whole" {
			t.Errorf("expected notes whole, got %q", it.Notes)
		}
	})

	t.Run("Quantity Prefix", func(t *testing.T) {
		items, err := parseTXT("12x Eggs\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items[0].Text != "Eggs" {
			t.Errorf("expected prefix stripped, got %q", items[0].Text)
		}
		if items[0].Quantity == nil || *items[0].Quantity != 12 {
			t.Errorf("expected quantity 12, got %v", items[0].Quantity)
		}
	})

	t.Run("Not A Quantity Prefix", func(t *testing.T) {
		items, err := parseTXT("- 2xl shirt\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items[0].Quantity != nil || items[0].Text != "2xl shirt" {
			t.Errorf("expected text untouched, got %+v", items[0])
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := parseTXT("\n  \n"); !errors.Is(err, list.ErrEmptyImport) {
			t.Errorf("expected ErrEmptyImport, got %v", err)
		}
	})
}

func TestExportFilename(t *testing.T) {
	cases := map[string]string{
		"Weekend Plans":   "weekend-plans",
		"  Groceries!!  ": "groceries",
		"éé":    "list",
	}
	for in, want := range cases {
		if got := exportFilename(in); got != want {
			t.Errorf("exportFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

type quietLogger struct{}

func (q *quietLogger) Debug(ctx context.Context, args ...any)                  {}
func (q *quietLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (q *quietLogger) Info(ctx context.Context, args ...any)                   {}
func (q *quietLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (q *quietLogger) Warn(ctx context.Context, args ...any)                   {}
func (q *quietLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (q *quietLogger) Error(ctx context.Context, args ...any)                  {}
func (q *quietLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (q *quietLogger) DPanic(ctx context.Context, args ...any)                 {}
func (q *quietLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (q *quietLogger) Panic(ctx context.Context, args ...any)                  {}
func (q *quietLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (q *quietLogger) Fatal(ctx context.Context, args ...any)                  {}
func (q *quietLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Exported CSV fed back through the import parser reproduces every field.
func TestCSVRoundTrip(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	qty := 2
	src := model.List{
		Title: "Groceries",
		Type:  model.ListTypeCustom,
		Items: []model.Item{
			{
				Text:      "Milk, whole",
				Quantity:  &qty,
				Priority:  model.PriorityHigh,
				DueDate:   &due,
				Notes:     "She said \"2%\"\nkeep cold",
				Assignee:  "alex",
				Completed: true,
			},
			{Text: "Bread"},
		},
	}

	raw := export.New(&quietLogger{}, "").RenderCSV(src)
	items, err := parseCSV(string(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	got := items[0]
	if got.Text != "Milk, whole" {
		t.Errorf("expected text with quoted comma, got %q", got.Text)
	}
	if got.Quantity == nil || *got.Quantity != 2 {
		t.Errorf("expected quantity 2, got %v", got.Quantity)
	}
	if got.Priority != model.PriorityHigh {
		t.Errorf("expected priority high, got %q", got.Priority)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, got.DueDate)
	}
	if got.Notes != "She said \"2%\"\nkeep cold" {
		t.Errorf("expected multi-line notes intact, got %q", got.Notes)
	}
	if got.Assignee != "alex" {
		t.Errorf("expected assignee, got %q", got.Assignee)
	}
	if !got.Completed {
		t.Error("expected completed flag to survive")
	}

	if items[1].Text != "Bread" || items[1].Quantity != nil || items[1].Completed {
		t.Errorf("expected bare second item, got %+v", items[1])
	}
}
