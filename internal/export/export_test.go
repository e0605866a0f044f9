package export

import (
	"context"
	"strings"
	"testing"
	"time"

	"listkeeper/internal/model"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func sampleList() model.List {
	qty := 2
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return model.List{
		Title:    "Weekend Plans",
		Category: model.CategoryHome,
		Type:     model.ListTypeGrocery,
		Items: []model.Item{
			{
				Text:     "Milk",
				Quantity: &qty,
				Priority: model.PriorityHigh,
				DueDate:  &due,
				Notes:    `Whole, "not" skim`,
				Attrs:    model.ItemAttrs{Grocery: &model.GroceryAttrs{Category: "Dairy"}},
			},
			{Text: "Eggs", Completed: true},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	r := New(noopLogger{}, "")
	got := string(r.RenderCSV(sampleList()))

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != `"Item Name","Quantity","Priority","Due Date","Notes","Completed","Assignee","Category","Links"` {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != `"Milk","2","high","2026-03-01","Whole, ""not"" skim","false","","Dairy",""` {
		t.Errorf("unexpected milk row: %s", lines[1])
	}
	if lines[2] != `"Eggs","","","","","true","","",""` {
		t.Errorf("unexpected eggs row: %s", lines[2])
	}
}

func TestRenderTXT(t *testing.T) {
	r := New(noopLogger{}, "")
	got := string(r.RenderTXT(sampleList()))

	for _, want := range []string{
		"Weekend Plans\n=============\n",
		"- [ ] 2x Milk\n",
		"    priority: high\n",
		"    due: 2026-03-01\n",
		"- [x] Eggs\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "assignee:") {
		t.Error("did not expect an assignee line for unassigned items")
	}
}

func TestRenderHTMLEscapes(t *testing.T) {
	l := sampleList()
	l.Items[0].Text = "<script>alert(1)</script>"
	html, err := renderHTML(l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("expected item text to be escaped")
	}
	if !strings.Contains(html, "Weekend Plans") {
		t.Error("expected title in output")
	}
}
