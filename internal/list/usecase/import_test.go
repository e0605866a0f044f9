package usecase_test

import (
	"context"
	"errors"
	"testing"

	"listkeeper/internal/list"
	"listkeeper/internal/model"
)

func TestImportList(t *testing.T) {
	ctx := context.Background()

	t.Run("Free Tier Gate", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUC(t, repo, model.TierFree)

		_, err := uc.ImportList(ctx, list.ImportInput{Raw: "Milk", Format: list.ImportCSV, Title: "Import"})
		if !errors.Is(err, list.ErrImportNotAllowed) {
			t.Fatalf("expected ErrImportNotAllowed, got %v", err)
		}
	})

	t.Run("CSV With Header", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUC(t, repo, model.TierGood)

		raw := "Item Name,Quantity,Priority,Notes\n\"Milk\",2,high,\"Whole, not skim\"\nBread,1,,\n"
		out, err := uc.ImportList(ctx, list.ImportInput{Raw: raw, Format: list.ImportCSV, Title: "Shopping"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := uc.GetList(out.ID)
		if err != nil {
			t.Fatalf("imported list missing from snapshot: %v", err)
		}
		if len(got.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(got.Items))
		}
		milk := got.Items[0]
		if milk.Text != "Milk" {
			t.Errorf("expected first item Milk, got %q", milk.Text)
		}
		if milk.Quantity == nil || *milk.Quantity != 2 {
			t.Errorf("expected quantity 2, got %v", milk.Quantity)
		}
		if milk.Priority != model.PriorityHigh {
			t.Errorf("expected high priority, got %q", milk.Priority)
		}
		if milk.Notes != "Whole, not skim" {
			t.Errorf("expected quoted comma preserved, got %q", milk.Notes)
		}
	})

	t.Run("CSV Without Header", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUC(t, repo, model.TierGood)

		out, err := uc.ImportList(ctx, list.ImportInput{Raw: "Milk\nEggs\nBread\n", Format: list.ImportCSV, Title: "Basics"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := uc.GetList(out.ID)
		if len(got.Items) != 3 {
			t.Errorf("expected 3 items, got %d", len(got.Items))
		}
	})

	t.Run("TXT Bullets", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUC(t, repo, model.TierGood)

		raw := "- [x] 2x Milk\n  priority: high\n- Eggs\n* Bread\n"
		out, err := uc.ImportList(ctx, list.ImportInput{Raw: raw, Format: list.ImportTXT, Title: "From Notes"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := uc.GetList(out.ID)
		if len(got.Items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(got.Items))
		}
		milk := got.Items[0]
		if milk.Text != "Milk" || !milk.Completed {
			t.Errorf("expected completed Milk, got %+v", milk)
		}
		if milk.Quantity == nil || *milk.Quantity != 2 {
			t.Errorf("expected quantity 2 from prefix, got %v", milk.Quantity)
		}
		if milk.Priority != model.PriorityHigh {
			t.Errorf("expected high priority from attribute line, got %q", milk.Priority)
		}
	})

	t.Run("Empty Payload", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUC(t, repo, model.TierGood)

		_, err := uc.ImportList(ctx, list.ImportInput{Raw: "\n\n", Format: list.ImportCSV, Title: "Empty"})
		if !errors.Is(err, list.ErrEmptyImport) {
			t.Fatalf("expected ErrEmptyImport, got %v", err)
		}
		if repo.createListCalls != 0 {
			t.Errorf("expected no list created for empty import, got %d", repo.createListCalls)
		}
	})

	t.Run("Unknown Format", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUC(t, repo, model.TierGood)

		_, err := uc.ImportList(ctx, list.ImportInput{Raw: "Milk", Format: "xlsx", Title: "Nope"})
		if !errors.Is(err, list.ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("Item Limit Checked Before Write", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUC(t, repo, model.TierGood)

		raw := ""
		for i := 0; i < 151; i++ {
			raw += "Row\n"
		}
		_, err := uc.ImportList(ctx, list.ImportInput{Raw: raw, Format: list.ImportCSV, Title: "Big"})
		if !errors.Is(err, list.ErrItemLimitReached) {
			t.Fatalf("expected ErrItemLimitReached, got %v", err)
		}
		if repo.createListCalls != 0 {
			t.Errorf("expected no partial list behind a rejected import, got %d creates", repo.createListCalls)
		}
	})
}

func TestExportList(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{lists: []model.List{{
		ID: "list-1", OwnerID: "user-1", Title: "Weekend Plans",
		Category: model.CategoryHome, Type: model.ListTypeCustom,
	}}}
	uc := newTestUC(t, repo, model.TierFree)

	cases := []struct {
		format   list.ExportFormat
		filename string
		mime     string
		data     string
	}{
		{list.ExportCSV, "weekend-plans.csv", "text/csv", "csv-data"},
		{list.ExportTXT, "weekend-plans.txt", "text/plain", "txt-data"},
		{list.ExportPDF, "weekend-plans.pdf", "application/pdf", "pdf-data"},
	}
	for _, tc := range cases {
		out, err := uc.ExportList(ctx, "list-1", tc.format)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.format, err)
		}
		if out.Filename != tc.filename {
			t.Errorf("%s: expected filename %q, got %q", tc.format, tc.filename, out.Filename)
		}
		if out.MIMEType != tc.mime {
			t.Errorf("%s: expected MIME %q, got %q", tc.format, tc.mime, out.MIMEType)
		}
		if string(out.Data) != tc.data {
			t.Errorf("%s: unexpected payload %q", tc.format, out.Data)
		}
	}

	if _, err := uc.ExportList(ctx, "list-1", "docx"); !errors.Is(err, list.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := uc.ExportList(ctx, "missing", list.ExportCSV); !errors.Is(err, list.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}
