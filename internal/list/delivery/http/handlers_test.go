package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"listkeeper/internal/list"
	listHTTP "listkeeper/internal/list/delivery/http"
	"listkeeper/internal/model"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockUseCase implements list.UseCase with canned outputs.
type mockUseCase struct {
	state     list.LoadState
	loadErr   error
	snapshot  []model.List
	createOut list.CreateListOutput
	createErr error
	addOut    list.AddItemOutput
	addErr    error
	exportOut list.ExportOutput
	exportErr error
	shareURL  string
	shareErr  error

	createInput list.CreateListInput
	addInput    list.AddItemInput
}

func (m *mockUseCase) Load(ctx context.Context) error      { return nil }
func (m *mockUseCase) RetryLoad(ctx context.Context) error { return m.loadErr }
func (m *mockUseCase) State() list.LoadState               { return m.state }
func (m *mockUseCase) LoadError() error                    { return m.loadErr }
func (m *mockUseCase) Snapshot() []model.List              { return m.snapshot }
func (m *mockUseCase) GetList(id string) (model.List, error) {
	for _, l := range m.snapshot {
		if l.ID == id {
			return l, nil
		}
	}
	return model.List{}, list.ErrListNotFound
}
func (m *mockUseCase) FilterLists(input list.FilterInput) []model.List { return m.snapshot }
func (m *mockUseCase) HandleChange(ctx context.Context, ev model.ChangeEvent) {}

func (m *mockUseCase) CreateList(ctx context.Context, input list.CreateListInput) (list.CreateListOutput, error) {
	m.createInput = input
	return m.createOut, m.createErr
}
func (m *mockUseCase) UpdateList(ctx context.Context, input list.UpdateListInput) error { return nil }
func (m *mockUseCase) DeleteList(ctx context.Context, id string) error                  { return nil }
func (m *mockUseCase) TogglePin(ctx context.Context, id string) error                   { return nil }
func (m *mockUseCase) AddTag(ctx context.Context, id, tag string) error                 { return nil }
func (m *mockUseCase) RemoveTag(ctx context.Context, id, tag string) error              { return nil }
func (m *mockUseCase) AddCollaborator(ctx context.Context, id, email string) error      { return nil }

func (m *mockUseCase) AddItem(ctx context.Context, input list.AddItemInput) (list.AddItemOutput, error) {
	m.addInput = input
	return m.addOut, m.addErr
}
func (m *mockUseCase) UpdateItem(ctx context.Context, input list.UpdateItemInput) error { return nil }
func (m *mockUseCase) DeleteItem(ctx context.Context, listID, itemID string) error      { return nil }
func (m *mockUseCase) BulkDeleteItems(ctx context.Context, listID string, itemIDs []string) error {
	return nil
}
func (m *mockUseCase) BulkUpdateItems(ctx context.Context, input list.BulkUpdateInput) error {
	return nil
}
func (m *mockUseCase) ToggleItemCompleted(ctx context.Context, listID, itemID string) error {
	return nil
}
func (m *mockUseCase) ReorderItems(ctx context.Context, listID string, orderedIDs []string) error {
	return nil
}

func (m *mockUseCase) GenerateShareLink(ctx context.Context, listID string) (string, error) {
	return m.shareURL, m.shareErr
}
func (m *mockUseCase) UnshareList(ctx context.Context, listID string) error { return nil }
func (m *mockUseCase) ImportList(ctx context.Context, input list.ImportInput) (list.CreateListOutput, error) {
	return m.createOut, m.createErr
}
func (m *mockUseCase) ImportFromShareLink(ctx context.Context, token string) (list.CreateListOutput, error) {
	return m.createOut, m.createErr
}
func (m *mockUseCase) ExportList(ctx context.Context, listID string, format list.ExportFormat) (list.ExportOutput, error) {
	return m.exportOut, m.exportErr
}

func (m *mockUseCase) InstantiateTemplate(ctx context.Context, templateID string) (list.CreateListOutput, error) {
	return m.createOut, m.createErr
}
func (m *mockUseCase) RedeemTemplateCode(ctx context.Context, code string) error { return nil }

// ── Helpers ────────────────────────────────────────────────────────────────

func newTestRouter(uc list.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := listHTTP.New(&mockLogger{}, uc)

	r := gin.New()
	r.GET("/lists", h.Lists)
	r.GET("/lists/state", h.State)
	r.POST("/lists", h.Create)
	r.POST("/lists/import", h.Import)
	r.GET("/lists/:id", h.Detail)
	r.POST("/lists/:id/share", h.Share)
	r.GET("/lists/:id/export", h.Export)
	r.POST("/lists/:id/items", h.AddItem)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestCreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{createOut: list.CreateListOutput{ID: "list-1", Title: "Groceries"}}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/lists", gin.H{
			"title":    "Groceries",
			"category": "shopping",
			"type":     "grocery",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.createInput.Title != "Groceries" || uc.createInput.Type != "grocery" {
			t.Errorf("unexpected input: %+v", uc.createInput)
		}
		if !strings.Contains(w.Body.String(), "list-1") {
			t.Errorf("response missing created id: %s", w.Body.String())
		}
	})

	t.Run("Missing Title Rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/lists", gin.H{"category": "shopping", "type": "custom"})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("List Limit Maps To 403", func(t *testing.T) {
		uc := &mockUseCase{createErr: list.ErrListLimitReached}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/lists", gin.H{
			"title":    "One Too Many",
			"category": "other",
			"type":     "custom",
		})

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("Duplicate Title Maps To 409", func(t *testing.T) {
		uc := &mockUseCase{createErr: list.ErrDuplicateTitle}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/lists", gin.H{
			"title":    "Groceries",
			"category": "other",
			"type":     "custom",
		})

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestDetailHandler(t *testing.T) {
	t.Run("Formats Timestamps", func(t *testing.T) {
		due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		uc := &mockUseCase{snapshot: []model.List{{
			ID:        "list-1",
			Title:     "Groceries",
			CreatedAt: time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
			Items: []model.Item{{
				ID:      "item-1",
				Text:    "Milk",
				DueDate: &due,
			}},
		}}}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/lists/list-1", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if !regexp.MustCompile(`"created_at":"\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}"`).MatchString(body) {
			t.Errorf("expected datetime-formatted created_at, got %s", body)
		}
		if !regexp.MustCompile(`"due_date":"\d{4}-\d{2}-\d{2}"`).MatchString(body) {
			t.Errorf("expected date-formatted due_date, got %s", body)
		}
	})

	t.Run("Unknown List Maps To 404", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/lists/nope", nil)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAddItemHandler(t *testing.T) {
	t.Run("Duplicate Warning Surfaced", func(t *testing.T) {
		uc := &mockUseCase{addOut: list.AddItemOutput{
			Item:             model.Item{ID: "item-1", Text: "Milk"},
			DuplicateWarning: true,
		}}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/lists/list-1/items", gin.H{"text": "Milk"})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.addInput.ListID != "list-1" {
			t.Errorf("expected list id from path, got %q", uc.addInput.ListID)
		}
		if !strings.Contains(w.Body.String(), `"duplicate_warning":true`) {
			t.Errorf("expected duplicate warning in body: %s", w.Body.String())
		}
	})

	t.Run("Item Limit Maps To 403", func(t *testing.T) {
		uc := &mockUseCase{addErr: list.ErrItemLimitReached}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/lists/list-1/items", gin.H{"text": "Milk"})

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestShareHandler(t *testing.T) {
	t.Run("Returns URL", func(t *testing.T) {
		uc := &mockUseCase{shareURL: "https://listkeeper.app/shared/abc"}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/lists/list-1/share", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "https://listkeeper.app/shared/abc") {
			t.Errorf("expected share url in body: %s", w.Body.String())
		}
	})

	t.Run("Free Tier Maps To 403", func(t *testing.T) {
		uc := &mockUseCase{shareErr: list.ErrSharingNotAllowed}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/lists/list-1/share", nil)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestExportHandler(t *testing.T) {
	t.Run("Streams File With Headers", func(t *testing.T) {
		uc := &mockUseCase{exportOut: list.ExportOutput{
			Filename: "groceries.csv",
			MIMEType: "text/csv",
			Data:     []byte("\"Item Name\"\n\"Milk\"\n"),
		}}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/lists/list-1/export?format=csv", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != "text/csv" {
			t.Errorf("expected text/csv, got %q", got)
		}
		if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "groceries.csv") {
			t.Errorf("expected filename in disposition, got %q", got)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Milk")) {
			t.Errorf("expected raw payload in body")
		}
	})

	t.Run("Unsupported Format Rejected", func(t *testing.T) {
		uc := &mockUseCase{exportErr: list.ErrUnsupportedFormat}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/lists/list-1/export?format=docx", nil)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestStateHandler(t *testing.T) {
	uc := &mockUseCase{state: list.StateReady}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/lists/state", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"state":"ready"`) {
		t.Errorf("expected ready state in body: %s", w.Body.String())
	}
}
