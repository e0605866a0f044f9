package list

import (
	"time"

	"listkeeper/internal/model"
)

// LoadState is the snapshot load cycle state.
type LoadState string

const (
	StateIdle    LoadState = "idle"
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateError   LoadState = "error"
)

// ImportFormat selects the import parser.
type ImportFormat string

const (
	ImportCSV ImportFormat = "csv"
	ImportTXT ImportFormat = "txt"
)

// ExportFormat selects the export renderer.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportTXT ExportFormat = "txt"
	ExportPDF ExportFormat = "pdf"
)

// --- UseCase Inputs ---

type CreateListInput struct {
	Title     string
	Category  string
	Type      string
	AccountID string // optional team-account ownership
}

// UpdateListInput is a whitelist partial update; nil fields are untouched.
type UpdateListInput struct {
	ID                string
	Title             *string
	Category          *string
	Type              *string
	Pinned            *bool
	Archived          *bool
	GuestAccess       *bool
	GuestPermission   *string
	ShowPurchaserInfo *bool
}

type AddItemInput struct {
	ListID   string
	Text     string
	Quantity *int
	Priority string
	DueDate  *time.Time
	Notes    string
	Assignee string
	Links    []string

	// Type-specific fields, consulted per the parent list's type.
	AttrCategory        string
	AttrUnit            string
	AttrPrice           float64
	AttrQtyNeeded       int
	AttrQtyPurchased    int
	AttrPurchaseStatus  string
	AttrProductLink     string
	AttrStatus          string
	AttrInspirationLink string
}

// UpdateItemInput is a partial item update; nil fields are untouched.
type UpdateItemInput struct {
	ListID    string
	ItemID    string
	Text      *string
	Quantity  *int
	Priority  *string
	DueDate   *time.Time
	ClearDue  bool
	Notes     *string
	Assignee  *string
	Completed *bool
	Links     []string
}

// BulkUpdateInput supports completion and priority only; other fields
// require individual edits.
type BulkUpdateInput struct {
	ListID    string
	ItemIDs   []string
	Completed *bool
	Priority  *string
}

type ImportInput struct {
	Raw      string
	Format   ImportFormat
	Title    string
	Category string
	Type     string
}

type FilterInput struct {
	Query           string
	Category        string
	Tag             string
	IncludeArchived bool
}

// --- UseCase Outputs ---

type CreateListOutput struct {
	ID    string
	Title string
}

type AddItemOutput struct {
	Item model.Item
	// DuplicateWarning is advisory: set when another item in the list shares
	// the same text (case-insensitive). The write proceeds regardless.
	DuplicateWarning bool
}

type ExportOutput struct {
	Data     []byte
	Filename string
	MIMEType string
}
