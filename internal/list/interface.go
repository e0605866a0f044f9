package list

import (
	"context"

	"listkeeper/internal/model"
)

// Identity supplies the signed-in user to the store. Implemented by the
// session manager.
type Identity interface {
	UserID() string
	Tier() model.Tier
	AccessToken() string
}

// UseCase is the single source of truth for the signed-in user's lists and
// items, and the only component permitted to write to backend tables.
// Every mutation follows validate → check limits/uniqueness → write →
// reload; the snapshot is always replaced wholesale, never patched.
type UseCase interface {
	// Snapshot lifecycle
	Load(ctx context.Context) error
	RetryLoad(ctx context.Context) error
	State() LoadState
	LoadError() error
	Snapshot() []model.List
	GetList(id string) (model.List, error)
	FilterLists(input FilterInput) []model.List
	HandleChange(ctx context.Context, ev model.ChangeEvent)

	// List mutations
	CreateList(ctx context.Context, input CreateListInput) (CreateListOutput, error)
	UpdateList(ctx context.Context, input UpdateListInput) error
	DeleteList(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) error
	AddTag(ctx context.Context, id, tag string) error
	RemoveTag(ctx context.Context, id, tag string) error
	AddCollaborator(ctx context.Context, id, email string) error

	// Item mutations
	AddItem(ctx context.Context, input AddItemInput) (AddItemOutput, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) error
	DeleteItem(ctx context.Context, listID, itemID string) error
	BulkDeleteItems(ctx context.Context, listID string, itemIDs []string) error
	BulkUpdateItems(ctx context.Context, input BulkUpdateInput) error
	ToggleItemCompleted(ctx context.Context, listID, itemID string) error
	ReorderItems(ctx context.Context, listID string, orderedIDs []string) error

	// Sharing and import/export
	GenerateShareLink(ctx context.Context, listID string) (string, error)
	UnshareList(ctx context.Context, listID string) error
	ImportList(ctx context.Context, input ImportInput) (CreateListOutput, error)
	ImportFromShareLink(ctx context.Context, token string) (CreateListOutput, error)
	ExportList(ctx context.Context, listID string, format ExportFormat) (ExportOutput, error)

	// Templates
	InstantiateTemplate(ctx context.Context, templateID string) (CreateListOutput, error)
	RedeemTemplateCode(ctx context.Context, code string) error
}
