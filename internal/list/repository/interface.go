package repository

import (
	"context"

	"listkeeper/internal/model"
)

// Repository is the composed interface for the list domain data store.
type Repository interface {
	ListRepository
	ItemRepository
	TemplateRepository
}

// ListRepository defines data access for the List entity.
type ListRepository interface {
	// ListLists returns the user's lists without items.
	ListLists(ctx context.Context, ownerID string) ([]model.List, error)
	// GetListByShareToken resolves a shared list (without items) by token.
	GetListByShareToken(ctx context.Context, token string) (model.List, error)
	CreateList(ctx context.Context, opt CreateListOptions) (model.List, error)
	UpdateList(ctx context.Context, id string, opt UpdateListOptions) error
	DeleteList(ctx context.Context, id string) error
}

// ItemRepository defines data access for the Item entity.
type ItemRepository interface {
	// ListItems returns all items belonging to the given lists, ordered by
	// sort_order. The parent lists are passed whole because decoding each
	// item's attribute bag needs the list's type.
	ListItems(ctx context.Context, lists []model.List) ([]model.Item, error)
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	CreateItemsBatch(ctx context.Context, opts []CreateItemOptions) ([]model.Item, error)
	UpdateItem(ctx context.Context, id string, opt UpdateItemOptions) error
	DeleteItem(ctx context.Context, id string) error
	DeleteItemsBatch(ctx context.Context, ids []string) error
}

// TemplateRepository covers the backend's template RPC procedures.
type TemplateRepository interface {
	InstantiateTemplate(ctx context.Context, templateID, ownerID string) (model.List, error)
	RedeemTemplateCode(ctx context.Context, code, ownerID string) error
}
