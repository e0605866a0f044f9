package repository

import (
	"time"

	"listkeeper/internal/model"
)

// CreateListOptions holds parameters for inserting a new List.
type CreateListOptions struct {
	ID        string // client-generated UUID
	OwnerID   string
	AccountID string
	Title     string
	Category  model.Category
	Type      model.ListType
}

// UpdateListOptions holds a whitelist partial update; nil fields are not
// forwarded. Every update bumps updated_at server-side.
type UpdateListOptions struct {
	Title             *string
	Category          *model.Category
	Type              *model.ListType
	Pinned            *bool
	Archived          *bool
	Tags              *[]string
	Collaborators     *[]string
	ShareToken        *string
	Shared            *bool
	GuestAccess       *bool
	GuestPermission   *model.GuestPermission
	ShowPurchaserInfo *bool
}

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	ID        string // client-generated UUID
	ListID    string
	Text      string
	Quantity  *int
	Priority  model.Priority
	DueDate   *time.Time
	Notes     string
	Assignee  string
	Completed bool
	SortOrder int
	Links     []string
	Attrs     model.ItemAttrs
}

// UpdateItemOptions holds a partial item update; nil fields are not
// forwarded.
type UpdateItemOptions struct {
	Text      *string
	Quantity  *int
	Priority  *model.Priority
	DueDate   *time.Time
	ClearDue  bool
	Notes     *string
	Assignee  *string
	Completed *bool
	SortOrder *int
	Links     *[]string
	Attrs     *model.ItemAttrs
}
