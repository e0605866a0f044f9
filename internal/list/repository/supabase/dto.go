package supabase

import (
	"time"

	"listkeeper/internal/model"
)

// listRow mirrors the backend lists table.
type listRow struct {
	ID                string         `json:"id"`
	OwnerID           string         `json:"owner_id"`
	AccountID         *string        `json:"account_id,omitempty"`
	Title             string         `json:"title"`
	Category          string         `json:"category"`
	Type              string         `json:"list_type"`
	Pinned            bool           `json:"pinned"`
	Archived          bool           `json:"archived"`
	Tags              []string       `json:"tags"`
	Collaborators     []string       `json:"collaborators"`
	ShareToken        *string        `json:"share_token,omitempty"`
	Shared            bool           `json:"shared"`
	GuestAccess       bool           `json:"guest_access"`
	GuestPermission   string         `json:"guest_permission"`
	ShowPurchaserInfo bool           `json:"show_purchaser_info"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (r listRow) toModel() model.List {
	l := model.List{
		ID:                r.ID,
		OwnerID:           r.OwnerID,
		Title:             r.Title,
		Category:          model.Category(r.Category),
		Type:              model.ListType(r.Type),
		Pinned:            r.Pinned,
		Archived:          r.Archived,
		Tags:              r.Tags,
		Collaborators:     r.Collaborators,
		Shared:            r.Shared,
		GuestAccess:       r.GuestAccess,
		GuestPermission:   model.GuestPermission(r.GuestPermission),
		ShowPurchaserInfo: r.ShowPurchaserInfo,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.AccountID != nil {
		l.AccountID = *r.AccountID
	}
	if r.ShareToken != nil {
		l.ShareToken = *r.ShareToken
	}
	return l
}

// itemRow mirrors the backend list_items table. The attribute bag stays raw
// until the parent list's type is known.
type itemRow struct {
	ID        string         `json:"id"`
	ListID    string         `json:"list_id"`
	Text      string         `json:"text"`
	Quantity  *int           `json:"quantity,omitempty"`
	Priority  string         `json:"priority"`
	DueDate   *time.Time     `json:"due_date,omitempty"`
	Notes     string         `json:"notes"`
	Assignee  string         `json:"assignee"`
	Completed bool           `json:"completed"`
	SortOrder int            `json:"sort_order"`
	Links     []string       `json:"links"`
	Attrs     map[string]any `json:"attrs,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (r itemRow) toModel(listType model.ListType) model.Item {
	return model.Item{
		ID:        r.ID,
		ListID:    r.ListID,
		Text:      r.Text,
		Quantity:  r.Quantity,
		Priority:  model.Priority(r.Priority),
		DueDate:   r.DueDate,
		Notes:     r.Notes,
		Assignee:  r.Assignee,
		Completed: r.Completed,
		SortOrder: r.SortOrder,
		Links:     r.Links,
		Attrs:     model.AttrsFromBag(listType, r.Attrs),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
