package http

import (
	"time"

	"listkeeper/internal/list"
	"listkeeper/internal/model"
	"listkeeper/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title     string `json:"title"      binding:"required,min=1,max=100"`
	Category  string `json:"category"   binding:"required"`
	Type      string `json:"type"       binding:"required"`
	AccountID string `json:"account_id"`
}

func (r createReq) toInput() list.CreateListInput {
	return list.CreateListInput{
		Title:     r.Title,
		Category:  r.Category,
		Type:      r.Type,
		AccountID: r.AccountID,
	}
}

type updateReq struct {
	ID                string  `json:"-"` // populated from URI param
	Title             *string `json:"title"               binding:"omitempty,min=1,max=100"`
	Category          *string `json:"category"`
	Type              *string `json:"type"`
	Pinned            *bool   `json:"pinned"`
	Archived          *bool   `json:"archived"`
	GuestAccess       *bool   `json:"guest_access"`
	GuestPermission   *string `json:"guest_permission"    binding:"omitempty,oneof=view edit"`
	ShowPurchaserInfo *bool   `json:"show_purchaser_info"`
}

func (r updateReq) toInput() list.UpdateListInput {
	return list.UpdateListInput{
		ID:                r.ID,
		Title:             r.Title,
		Category:          r.Category,
		Type:              r.Type,
		Pinned:            r.Pinned,
		Archived:          r.Archived,
		GuestAccess:       r.GuestAccess,
		GuestPermission:   r.GuestPermission,
		ShowPurchaserInfo: r.ShowPurchaserInfo,
	}
}

type filterReq struct {
	Query           string `form:"q"`
	Category        string `form:"category"`
	Tag             string `form:"tag"`
	IncludeArchived bool   `form:"include_archived"`
}

func (r filterReq) toInput() list.FilterInput {
	return list.FilterInput{
		Query:           r.Query,
		Category:        r.Category,
		Tag:             r.Tag,
		IncludeArchived: r.IncludeArchived,
	}
}

type tagReq struct {
	Tag string `json:"tag" binding:"required,min=1,max=30"`
}

type collaboratorReq struct {
	Email string `json:"email" binding:"required"`
}

type importReq struct {
	Raw      string `json:"raw"      binding:"required"`
	Format   string `json:"format"   binding:"required,oneof=csv txt"`
	Title    string `json:"title"    binding:"required,min=1,max=100"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

func (r importReq) toInput() list.ImportInput {
	return list.ImportInput{
		Raw:      r.Raw,
		Format:   list.ImportFormat(r.Format),
		Title:    r.Title,
		Category: r.Category,
		Type:     r.Type,
	}
}

type importSharedReq struct {
	Token string `json:"token" binding:"required"`
}

type addItemReq struct {
	Text     string     `json:"text"     binding:"required,min=1,max=200"`
	Quantity *int       `json:"quantity"`
	Priority string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate  *time.Time `json:"due_date"`
	Notes    string     `json:"notes"    binding:"max=1000"`
	Assignee string     `json:"assignee"`
	Links    []string   `json:"links"`

	AttrCategory        string  `json:"attr_category"`
	AttrUnit            string  `json:"attr_unit"`
	AttrPrice           float64 `json:"attr_price"`
	AttrQtyNeeded       int     `json:"attr_qty_needed"`
	AttrQtyPurchased    int     `json:"attr_qty_purchased"`
	AttrPurchaseStatus  string  `json:"attr_purchase_status"`
	AttrProductLink     string  `json:"attr_product_link"`
	AttrStatus          string  `json:"attr_status"`
	AttrInspirationLink string  `json:"attr_inspiration_link"`
}

func (r addItemReq) toInput(listID string) list.AddItemInput {
	return list.AddItemInput{
		ListID:              listID,
		Text:                r.Text,
		Quantity:            r.Quantity,
		Priority:            r.Priority,
		DueDate:             r.DueDate,
		Notes:               r.Notes,
		Assignee:            r.Assignee,
		Links:               r.Links,
		AttrCategory:        r.AttrCategory,
		AttrUnit:            r.AttrUnit,
		AttrPrice:           r.AttrPrice,
		AttrQtyNeeded:       r.AttrQtyNeeded,
		AttrQtyPurchased:    r.AttrQtyPurchased,
		AttrPurchaseStatus:  r.AttrPurchaseStatus,
		AttrProductLink:     r.AttrProductLink,
		AttrStatus:          r.AttrStatus,
		AttrInspirationLink: r.AttrInspirationLink,
	}
}

type updateItemReq struct {
	ListID    string     `json:"-"`
	ItemID    string     `json:"-"`
	Text      *string    `json:"text"      binding:"omitempty,min=1,max=200"`
	Quantity  *int       `json:"quantity"`
	Priority  *string    `json:"priority"  binding:"omitempty,oneof=low medium high"`
	DueDate   *time.Time `json:"due_date"`
	ClearDue  bool       `json:"clear_due"`
	Notes     *string    `json:"notes"     binding:"omitempty,max=1000"`
	Assignee  *string    `json:"assignee"`
	Completed *bool      `json:"completed"`
	Links     []string   `json:"links"`
}

func (r updateItemReq) toInput() list.UpdateItemInput {
	return list.UpdateItemInput{
		ListID:    r.ListID,
		ItemID:    r.ItemID,
		Text:      r.Text,
		Quantity:  r.Quantity,
		Priority:  r.Priority,
		DueDate:   r.DueDate,
		ClearDue:  r.ClearDue,
		Notes:     r.Notes,
		Assignee:  r.Assignee,
		Completed: r.Completed,
		Links:     r.Links,
	}
}

type reorderReq struct {
	ItemIDs []string `json:"item_ids" binding:"required,min=1"`
}

type bulkUpdateReq struct {
	ItemIDs   []string `json:"item_ids"  binding:"required,min=1"`
	Completed *bool    `json:"completed"`
	Priority  *string  `json:"priority"  binding:"omitempty,oneof=low medium high"`
}

func (r bulkUpdateReq) toInput(listID string) list.BulkUpdateInput {
	return list.BulkUpdateInput{
		ListID:    listID,
		ItemIDs:   r.ItemIDs,
		Completed: r.Completed,
		Priority:  r.Priority,
	}
}

type bulkDeleteReq struct {
	ItemIDs []string `json:"item_ids" binding:"required,min=1"`
}

type redeemReq struct {
	Code string `json:"code" binding:"required"`
}

// --- Response DTOs ---

type itemResp struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Quantity  *int              `json:"quantity,omitempty"`
	Priority  string            `json:"priority,omitempty"`
	DueDate   *response.Date    `json:"due_date,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	Assignee  string            `json:"assignee,omitempty"`
	Completed bool              `json:"completed"`
	SortOrder int               `json:"sort_order"`
	Links     []string          `json:"links,omitempty"`
	Attrs     map[string]any    `json:"attrs,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:        it.ID,
		Text:      it.Text,
		Quantity:  it.Quantity,
		Priority:  string(it.Priority),
		DueDate:   newDateResp(it.DueDate),
		Notes:     it.Notes,
		Assignee:  it.Assignee,
		Completed: it.Completed,
		SortOrder: it.SortOrder,
		Links:     it.Links,
		Attrs:     it.Attrs.Bag(),
		CreatedAt: response.DateTime(it.CreatedAt),
		UpdatedAt: response.DateTime(it.UpdatedAt),
	}
}

func newDateResp(t *time.Time) *response.Date {
	if t == nil {
		return nil
	}
	d := response.Date(*t)
	return &d
}

type listResp struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Category        string            `json:"category"`
	Type            string            `json:"type"`
	Pinned          bool              `json:"pinned"`
	Archived        bool              `json:"archived"`
	Tags            []string          `json:"tags,omitempty"`
	Collaborators   []string          `json:"collaborators,omitempty"`
	Shared          bool              `json:"shared"`
	GuestAccess     bool              `json:"guest_access"`
	GuestPermission string            `json:"guest_permission,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
	UpdatedAt       response.DateTime `json:"updated_at"`
	Items           []itemResp        `json:"items"`
}

func newListResp(l model.List) listResp {
	items := make([]itemResp, len(l.Items))
	for i, it := range l.Items {
		items[i] = newItemResp(it)
	}
	return listResp{
		ID:              l.ID,
		Title:           l.DisplayTitle(),
		Category:        string(l.Category),
		Type:            string(l.Type),
		Pinned:          l.Pinned,
		Archived:        l.IsArchived(),
		Tags:            l.Tags,
		Collaborators:   l.Collaborators,
		Shared:          l.Shared,
		GuestAccess:     l.GuestAccess,
		GuestPermission: string(l.GuestPermission),
		CreatedAt:       response.DateTime(l.CreatedAt),
		UpdatedAt:       response.DateTime(l.UpdatedAt),
		Items:           items,
	}
}

type listsResp struct {
	Lists []listResp `json:"lists"`
	Total int        `json:"total"`
}

func (h *handler) newListsResp(lists []model.List) listsResp {
	out := make([]listResp, len(lists))
	for i, l := range lists {
		out[i] = newListResp(l)
	}
	return listsResp{Lists: out, Total: len(out)}
}

type stateResp struct {
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

type createResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func newCreateResp(out list.CreateListOutput) createResp {
	return createResp{ID: out.ID, Title: out.Title}
}

type addItemResp struct {
	Item             itemResp `json:"item"`
	DuplicateWarning bool     `json:"duplicate_warning"`
}

func newAddItemResp(out list.AddItemOutput) addItemResp {
	return addItemResp{Item: newItemResp(out.Item), DuplicateWarning: out.DuplicateWarning}
}

type shareResp struct {
	URL string `json:"url"`
}
