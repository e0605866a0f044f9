package supabase

import (
	"context"
	"errors"
	"time"

	"listkeeper/internal/list/repository"
	"listkeeper/internal/model"
	"listkeeper/pkg/backend"
)

// ListItems fetches all items belonging to the given lists in one read,
// ordered by sort_order. The parent list's type drives attribute decoding.
func (r *implRepository) ListItems(ctx context.Context, lists []model.List) ([]model.Item, error) {
	if len(lists) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(lists))
	typeByList := make(map[string]model.ListType, len(lists))
	for _, l := range lists {
		ids = append(ids, l.ID)
		typeByList[l.ID] = l.Type
	}

	var rows []itemRow
	err := r.db().Select(ctx, model.TableListItems, backend.Query{
		In:    map[string][]string{"list_id": ids},
		Order: "sort_order",
	}, &rows)
	if err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.ListItems: %v", err)
		return nil, errors.Join(repository.ErrFailedToList, err)
	}

	items := make([]model.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel(typeByList[row.ListID]))
	}
	return items, nil
}

// CreateItem inserts a single item row.
func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	items, err := r.CreateItemsBatch(ctx, []repository.CreateItemOptions{opt})
	if err != nil {
		return model.Item{}, err
	}
	if len(items) == 0 {
		return model.Item{}, repository.ErrFailedToInsert
	}
	return items[0], nil
}

// CreateItemsBatch inserts all items in one backend write.
func (r *implRepository) CreateItemsBatch(ctx context.Context, opts []repository.CreateItemOptions) ([]model.Item, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	rows := make([]map[string]any, 0, len(opts))
	for _, opt := range opts {
		row := map[string]any{
			"id":         opt.ID,
			"list_id":    opt.ListID,
			"text":       opt.Text,
			"priority":   string(opt.Priority),
			"notes":      opt.Notes,
			"assignee":   opt.Assignee,
			"completed":  opt.Completed,
			"sort_order": opt.SortOrder,
			"links":      opt.Links,
		}
		if opt.Quantity != nil {
			row["quantity"] = *opt.Quantity
		}
		if opt.DueDate != nil {
			row["due_date"] = opt.DueDate.UTC().Format(time.RFC3339)
		}
		if bag := opt.Attrs.Bag(); bag != nil {
			row["attrs"] = bag
		}
		rows = append(rows, row)
	}

	var created []itemRow
	if err := r.db().Insert(ctx, model.TableListItems, rows, &created); err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.CreateItemsBatch: %v", err)
		return nil, errors.Join(repository.ErrFailedToInsert, err)
	}

	// Created rows decode with the attrs the caller supplied; the raw bag is
	// re-typed on the next snapshot load.
	items := make([]model.Item, 0, len(created))
	for i, row := range created {
		item := row.toModel("")
		if i < len(opts) {
			item.Attrs = opts[i].Attrs
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateItem forwards only the recognized fields and bumps updated_at.
func (r *implRepository) UpdateItem(ctx context.Context, id string, opt repository.UpdateItemOptions) error {
	patch := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if opt.Text != nil {
		patch["text"] = *opt.Text
	}
	if opt.Quantity != nil {
		patch["quantity"] = *opt.Quantity
	}
	if opt.Priority != nil {
		patch["priority"] = string(*opt.Priority)
	}
	if opt.DueDate != nil {
		patch["due_date"] = opt.DueDate.UTC().Format(time.RFC3339)
	} else if opt.ClearDue {
		patch["due_date"] = nil
	}
	if opt.Notes != nil {
		patch["notes"] = *opt.Notes
	}
	if opt.Assignee != nil {
		patch["assignee"] = *opt.Assignee
	}
	if opt.Completed != nil {
		patch["completed"] = *opt.Completed
	}
	if opt.SortOrder != nil {
		patch["sort_order"] = *opt.SortOrder
	}
	if opt.Links != nil {
		patch["links"] = *opt.Links
	}
	if opt.Attrs != nil {
		patch["attrs"] = opt.Attrs.Bag()
	}

	if err := r.db().Update(ctx, model.TableListItems, map[string]string{"id": id}, patch); err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.UpdateItem: %v", err)
		return errors.Join(repository.ErrFailedToUpdate, err)
	}
	return nil
}

// DeleteItem removes one item.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	if err := r.db().Delete(ctx, model.TableListItems, backend.Query{Eq: map[string]string{"id": id}}); err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.DeleteItem: %v", err)
		return errors.Join(repository.ErrFailedToDelete, err)
	}
	return nil
}

// DeleteItemsBatch removes all the given items in one backend write.
func (r *implRepository) DeleteItemsBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db().Delete(ctx, model.TableListItems, backend.Query{In: map[string][]string{"id": ids}}); err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.DeleteItemsBatch: %v", err)
		return errors.Join(repository.ErrFailedToDelete, err)
	}
	return nil
}
