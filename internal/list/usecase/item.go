package usecase

import (
	"context"
	"strings"

	"listkeeper/internal/list"
	repo "listkeeper/internal/list/repository"
	"listkeeper/internal/validation"
)

// AddItem validates, enforces the items-per-list cap, flags (but does not
// block) duplicate text, builds the type-specific attribute bag from the
// parent list's type, inserts, and reloads.
func (uc *implUseCase) AddItem(ctx context.Context, input list.AddItemInput) (list.AddItemOutput, error) {
	text, err := validation.ItemText(input.Text)
	if err != nil {
		return list.AddItemOutput{}, err
	}
	if err := validation.Quantity(input.Quantity); err != nil {
		return list.AddItemOutput{}, err
	}
	priority, err := validation.ItemPriority(input.Priority)
	if err != nil {
		return list.AddItemOutput{}, err
	}
	notes, err := validation.Notes(input.Notes)
	if err != nil {
		return list.AddItemOutput{}, err
	}

	parent, err := uc.findList(input.ListID)
	if err != nil {
		return list.AddItemOutput{}, err
	}

	if err := validation.CheckItemLimit(len(parent.Items), uc.limits().ItemsPerList); err != nil {
		return list.AddItemOutput{}, list.ErrItemLimitReached
	}

	// Advisory only: duplicate text never blocks the write.
	duplicate := false
	for _, existing := range parent.Items {
		if strings.EqualFold(existing.Text, text) {
			duplicate = true
			break
		}
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:        uc.newID(),
		ListID:    parent.ID,
		Text:      text,
		Quantity:  input.Quantity,
		Priority:  priority,
		DueDate:   input.DueDate,
		Notes:     notes,
		Assignee:  strings.TrimSpace(input.Assignee),
		SortOrder: len(parent.Items),
		Links:     input.Links,
		Attrs:     buildAttrs(parent.Type, input),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddItem CreateItem: %v", err)
		return list.AddItemOutput{}, err
	}

	uc.reload(ctx)
	return list.AddItemOutput{Item: created, DuplicateWarning: duplicate}, nil
}

// UpdateItem applies a partial update to one item.
func (uc *implUseCase) UpdateItem(ctx context.Context, input list.UpdateItemInput) error {
	parent, err := uc.findList(input.ListID)
	if err != nil {
		return err
	}
	if _, err := findItem(parent, input.ItemID); err != nil {
		return err
	}

	opt := repo.UpdateItemOptions{
		Quantity:  input.Quantity,
		DueDate:   input.DueDate,
		ClearDue:  input.ClearDue,
		Completed: input.Completed,
	}

	if input.Text != nil {
		text, err := validation.ItemText(*input.Text)
		if err != nil {
			return err
		}
		opt.Text = &text
	}
	if input.Quantity != nil {
		if err := validation.Quantity(input.Quantity); err != nil {
			return err
		}
	}
	if input.Priority != nil {
		priority, err := validation.ItemPriority(*input.Priority)
		if err != nil {
			return err
		}
		opt.Priority = &priority
	}
	if input.Notes != nil {
		notes, err := validation.Notes(*input.Notes)
		if err != nil {
			return err
		}
		opt.Notes = &notes
	}
	if input.Assignee != nil {
		assignee := strings.TrimSpace(*input.Assignee)
		opt.Assignee = &assignee
	}
	if input.Links != nil {
		links := input.Links
		opt.Links = &links
	}

	if err := uc.repo.UpdateItem(ctx, input.ItemID, opt); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateItem UpdateItem: %v", err)
		return err
	}

	uc.reload(ctx)
	return nil
}

// DeleteItem removes one item from a list.
func (uc *implUseCase) DeleteItem(ctx context.Context, listID, itemID string) error {
	parent, err := uc.findList(listID)
	if err != nil {
		return err
	}
	if _, err := findItem(parent, itemID); err != nil {
		return err
	}

	if err := uc.repo.DeleteItem(ctx, itemID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteItem DeleteItem: %v", err)
		return err
	}
	uc.reload(ctx)
	return nil
}

// BulkDeleteItems removes a batch of items in one backend write.
func (uc *implUseCase) BulkDeleteItems(ctx context.Context, listID string, itemIDs []string) error {
	parent, err := uc.findList(listID)
	if err != nil {
		return err
	}
	for _, id := range itemIDs {
		if _, err := findItem(parent, id); err != nil {
			return err
		}
	}

	if err := uc.repo.DeleteItemsBatch(ctx, itemIDs); err != nil {
		uc.l.Errorf(ctx, "uc.BulkDeleteItems DeleteItemsBatch: %v", err)
		return err
	}
	uc.reload(ctx)
	return nil
}

// BulkUpdateItems updates completion and priority across a batch of items.
// Other fields require individual edits.
func (uc *implUseCase) BulkUpdateItems(ctx context.Context, input list.BulkUpdateInput) error {
	parent, err := uc.findList(input.ListID)
	if err != nil {
		return err
	}

	opt := repo.UpdateItemOptions{Completed: input.Completed}
	if input.Priority != nil {
		priority, err := validation.ItemPriority(*input.Priority)
		if err != nil {
			return err
		}
		opt.Priority = &priority
	}
	if opt.Completed == nil && opt.Priority == nil {
		return nil
	}

	for _, id := range input.ItemIDs {
		if _, err := findItem(parent, id); err != nil {
			return err
		}
	}
	for _, id := range input.ItemIDs {
		if err := uc.repo.UpdateItem(ctx, id, opt); err != nil {
			uc.l.Errorf(ctx, "uc.BulkUpdateItems UpdateItem %s: %v", id, err)
			return err
		}
	}

	uc.reload(ctx)
	return nil
}

// ToggleItemCompleted flips one item's completed flag.
func (uc *implUseCase) ToggleItemCompleted(ctx context.Context, listID, itemID string) error {
	parent, err := uc.findList(listID)
	if err != nil {
		return err
	}
	item, err := findItem(parent, itemID)
	if err != nil {
		return err
	}
	completed := !item.Completed
	return uc.UpdateItem(ctx, list.UpdateItemInput{
		ListID:    listID,
		ItemID:    itemID,
		Completed: &completed,
	})
}

// ReorderItems rewrites every item's sort index to its position in the
// supplied sequence. Writes run sequentially, one per item; the operation is
// not atomic and a mid-sequence failure leaves a partially renumbered list
// for the next reload to surface.
func (uc *implUseCase) ReorderItems(ctx context.Context, listID string, orderedIDs []string) error {
	parent, err := uc.findList(listID)
	if err != nil {
		return err
	}
	for _, id := range orderedIDs {
		if _, err := findItem(parent, id); err != nil {
			return err
		}
	}

	for idx, id := range orderedIDs {
		order := idx
		if err := uc.repo.UpdateItem(ctx, id, repo.UpdateItemOptions{SortOrder: &order}); err != nil {
			uc.l.Errorf(ctx, "uc.ReorderItems UpdateItem %s: %v", id, err)
			uc.reload(ctx)
			return err
		}
	}

	uc.reload(ctx)
	return nil
}
