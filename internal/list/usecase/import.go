package usecase

import (
	"context"

	"listkeeper/internal/list"
	repo "listkeeper/internal/list/repository"
	"listkeeper/internal/model"
	"listkeeper/internal/policy"
	"listkeeper/internal/validation"
)

// ImportList parses a CSV or TXT payload into a brand-new list. The whole
// import is gated up front: tier, list limit, and item limit are all checked
// before anything is written, so a rejected import leaves no partial list
// behind.
func (uc *implUseCase) ImportList(ctx context.Context, input list.ImportInput) (list.CreateListOutput, error) {
	if !policy.CanImportLists(uc.me.Tier()) {
		return list.CreateListOutput{}, list.ErrImportNotAllowed
	}

	var (
		parsed []parsedItem
		err    error
	)
	switch input.Format {
	case list.ImportCSV:
		parsed, err = parseCSV(input.Raw)
	case list.ImportTXT:
		parsed, err = parseTXT(input.Raw)
	default:
		return list.CreateListOutput{}, list.ErrUnsupportedFormat
	}
	if err != nil {
		return list.CreateListOutput{}, err
	}

	title, err := validation.ListTitle(input.Title)
	if err != nil {
		return list.CreateListOutput{}, err
	}
	if input.Category == "" {
		input.Category = string(model.CategoryOther)
	}
	category, err := validation.ListCategory(input.Category)
	if err != nil {
		return list.CreateListOutput{}, err
	}
	if input.Type == "" {
		input.Type = string(model.ListTypeCustom)
	}
	listType, err := validation.ListTypeValue(input.Type)
	if err != nil {
		return list.CreateListOutput{}, err
	}

	if err := uc.ensureLoaded(ctx); err != nil {
		return list.CreateListOutput{}, err
	}

	if !policy.CanCreateListType(uc.me.Tier(), listType) {
		return list.CreateListOutput{}, list.ErrListTypeNotAllowed
	}
	if uc.titleExists(title, "") {
		return list.CreateListOutput{}, list.ErrDuplicateTitle
	}
	caps := uc.limits()
	if err := validation.CheckListLimit(uc.listCount(), caps.ListLimit); err != nil {
		return list.CreateListOutput{}, list.ErrListLimitReached
	}
	if caps.ItemsPerList != policy.Unlimited && len(parsed) > caps.ItemsPerList {
		return list.CreateListOutput{}, list.ErrItemLimitReached
	}

	created, err := uc.repo.CreateList(ctx, repo.CreateListOptions{
		ID:       uc.newID(),
		OwnerID:  uc.me.UserID(),
		Title:    title,
		Category: category,
		Type:     listType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportList CreateList: %v", err)
		return list.CreateListOutput{}, err
	}

	opts := make([]repo.CreateItemOptions, 0, len(parsed))
	for i, p := range parsed {
		text, err := validation.ItemText(p.Text)
		if err != nil {
			continue // drop unusable rows, keep the rest
		}
		opt := repo.CreateItemOptions{
			ID:        uc.newID(),
			ListID:    created.ID,
			Text:      text,
			Quantity:  p.Quantity,
			Priority:  p.Priority,
			DueDate:   p.DueDate,
			Notes:     p.Notes,
			Assignee:  p.Assignee,
			Completed: p.Completed,
			SortOrder: i,
			Links:     p.Links,
		}
		if listType == model.ListTypeGrocery && p.Category != "" {
			opt.Attrs = model.ItemAttrs{Grocery: &model.GroceryAttrs{Category: p.Category}}
		}
		opts = append(opts, opt)
	}
	if len(opts) > 0 {
		if _, err := uc.repo.CreateItemsBatch(ctx, opts); err != nil {
			uc.l.Errorf(ctx, "uc.ImportList CreateItemsBatch: %v", err)
			return list.CreateListOutput{}, err
		}
	}

	uc.reload(ctx)
	return list.CreateListOutput{ID: created.ID, Title: created.Title}, nil
}
