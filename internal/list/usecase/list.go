package usecase

import (
	"context"

	"listkeeper/internal/list"
	repo "listkeeper/internal/list/repository"
	"listkeeper/internal/model"
	"listkeeper/internal/policy"
	"listkeeper/internal/validation"
)

// CreateList validates, enforces tier and uniqueness gates, inserts, and
// reloads. The new list's ID is returned even when the trailing reload
// fails, so callers can navigate to it without waiting for a clean snapshot.
func (uc *implUseCase) CreateList(ctx context.Context, input list.CreateListInput) (list.CreateListOutput, error) {
	title, err := validation.ListTitle(input.Title)
	if err != nil {
		return list.CreateListOutput{}, err
	}
	category, err := validation.ListCategory(input.Category)
	if err != nil {
		return list.CreateListOutput{}, err
	}
	listType, err := validation.ListTypeValue(input.Type)
	if err != nil {
		return list.CreateListOutput{}, err
	}

	if err := uc.ensureLoaded(ctx); err != nil {
		return list.CreateListOutput{}, err
	}

	tier := uc.me.Tier()
	if !policy.CanCreateListType(tier, listType) {
		return list.CreateListOutput{}, list.ErrListTypeNotAllowed
	}
	if input.AccountID != "" && !policy.CanHaveTeamMembers(tier) {
		return list.CreateListOutput{}, list.ErrTeamsNotAllowed
	}
	if uc.titleExists(title, "") {
		return list.CreateListOutput{}, list.ErrDuplicateTitle
	}
	if err := validation.CheckListLimit(uc.listCount(), uc.limits().ListLimit); err != nil {
		return list.CreateListOutput{}, list.ErrListLimitReached
	}

	created, err := uc.repo.CreateList(ctx, repo.CreateListOptions{
		ID:        uc.newID(),
		OwnerID:   uc.me.UserID(),
		AccountID: input.AccountID,
		Title:     title,
		Category:  category,
		Type:      listType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateList CreateList: %v", err)
		return list.CreateListOutput{}, err
	}

	uc.reload(ctx)
	return list.CreateListOutput{ID: created.ID, Title: created.Title}, nil
}

// UpdateList applies a whitelist partial update.
func (uc *implUseCase) UpdateList(ctx context.Context, input list.UpdateListInput) error {
	current, err := uc.findList(input.ID)
	if err != nil {
		return err
	}

	opt := repo.UpdateListOptions{
		Pinned:            input.Pinned,
		Archived:          input.Archived,
		ShowPurchaserInfo: input.ShowPurchaserInfo,
	}

	if input.Title != nil {
		title, err := validation.ListTitle(*input.Title)
		if err != nil {
			return err
		}
		if uc.titleExists(title, current.ID) {
			return list.ErrDuplicateTitle
		}
		opt.Title = &title
	}
	if input.Category != nil {
		category, err := validation.ListCategory(*input.Category)
		if err != nil {
			return err
		}
		opt.Category = &category
	}
	if input.Type != nil {
		listType, err := validation.ListTypeValue(*input.Type)
		if err != nil {
			return err
		}
		if !policy.CanCreateListType(uc.me.Tier(), listType) {
			return list.ErrListTypeNotAllowed
		}
		opt.Type = &listType
	}
	if input.GuestAccess != nil {
		if *input.GuestAccess && !policy.CanInviteGuests(uc.me.Tier()) {
			return list.ErrGuestsNotAllowed
		}
		opt.GuestAccess = input.GuestAccess
	}
	if input.GuestPermission != nil {
		perm := model.GuestPermission(*input.GuestPermission)
		if perm != model.GuestPermissionView && perm != model.GuestPermissionEdit {
			return list.ErrInvalidGuestPermission
		}
		opt.GuestPermission = &perm
	}

	if err := uc.repo.UpdateList(ctx, current.ID, opt); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateList UpdateList: %v", err)
		return err
	}

	uc.reload(ctx)
	return nil
}

// DeleteList removes a list; the backend cascades to its items.
func (uc *implUseCase) DeleteList(ctx context.Context, id string) error {
	if _, err := uc.findList(id); err != nil {
		return err
	}
	if err := uc.repo.DeleteList(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteList DeleteList: %v", err)
		return err
	}
	uc.reload(ctx)
	return nil
}

// TogglePin flips the pinned flag.
func (uc *implUseCase) TogglePin(ctx context.Context, id string) error {
	current, err := uc.findList(id)
	if err != nil {
		return err
	}
	pinned := !current.Pinned
	if err := uc.repo.UpdateList(ctx, id, repo.UpdateListOptions{Pinned: &pinned}); err != nil {
		uc.l.Errorf(ctx, "uc.TogglePin UpdateList: %v", err)
		return err
	}
	uc.reload(ctx)
	return nil
}

// AddTag appends a tag, rejecting duplicates and invalid tag strings.
func (uc *implUseCase) AddTag(ctx context.Context, id, rawTag string) error {
	tag, err := validation.Tag(rawTag)
	if err != nil {
		return err
	}
	current, err := uc.findList(id)
	if err != nil {
		return err
	}
	if current.HasTag(tag) {
		return list.ErrDuplicateTag
	}

	tags := append(append([]string{}, current.Tags...), tag)
	if err := uc.repo.UpdateList(ctx, id, repo.UpdateListOptions{Tags: &tags}); err != nil {
		uc.l.Errorf(ctx, "uc.AddTag UpdateList: %v", err)
		return err
	}
	uc.reload(ctx)
	return nil
}

// RemoveTag drops a tag, preserving the order of the rest.
func (uc *implUseCase) RemoveTag(ctx context.Context, id, tag string) error {
	current, err := uc.findList(id)
	if err != nil {
		return err
	}

	tags := make([]string, 0, len(current.Tags))
	for _, t := range current.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	if len(tags) == len(current.Tags) {
		return nil // nothing to remove
	}

	if err := uc.repo.UpdateList(ctx, id, repo.UpdateListOptions{Tags: &tags}); err != nil {
		uc.l.Errorf(ctx, "uc.RemoveTag UpdateList: %v", err)
		return err
	}
	uc.reload(ctx)
	return nil
}

// AddCollaborator adds an email to the collaborator set. Premium-gated.
func (uc *implUseCase) AddCollaborator(ctx context.Context, id, rawEmail string) error {
	if !policy.CanShareLists(uc.me.Tier()) {
		return list.ErrSharingNotAllowed
	}
	email, err := validation.Email(rawEmail)
	if err != nil {
		return err
	}
	current, err := uc.findList(id)
	if err != nil {
		return err
	}
	if current.HasCollaborator(email) {
		return list.ErrDuplicateCollaborator
	}

	collaborators := append(append([]string{}, current.Collaborators...), email)
	if err := uc.repo.UpdateList(ctx, id, repo.UpdateListOptions{Collaborators: &collaborators}); err != nil {
		uc.l.Errorf(ctx, "uc.AddCollaborator UpdateList: %v", err)
		return err
	}
	uc.reload(ctx)
	return nil
}
