package usecase

import (
	"context"
	"errors"
	"fmt"

	"listkeeper/internal/list"
	repo "listkeeper/internal/list/repository"
	"listkeeper/internal/model"
	"listkeeper/internal/policy"
	"listkeeper/internal/validation"
	"listkeeper/pkg/backend"
)

// GenerateShareLink mints an opaque token for the list, persists it with the
// shared flag, and returns the share URL. Tokens are never rotated or
// expired: calling again on an already-shared list returns the same URL.
func (uc *implUseCase) GenerateShareLink(ctx context.Context, listID string) (string, error) {
	if !policy.CanShareLists(uc.me.Tier()) {
		return "", list.ErrSharingNotAllowed
	}
	current, err := uc.findList(listID)
	if err != nil {
		return "", err
	}

	if current.Shared && current.ShareToken != "" {
		return uc.shareURL(current.ShareToken), nil
	}

	token, err := uc.newShareID()
	if err != nil {
		return "", fmt.Errorf("failed to generate share token: %w", err)
	}

	shared := true
	if err := uc.repo.UpdateList(ctx, listID, repo.UpdateListOptions{
		ShareToken: &token,
		Shared:     &shared,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.GenerateShareLink UpdateList: %v", err)
		return "", err
	}

	uc.reload(ctx)
	return uc.shareURL(token), nil
}

// UnshareList clears the token and the shared flag; the old token stops
// resolving immediately.
func (uc *implUseCase) UnshareList(ctx context.Context, listID string) error {
	current, err := uc.findList(listID)
	if err != nil {
		return err
	}
	if !current.Shared {
		return list.ErrNotShared
	}

	empty := ""
	shared := false
	if err := uc.repo.UpdateList(ctx, listID, repo.UpdateListOptions{
		ShareToken: &empty,
		Shared:     &shared,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.UnshareList UpdateList: %v", err)
		return err
	}

	uc.reload(ctx)
	return nil
}

// ImportFromShareLink clones a shared list (by token) into the importing
// user's own lists. The copy gets a "Copy of" title and every item is reset
// to incomplete, regardless of the source's completion state. The importer's
// own list limit applies.
func (uc *implUseCase) ImportFromShareLink(ctx context.Context, token string) (list.CreateListOutput, error) {
	if err := uc.ensureLoaded(ctx); err != nil {
		return list.CreateListOutput{}, err
	}

	source, err := uc.repo.GetListByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return list.CreateListOutput{}, list.ErrShareLinkNotFound
		}
		uc.l.Errorf(ctx, "uc.ImportFromShareLink GetListByShareToken: %v", err)
		return list.CreateListOutput{}, err
	}

	if err := validation.CheckListLimit(uc.listCount(), uc.limits().ListLimit); err != nil {
		return list.CreateListOutput{}, list.ErrListLimitReached
	}

	sourceItems, err := uc.repo.ListItems(ctx, []model.List{source})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportFromShareLink ListItems: %v", err)
		return list.CreateListOutput{}, err
	}

	created, err := uc.repo.CreateList(ctx, repo.CreateListOptions{
		ID:       uc.newID(),
		OwnerID:  uc.me.UserID(),
		Title:    uc.copyTitle(source.DisplayTitle()),
		Category: source.Category,
		Type:     source.Type,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportFromShareLink CreateList: %v", err)
		return list.CreateListOutput{}, err
	}

	if len(sourceItems) > 0 {
		opts := make([]repo.CreateItemOptions, 0, len(sourceItems))
		for i, it := range sourceItems {
			opts = append(opts, repo.CreateItemOptions{
				ID:        uc.newID(),
				ListID:    created.ID,
				Text:      it.Text,
				Quantity:  it.Quantity,
				Priority:  it.Priority,
				DueDate:   it.DueDate,
				Notes:     it.Notes,
				Assignee:  it.Assignee,
				Completed: false,
				SortOrder: i,
				Links:     it.Links,
				Attrs:     it.Attrs,
			})
		}
		if _, err := uc.repo.CreateItemsBatch(ctx, opts); err != nil {
			uc.l.Errorf(ctx, "uc.ImportFromShareLink CreateItemsBatch: %v", err)
			return list.CreateListOutput{}, err
		}
	}

	uc.reload(ctx)
	return list.CreateListOutput{ID: created.ID, Title: created.Title}, nil
}

func (uc *implUseCase) shareURL(token string) string {
	return fmt.Sprintf("%s/%s", uc.shareBaseURL, token)
}
