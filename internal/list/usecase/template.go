package usecase

import (
	"context"
	"errors"

	"listkeeper/internal/list"
	"listkeeper/internal/policy"
	"listkeeper/internal/validation"
	"listkeeper/pkg/backend"
)

// InstantiateTemplate asks the backend to copy a curated template into the
// user's lists. Template contents live server-side, so the copy happens in a
// stored procedure and the store just reloads afterwards.
func (uc *implUseCase) InstantiateTemplate(ctx context.Context, templateID string) (list.CreateListOutput, error) {
	if !policy.CanUseTemplates(uc.me.Tier()) {
		return list.CreateListOutput{}, list.ErrTemplatesNotAllowed
	}
	if err := uc.ensureLoaded(ctx); err != nil {
		return list.CreateListOutput{}, err
	}
	if err := validation.CheckListLimit(uc.listCount(), uc.limits().ListLimit); err != nil {
		return list.CreateListOutput{}, list.ErrListLimitReached
	}

	created, err := uc.repo.InstantiateTemplate(ctx, templateID, uc.me.UserID())
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return list.CreateListOutput{}, list.ErrTemplateNotFound
		}
		uc.l.Errorf(ctx, "uc.InstantiateTemplate: %v", err)
		return list.CreateListOutput{}, err
	}

	uc.reload(ctx)
	return list.CreateListOutput{ID: created.ID, Title: created.Title}, nil
}

// RedeemTemplateCode redeems a printed or emailed template code for the
// signed-in user. The backend records the redemption and unlocks the
// template's lists on the next reload.
func (uc *implUseCase) RedeemTemplateCode(ctx context.Context, code string) error {
	if code == "" {
		return list.ErrInvalidTemplateCode
	}
	if err := uc.repo.RedeemTemplateCode(ctx, code, uc.me.UserID()); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return list.ErrInvalidTemplateCode
		}
		uc.l.Errorf(ctx, "uc.RedeemTemplateCode: %v", err)
		return err
	}
	uc.reload(ctx)
	return nil
}
