package supabase

import (
	"context"
	"errors"
	"time"

	"listkeeper/internal/list/repository"
	"listkeeper/internal/model"
	"listkeeper/pkg/backend"
)

// ListLists returns the user's lists, newest first, without items.
func (r *implRepository) ListLists(ctx context.Context, ownerID string) ([]model.List, error) {
	var rows []listRow
	err := r.db().Select(ctx, model.TableLists, backend.Query{
		Eq:    map[string]string{"owner_id": ownerID},
		Order: "created_at",
		Desc:  true,
	}, &rows)
	if err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.ListLists: %v", err)
		return nil, errors.Join(repository.ErrFailedToList, err)
	}

	lists := make([]model.List, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, row.toModel())
	}
	return lists, nil
}

// GetListByShareToken resolves a shared list by its opaque token.
// Returns backend.ErrNotFound when no list carries the token.
func (r *implRepository) GetListByShareToken(ctx context.Context, token string) (model.List, error) {
	var rows []listRow
	err := r.db().Select(ctx, model.TableLists, backend.Query{
		Eq:    map[string]string{"share_token": token, "shared": "true"},
		Limit: 1,
	}, &rows)
	if err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.GetListByShareToken: %v", err)
		return model.List{}, errors.Join(repository.ErrFailedToGet, err)
	}
	if len(rows) == 0 {
		return model.List{}, backend.ErrNotFound
	}
	return rows[0].toModel(), nil
}

// CreateList inserts a new list row and returns the created entity.
func (r *implRepository) CreateList(ctx context.Context, opt repository.CreateListOptions) (model.List, error) {
	row := map[string]any{
		"id":        opt.ID,
		"owner_id":  opt.OwnerID,
		"title":     opt.Title,
		"category":  string(opt.Category),
		"list_type": string(opt.Type),
		"tags":      []string{},
	}
	if opt.AccountID != "" {
		row["account_id"] = opt.AccountID
	}

	var created []listRow
	if err := r.db().Insert(ctx, model.TableLists, []map[string]any{row}, &created); err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.CreateList: %v", err)
		return model.List{}, errors.Join(repository.ErrFailedToInsert, err)
	}
	if len(created) == 0 {
		return model.List{}, repository.ErrFailedToInsert
	}
	return created[0].toModel(), nil
}

// UpdateList forwards only the recognized fields and bumps updated_at.
func (r *implRepository) UpdateList(ctx context.Context, id string, opt repository.UpdateListOptions) error {
	patch := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if opt.Title != nil {
		patch["title"] = *opt.Title
	}
	if opt.Category != nil {
		patch["category"] = string(*opt.Category)
	}
	if opt.Type != nil {
		patch["list_type"] = string(*opt.Type)
	}
	if opt.Pinned != nil {
		patch["pinned"] = *opt.Pinned
	}
	if opt.Archived != nil {
		patch["archived"] = *opt.Archived
	}
	if opt.Tags != nil {
		patch["tags"] = *opt.Tags
	}
	if opt.Collaborators != nil {
		patch["collaborators"] = *opt.Collaborators
	}
	if opt.ShareToken != nil {
		if *opt.ShareToken == "" {
			patch["share_token"] = nil
		} else {
			patch["share_token"] = *opt.ShareToken
		}
	}
	if opt.Shared != nil {
		patch["shared"] = *opt.Shared
	}
	if opt.GuestAccess != nil {
		patch["guest_access"] = *opt.GuestAccess
	}
	if opt.GuestPermission != nil {
		patch["guest_permission"] = string(*opt.GuestPermission)
	}
	if opt.ShowPurchaserInfo != nil {
		patch["show_purchaser_info"] = *opt.ShowPurchaserInfo
	}

	if err := r.db().Update(ctx, model.TableLists, map[string]string{"id": id}, patch); err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.UpdateList: %v", err)
		return errors.Join(repository.ErrFailedToUpdate, err)
	}
	return nil
}

// DeleteList removes a list; the backend cascades item deletion.
func (r *implRepository) DeleteList(ctx context.Context, id string) error {
	if err := r.db().Delete(ctx, model.TableLists, backend.Query{Eq: map[string]string{"id": id}}); err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.DeleteList: %v", err)
		return errors.Join(repository.ErrFailedToDelete, err)
	}
	return nil
}

// InstantiateTemplate asks the backend to build a list from a template.
func (r *implRepository) InstantiateTemplate(ctx context.Context, templateID, ownerID string) (model.List, error) {
	params := map[string]string{"template_id": templateID, "owner_id": ownerID}
	var created listRow
	if err := r.db().RPC(ctx, "instantiate_template", params, &created); err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.InstantiateTemplate: %v", err)
		return model.List{}, err
	}
	return created.toModel(), nil
}

// RedeemTemplateCode consumes a template redemption code server-side.
func (r *implRepository) RedeemTemplateCode(ctx context.Context, code, ownerID string) error {
	params := map[string]string{"code": code, "owner_id": ownerID}
	if err := r.db().RPC(ctx, "redeem_template_code", params, nil); err != nil {
		r.l.Errorf(ctx, "list/repository/supabase.RedeemTemplateCode: %v", err)
		return err
	}
	return nil
}
