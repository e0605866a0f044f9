package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"listkeeper/internal/list"
	"listkeeper/internal/model"
	"listkeeper/internal/policy"
)

// shareTokenLen sizes the opaque share token.
const shareTokenLen = 21

func defaultNewID() string { return uuid.NewString() }

func defaultNewShareID() (string, error) { return gonanoid.New(shareTokenLen) }

// findList locates a list in the current snapshot.
func (uc *implUseCase) findList(id string) (model.List, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, l := range uc.snapshot {
		if l.ID == id {
			return l, nil
		}
	}
	return model.List{}, list.ErrListNotFound
}

// findItem locates an item within a snapshot list.
func findItem(l model.List, itemID string) (model.Item, error) {
	for _, it := range l.Items {
		if it.ID == itemID {
			return it, nil
		}
	}
	return model.Item{}, list.ErrItemNotFound
}

// titleExists reports a case-insensitive title collision among the user's
// own lists. excludeID skips the list being renamed.
func (uc *implUseCase) titleExists(title, excludeID string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, l := range uc.snapshot {
		if l.ID == excludeID {
			continue
		}
		if strings.EqualFold(l.Title, title) {
			return true
		}
	}
	return false
}

// copyTitle builds the "Copy of" title for an imported shared list,
// appending a counter until it no longer collides.
func (uc *implUseCase) copyTitle(original string) string {
	base := "Copy of " + original
	title := base
	for n := 2; uc.titleExists(title, ""); n++ {
		title = fmt.Sprintf("%s (%d)", base, n)
	}
	return title
}

// limits resolves the current tier's caps.
func (uc *implUseCase) limits() policy.Limits {
	return policy.LimitsForTier(uc.me.Tier())
}

// listCount returns the number of lists in the snapshot.
func (uc *implUseCase) listCount() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.snapshot)
}

// buildAttrs constructs the type-specific attribute variant for a new item
// based on the parent list's type.
func buildAttrs(t model.ListType, input list.AddItemInput) model.ItemAttrs {
	switch t {
	case model.ListTypeGrocery:
		if input.AttrCategory == "" && input.AttrUnit == "" && input.AttrPrice == 0 {
			return model.ItemAttrs{}
		}
		return model.ItemAttrs{Grocery: &model.GroceryAttrs{
			Category: input.AttrCategory,
			Unit:     input.AttrUnit,
			Price:    input.AttrPrice,
		}}
	case model.ListTypeRegistry, model.ListTypeWishlist:
		return model.ItemAttrs{Registry: &model.RegistryAttrs{
			Price:          input.AttrPrice,
			QtyNeeded:      input.AttrQtyNeeded,
			QtyPurchased:   input.AttrQtyPurchased,
			PurchaseStatus: input.AttrPurchaseStatus,
			ProductLink:    input.AttrProductLink,
		}}
	case model.ListTypeTodo:
		if input.AttrStatus == "" {
			return model.ItemAttrs{}
		}
		return model.ItemAttrs{Status: &model.StatusAttrs{Status: input.AttrStatus}}
	case model.ListTypeIdea:
		if input.AttrStatus == "" && input.AttrInspirationLink == "" {
			return model.ItemAttrs{}
		}
		return model.ItemAttrs{Idea: &model.IdeaAttrs{
			Status:          input.AttrStatus,
			InspirationLink: input.AttrInspirationLink,
		}}
	}
	return model.ItemAttrs{}
}
