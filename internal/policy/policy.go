package policy

import "listkeeper/internal/model"

// Unlimited is the sentinel for "no numeric cap".
const Unlimited = -1

// Limits are the numeric caps derived from a tier.
type Limits struct {
	ListLimit    int
	ItemsPerList int
}

var tierLimits = map[model.Tier]Limits{
	model.TierFree:       {ListLimit: 5, ItemsPerList: 20},
	model.TierGood:       {ListLimit: 50, ItemsPerList: 150},
	model.TierEvenBetter: {ListLimit: 100, ItemsPerList: 500},
	model.TierLotsMore:   {ListLimit: Unlimited, ItemsPerList: Unlimited},
}

// LimitsForTier returns the list and items-per-list caps for a tier.
// Unknown tiers get the free limits.
func LimitsForTier(t model.Tier) Limits {
	if l, ok := tierLimits[t]; ok {
		return l
	}
	return tierLimits[model.TierFree]
}

// baseListTypes are available on every tier.
var baseListTypes = []model.ListType{
	model.ListTypeCustom,
	model.ListTypeTodo,
	model.ListTypeMultiTopic,
	model.ListTypeCompareContrast,
	model.ListTypeProCon,
	model.ListTypeMultiOption,
}

// AllowedListTypes returns the list types a tier may create.
// grocery and idea unlock at good; registry and wishlist at even_better;
// lots_more has everything.
func AllowedListTypes(t model.Tier) []model.ListType {
	types := make([]model.ListType, 0, len(model.AllListTypes))
	types = append(types, baseListTypes...)
	if t.AtLeast(model.TierGood) {
		types = append(types, model.ListTypeGrocery, model.ListTypeIdea)
	}
	if t.AtLeast(model.TierEvenBetter) {
		types = append(types, model.ListTypeRegistry, model.ListTypeWishlist)
	}
	return types
}

// CanCreateListType reports whether a tier may create lists of the given type.
func CanCreateListType(t model.Tier, lt model.ListType) bool {
	for _, allowed := range AllowedListTypes(t) {
		if allowed == lt {
			return true
		}
	}
	return false
}

// Feature predicates. Simple tier-threshold comparisons.

func CanImportLists(t model.Tier) bool     { return t.AtLeast(model.TierGood) }
func CanShareLists(t model.Tier) bool      { return t.AtLeast(model.TierGood) }
func CanInviteGuests(t model.Tier) bool    { return t.AtLeast(model.TierEvenBetter) }
func CanHaveTeamMembers(t model.Tier) bool { return t == model.TierLotsMore }
func CanUseTemplates(t model.Tier) bool    { return t.AtLeast(model.TierGood) }
