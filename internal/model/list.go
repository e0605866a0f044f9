package model

import (
	"strings"
	"time"
)

// ListType discriminates which optional item attributes apply.
type ListType string

const (
	ListTypeCustom          ListType = "custom"
	ListTypeTodo            ListType = "todo"
	ListTypeGrocery         ListType = "grocery"
	ListTypeRegistry        ListType = "registry"
	ListTypeWishlist        ListType = "wishlist"
	ListTypeIdea            ListType = "idea"
	ListTypeMultiTopic      ListType = "multi_topic"
	ListTypeCompareContrast ListType = "compare_contrast"
	ListTypeProCon          ListType = "pro_con"
	ListTypeMultiOption     ListType = "multi_option"
)

// AllListTypes enumerates every known list type.
var AllListTypes = []ListType{
	ListTypeCustom, ListTypeTodo, ListTypeGrocery, ListTypeRegistry,
	ListTypeWishlist, ListTypeIdea, ListTypeMultiTopic,
	ListTypeCompareContrast, ListTypeProCon, ListTypeMultiOption,
}

// Valid reports whether t is a known list type.
func (t ListType) Valid() bool {
	for _, lt := range AllListTypes {
		if t == lt {
			return true
		}
	}
	return false
}

// Category is the fixed label set a list can be filed under.
type Category string

const (
	CategoryTasks     Category = "Tasks"
	CategoryGroceries Category = "Groceries"
	CategoryShopping  Category = "Shopping"
	CategoryRegistry  Category = "Registry"
	CategoryIdeas     Category = "Ideas"
	CategoryTravel    Category = "Travel"
	CategoryWork      Category = "Work"
	CategoryHome      Category = "Home"
	CategoryOther     Category = "Other"
)

// AllCategories enumerates every known category.
var AllCategories = []Category{
	CategoryTasks, CategoryGroceries, CategoryShopping, CategoryRegistry,
	CategoryIdeas, CategoryTravel, CategoryWork, CategoryHome, CategoryOther,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, cat := range AllCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// GuestPermission is the access level granted to guest users of a list.
type GuestPermission string

const (
	GuestPermissionView GuestPermission = "view"
	GuestPermissionEdit GuestPermission = "edit"
)

// ArchivedTitlePrefix marks archived lists carried over from the older
// title-prefix convention.
const ArchivedTitlePrefix = "[ARCHIVED] "

// List is a user-owned collection of items.
type List struct {
	ID        string
	OwnerID   string
	AccountID string // non-empty means team/shared-account ownership
	Title     string
	Category  Category
	Type      ListType

	Pinned        bool
	Archived      bool
	Tags          []string // ordered, deduplicated
	Collaborators []string // emails

	ShareToken        string // empty when not shared
	Shared            bool
	GuestAccess       bool
	GuestPermission   GuestPermission
	ShowPurchaserInfo bool

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []Item
}

// IsArchived reports the archived state, honoring both the stored flag and
// the legacy title-prefix convention.
func (l List) IsArchived() bool {
	return l.Archived || strings.HasPrefix(l.Title, ArchivedTitlePrefix)
}

// DisplayTitle strips the legacy archived prefix for presentation.
func (l List) DisplayTitle() string {
	return strings.TrimPrefix(l.Title, ArchivedTitlePrefix)
}

// HasTag reports whether the list carries the given tag.
func (l List) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasCollaborator reports whether email is already a collaborator.
func (l List) HasCollaborator(email string) bool {
	for _, c := range l.Collaborators {
		if strings.EqualFold(c, email) {
			return true
		}
	}
	return false
}
