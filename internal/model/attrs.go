package model

// ItemAttrs is the type-specific attribute set of an item. At most one
// variant is non-nil, and which one is determined by the parent list's type.
// The backend stores these as an open key/value bag; Bag and AttrsFromBag
// translate between the two shapes.
type ItemAttrs struct {
	Grocery  *GroceryAttrs
	Registry *RegistryAttrs
	Status   *StatusAttrs
	Idea     *IdeaAttrs
}

// GroceryAttrs apply to grocery lists.
type GroceryAttrs struct {
	Category string
	Unit     string
	Price    float64
}

// RegistryAttrs apply to registry and wishlist lists.
type RegistryAttrs struct {
	Price          float64
	QtyNeeded      int
	QtyPurchased   int
	PurchaseStatus string
	ProductLink    string
}

// StatusAttrs apply to todo lists.
type StatusAttrs struct {
	Status string
}

// IdeaAttrs apply to idea lists.
type IdeaAttrs struct {
	Status          string
	InspirationLink string
}

// Empty reports whether no variant is set.
func (a ItemAttrs) Empty() bool {
	return a.Grocery == nil && a.Registry == nil && a.Status == nil && a.Idea == nil
}

// Bag flattens the active variant into the backend's key/value column.
// Returns nil when nothing is set so the column stays NULL.
func (a ItemAttrs) Bag() map[string]any {
	switch {
	case a.Grocery != nil:
		return map[string]any{
			"category": a.Grocery.Category,
			"unit":     a.Grocery.Unit,
			"price":    a.Grocery.Price,
		}
	case a.Registry != nil:
		return map[string]any{
			"price":              a.Registry.Price,
			"quantity_needed":    a.Registry.QtyNeeded,
			"quantity_purchased": a.Registry.QtyPurchased,
			"purchase_status":    a.Registry.PurchaseStatus,
			"product_link":       a.Registry.ProductLink,
		}
	case a.Status != nil:
		return map[string]any{
			"status": a.Status.Status,
		}
	case a.Idea != nil:
		return map[string]any{
			"status":           a.Idea.Status,
			"inspiration_link": a.Idea.InspirationLink,
		}
	}
	return nil
}

// AttrsFromBag rebuilds the variant matching the parent list type from the
// backend's key/value column. Keys that do not belong to the list type are
// dropped, which is what makes invalid key/type combinations unrepresentable.
func AttrsFromBag(t ListType, bag map[string]any) ItemAttrs {
	if len(bag) == 0 {
		return ItemAttrs{}
	}
	switch t {
	case ListTypeGrocery:
		return ItemAttrs{Grocery: &GroceryAttrs{
			Category: bagString(bag, "category"),
			Unit:     bagString(bag, "unit"),
			Price:    bagFloat(bag, "price"),
		}}
	case ListTypeRegistry, ListTypeWishlist:
		return ItemAttrs{Registry: &RegistryAttrs{
			Price:          bagFloat(bag, "price"),
			QtyNeeded:      bagInt(bag, "quantity_needed"),
			QtyPurchased:   bagInt(bag, "quantity_purchased"),
			PurchaseStatus: bagString(bag, "purchase_status"),
			ProductLink:    bagString(bag, "product_link"),
		}}
	case ListTypeTodo:
		return ItemAttrs{Status: &StatusAttrs{
			Status: bagString(bag, "status"),
		}}
	case ListTypeIdea:
		return ItemAttrs{Idea: &IdeaAttrs{
			Status:          bagString(bag, "status"),
			InspirationLink: bagString(bag, "inspiration_link"),
		}}
	}
	return ItemAttrs{}
}

func bagString(bag map[string]any, key string) string {
	if v, ok := bag[key].(string); ok {
		return v
	}
	return ""
}

func bagFloat(bag map[string]any, key string) float64 {
	switch v := bag[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func bagInt(bag map[string]any, key string) int {
	switch v := bag[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
