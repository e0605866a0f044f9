package model

import "time"

// Priority of an item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority. The empty string means unset.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Item is a single entry within a list. SortOrder defines the manual sort
// position; the store rewrites it wholesale on reorder.
type Item struct {
	ID       string
	ListID   string
	Text     string
	Quantity *int
	Priority Priority // empty when unset
	DueDate  *time.Time
	Notes    string
	Assignee string

	Completed bool
	SortOrder int
	Links     []string

	Attrs ItemAttrs

	CreatedAt time.Time
	UpdatedAt time.Time
}
