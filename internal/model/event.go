package model

import "time"

// Backend table names referenced by change events and repositories.
const (
	TableLists     = "lists"
	TableListItems = "list_items"
	TableProfiles  = "profiles"
	TableAccounts  = "team_accounts"
	TableMembers   = "team_memberships"
	TablePurchases = "purchase_records"
	TableTemplates = "templates"
)

// ChangeKind is the row-level operation carried by a change event.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// ChangeEvent is a realtime change notification from the backend. Any event
// on the lists or list_items tables invalidates the snapshot wholesale;
// events on profiles carry tier changes.
type ChangeEvent struct {
	Table      string
	Kind       ChangeKind
	RowID      string
	OwnerID    string
	ReceivedAt time.Time
}
