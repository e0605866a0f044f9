package realtime

import (
	"encoding/json"
	"strings"
	"time"

	"listkeeper/internal/model"
)

// changePayload matches the backend's database webhook format: one row-level
// change per request.
type changePayload struct {
	Type      string          `json:"type"` // INSERT | UPDATE | DELETE
	Table     string          `json:"table"`
	Schema    string          `json:"schema"`
	Record    json.RawMessage `json:"record"`
	OldRecord json.RawMessage `json:"old_record"`
}

// rowIdentity is the subset of any row we care about for routing.
type rowIdentity struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	UserID  string `json:"user_id"`
}

// event converts the payload to a ChangeEvent. Deletes identify the row from
// old_record because record is null.
func (p changePayload) event() (model.ChangeEvent, bool) {
	var kind model.ChangeKind
	switch strings.ToUpper(p.Type) {
	case "INSERT":
		kind = model.ChangeInsert
	case "UPDATE":
		kind = model.ChangeUpdate
	case "DELETE":
		kind = model.ChangeDelete
	default:
		return model.ChangeEvent{}, false
	}

	raw := p.Record
	if kind == model.ChangeDelete {
		raw = p.OldRecord
	}
	var row rowIdentity
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &row); err != nil {
			return model.ChangeEvent{}, false
		}
	}

	owner := row.OwnerID
	if owner == "" {
		owner = row.UserID
	}
	if p.Table == model.TableProfiles && owner == "" {
		owner = row.ID
	}

	return model.ChangeEvent{
		Table:      p.Table,
		Kind:       kind,
		RowID:      row.ID,
		OwnerID:    owner,
		ReceivedAt: time.Now(),
	}, true
}
