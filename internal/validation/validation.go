package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"listkeeper/internal/model"
	"listkeeper/internal/policy"
)

// Field length caps.
const (
	MaxListTitleLen = 100
	MaxItemTextLen  = 200
	MaxNotesLen     = 1000
	MaxTagLen       = 30
)

var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrNameTooLong     = fmt.Errorf("name must be at most %d characters", MaxListTitleLen)
	ErrItemTextTooLong = fmt.Errorf("item text must be at most %d characters", MaxItemTextLen)
	ErrInvalidCategory = errors.New("unknown category")
	ErrInvalidListType = errors.New("unknown list type")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
	ErrNotesTooLong    = fmt.Errorf("notes must be at most %d characters", MaxNotesLen)
	ErrEmptyTag        = errors.New("tag must not be empty")
	ErrTagTooLong      = fmt.Errorf("tag must be at most %d characters", MaxTagLen)
	ErrLimitReached    = errors.New("limit reached for current plan")
)

// validate is shared; validator.Validate is safe for concurrent use.
var validate = validator.New()

// ListTitle trims and bounds-checks a list title.
func ListTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrEmptyName
	}
	if len([]rune(title)) > MaxListTitleLen {
		return "", ErrNameTooLong
	}
	return title, nil
}

// ItemText trims and bounds-checks an item's display text.
func ItemText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyName
	}
	if len([]rune(text)) > MaxItemTextLen {
		return "", ErrItemTextTooLong
	}
	return text, nil
}

// ListCategory checks enum membership.
func ListCategory(raw string) (model.Category, error) {
	c := model.Category(raw)
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// ListTypeValue checks enum membership.
func ListTypeValue(raw string) (model.ListType, error) {
	t := model.ListType(raw)
	if !t.Valid() {
		return "", ErrInvalidListType
	}
	return t, nil
}

// Email normalizes to lowercase/trimmed and checks shape.
func Email(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// Quantity rejects non-positive values. Callers pass nil for "unset".
func Quantity(q *int) error {
	if q == nil {
		return nil
	}
	if *q <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// ItemPriority accepts the empty string (unset) or a known priority.
func ItemPriority(raw string) (model.Priority, error) {
	if raw == "" {
		return "", nil
	}
	p := model.Priority(raw)
	if !p.Valid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// Notes bounds-checks and strips control characters.
func Notes(raw string) (string, error) {
	notes := stripControl(raw)
	if len([]rune(notes)) > MaxNotesLen {
		return "", ErrNotesTooLong
	}
	return notes, nil
}

// Tag trims, strips control characters, and bounds-checks a tag.
func Tag(raw string) (string, error) {
	tag := strings.TrimSpace(stripControl(raw))
	if tag == "" {
		return "", ErrEmptyTag
	}
	if len([]rune(tag)) > MaxTagLen {
		return "", ErrTagTooLong
	}
	return tag, nil
}

// CheckListLimit rejects when the user already holds limit lists.
// The policy.Unlimited sentinel disables the check.
func CheckListLimit(count, limit int) error {
	if limit == policy.Unlimited {
		return nil
	}
	if count >= limit {
		return ErrLimitReached
	}
	return nil
}

// CheckItemLimit rejects when the list already holds limit items.
func CheckItemLimit(count, limit int) error {
	if limit == policy.Unlimited {
		return nil
	}
	if count >= limit {
		return ErrLimitReached
	}
	return nil
}

// stripControl removes control characters, keeping newlines and tabs so
// multi-line notes survive.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
