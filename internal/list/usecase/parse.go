package usecase

import (
	"strconv"
	"strings"
	"time"

	"listkeeper/internal/list"
	"listkeeper/internal/model"
)

// parsedItem is one row of an import, normalized from either format.
type parsedItem struct {
	Text      string
	Quantity  *int
	Priority  model.Priority
	DueDate   *time.Time
	Notes     string
	Assignee  string
	Category  string
	Completed bool
	Links     []string
}

// columnFor maps a header cell to its canonical column. Unknown headers are
// preserved as "" and their values ignored.
func columnFor(header string) string {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case "item name", "name", "item", "text", "title":
		return "text"
	case "quantity", "qty", "amount":
		return "quantity"
	case "priority":
		return "priority"
	case "due date", "due", "deadline":
		return "due"
	case "notes", "note", "description":
		return "notes"
	case "completed", "done", "checked":
		return "completed"
	case "assignee", "assigned to":
		return "assignee"
	case "category":
		return "category"
	case "links", "link", "url":
		return "links"
	}
	return ""
}

// parseCSV reads a quote-aware CSV payload. The first row is treated as a
// header when any cell matches a known column name; otherwise every row is
// data and the first cell is the item text.
func parseCSV(raw string) ([]parsedItem, error) {
	rows := splitCSVRows(raw)
	if len(rows) == 0 {
		return nil, list.ErrEmptyImport
	}

	columns := make([]string, len(rows[0]))
	hasHeader := false
	for i, cell := range rows[0] {
		columns[i] = columnFor(cell)
		if columns[i] != "" {
			hasHeader = true
		}
	}
	if !hasHeader {
		columns = []string{"text"}
	} else {
		rows = rows[1:]
	}

	var items []parsedItem
	for _, row := range rows {
		var it parsedItem
		for i, cell := range row {
			if i >= len(columns) {
				break
			}
			applyCell(&it, columns[i], cell)
		}
		if strings.TrimSpace(it.Text) == "" {
			continue
		}
		items = append(items, it)
	}
	if len(items) == 0 {
		return nil, list.ErrEmptyImport
	}
	return items, nil
}

func applyCell(it *parsedItem, column, cell string) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return
	}
	switch column {
	case "text":
		it.Text = cell
	case "quantity":
		if n, err := strconv.Atoi(cell); err == nil && n > 0 {
			it.Quantity = &n
		}
	case "priority":
		p := model.Priority(strings.ToLower(cell))
		if p.Valid() {
			it.Priority = p
		}
	case "due":
		if t := parseDate(cell); t != nil {
			it.DueDate = t
		}
	case "notes":
		it.Notes = cell
	case "completed":
		it.Completed = parseBool(cell)
	case "assignee":
		it.Assignee = cell
	case "category":
		it.Category = cell
	case "links":
		for _, l := range strings.Split(cell, ";") {
			if l = strings.TrimSpace(l); l != "" {
				it.Links = append(it.Links, l)
			}
		}
	}
}

// splitCSVRows splits raw CSV into cells, honoring double quotes: commas and
// newlines inside a quoted cell do not terminate it, and a doubled quote is a
// literal quote. Empty rows are dropped.
func splitCSVRows(raw string) [][]string {
	var (
		rows   [][]string
		row    []string
		cell   strings.Builder
		quoted bool
	)
	runes := []rune(strings.ReplaceAll(raw, "\r\n", "\n"))

	flushCell := func() {
		row = append(row, cell.String())
		cell.Reset()
	}
	flushRow := func() {
		flushCell()
		empty := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				empty = false
				break
			}
		}
		if !empty {
			rows = append(rows, row)
		}
		row = nil
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quoted:
			if r == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					cell.WriteRune('"')
					i++
				} else {
					quoted = false
				}
			} else {
				cell.WriteRune(r)
			}
		case r == '"':
			quoted = true
		case r == ',':
			flushCell()
		case r == '\n':
			flushRow()
		case r == '\r':
			// skip
		default:
			cell.WriteRune(r)
		}
	}
	if cell.Len() > 0 || len(row) > 0 {
		flushRow()
	}
	return rows
}

// parseTXT reads a plain-text payload: one item per non-empty line, with an
// optional "- " / "* " bullet, an optional "[x]" checkbox, and an optional
// "Nx " quantity prefix. Indented "key: value" lines attach to the item
// above them.
func parseTXT(raw string) ([]parsedItem, error) {
	var items []parsedItem
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indented := strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
		text := strings.TrimSpace(line)

		if indented && len(items) > 0 {
			if key, value, ok := strings.Cut(text, ":"); ok {
				applyTXTAttr(&items[len(items)-1], key, value)
				continue
			}
		}

		var it parsedItem
		text = strings.TrimPrefix(text, "- ")
		text = strings.TrimPrefix(text, "* ")
		text = strings.TrimPrefix(text, "• ")
		if strings.HasPrefix(text, "[ ] ") {
			text = text[4:]
		} else if strings.HasPrefix(text, "[x] ") || strings.HasPrefix(text, "[X] ") {
			it.Completed = true
			text = text[4:]
		}
		if qty, rest, ok := cutQuantityPrefix(text); ok {
			it.Quantity = &qty
			text = rest
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		it.Text = text
		items = append(items, it)
	}
	if len(items) == 0 {
		return nil, list.ErrEmptyImport
	}
	return items, nil
}

func applyTXTAttr(it *parsedItem, key, value string) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "quantity", "qty":
		applyCell(it, "quantity", value)
	case "priority":
		applyCell(it, "priority", value)
	case "due", "due date", "deadline":
		applyCell(it, "due", value)
	case "notes", "note":
		applyCell(it, "notes", value)
	case "assignee":
		applyCell(it, "assignee", value)
	case "category":
		applyCell(it, "category", value)
	case "link", "links":
		applyCell(it, "links", value)
	}
}

// cutQuantityPrefix recognizes a leading "2x " style quantity marker.
func cutQuantityPrefix(s string) (int, string, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(s) {
		return 0, s, false
	}
	if (s[i] != 'x' && s[i] != 'X') || s[i+1] != ' ' {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || n <= 0 {
		return 0, s, false
	}
	return n, s[i+2:], true
}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	time.RFC3339,
}

func parseDate(s string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "y", "1", "x", "done", "completed":
		return true
	}
	return false
}
