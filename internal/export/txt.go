package export

import (
	"fmt"
	"strings"

	"listkeeper/internal/model"
)

// RenderTXT writes the list as plain text: a short header, then one bullet
// per item with a checkbox glyph, an optional quantity prefix, and indented
// attribute lines for whatever is populated.
func (r *Renderer) RenderTXT(l model.List) []byte {
	var b strings.Builder

	title := l.DisplayTitle()
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len([]rune(title))))
	b.WriteString("\n\n")

	for _, it := range l.Items {
		box := "[ ]"
		if it.Completed {
			box = "[x]"
		}
		text := it.Text
		if it.Quantity != nil {
			text = fmt.Sprintf("%dx %s", *it.Quantity, text)
		}
		fmt.Fprintf(&b, "- %s %s\n", box, text)

		if it.Priority != "" {
			fmt.Fprintf(&b, "    priority: %s\n", it.Priority)
		}
		if it.DueDate != nil {
			fmt.Fprintf(&b, "    due: %s\n", it.DueDate.Format("2006-01-02"))
		}
		if it.Assignee != "" {
			fmt.Fprintf(&b, "    assignee: %s\n", it.Assignee)
		}
		if it.Notes != "" {
			fmt.Fprintf(&b, "    notes: %s\n", strings.ReplaceAll(it.Notes, "\n", " "))
		}
		for _, link := range it.Links {
			fmt.Fprintf(&b, "    link: %s\n", link)
		}
	}
	return []byte(b.String())
}
