// Package checklist converts between a card description and its checklist items.
//
// A checklist line starts with the bullet "・"; a checked item continues with
// "[x]" (or "[X]"). Any other line is narrative text and is not part of the
// checklist, so Serialize(Parse(s)) drops it.
package checklist

import (
	"fmt"
	"strings"

	"taskboard/internal/model"
)

const (
	Bullet      = "・"
	CheckedMark = "[x]"
)

// Parse extracts checklist items from a description. Item ids derive from the
// line index and change when lines are inserted or reordered.
func Parse(description string) []model.ChecklistItem {
	if description == "" {
		return nil
	}

	var items []model.ChecklistItem
	for i, line := range strings.Split(description, "\n") {
		content, ok := strings.CutPrefix(strings.TrimSpace(line), Bullet)
		if !ok {
			continue
		}
		content = strings.TrimSpace(content)

		checked := false
		if strings.HasPrefix(content, "[x]") || strings.HasPrefix(content, "[X]") {
			checked = true
			content = strings.TrimSpace(content[len(CheckedMark):])
		}

		items = append(items, model.ChecklistItem{
			ID:      fmt.Sprintf("item-%d", i),
			Text:    content,
			Checked: checked,
		})
	}
	return items
}

// Serialize renders items as bullet lines joined by newlines.
func Serialize(items []model.ChecklistItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		prefix := Bullet
		if item.Checked {
			prefix += CheckedMark
		}
		lines = append(lines, prefix+item.Text)
	}
	return strings.Join(lines, "\n")
}
