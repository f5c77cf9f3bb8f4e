// Package reminder finds cards whose due date is near or past.
package reminder

import (
	"fmt"
	"strings"
	"time"

	"taskboard/internal/model"
)

type Kind string

const (
	KindDueToday Kind = "due-today"
	KindDueSoon  Kind = "due-soon"
	KindOverdue  Kind = "overdue"
)

// SoonWindowDays is how many days ahead a due date raises a reminder.
const SoonWindowDays = 3

// due dates typed into a sheet may come back in either form
var dateLayouts = []string{model.DateLayout, "2006/01/02", "2006/1/2"}

type Reminder struct {
	CardID    string `json:"cardId"`
	RowIndex  int    `json:"rowIndex"`
	Title     string `json:"title"`
	ListTitle string `json:"listTitle"`
	DueDate   string `json:"dueDate"`
	Kind      Kind   `json:"kind"`
	Days      int    `json:"days"`
	Message   string `json:"message"`
}

// Collect returns reminders in board order. Done cards, cards without a due
// date and unparsable dates are skipped. Days counts whole calendar days
// from today to the due date; it is negative when overdue.
func Collect(lists []model.TaskList, today time.Time) []Reminder {
	reminders := []Reminder{}
	for _, l := range lists {
		for _, c := range l.Cards {
			if c.Status == model.StatusDone || strings.TrimSpace(c.DueDate) == "" {
				continue
			}
			due, ok := parseDate(c.DueDate)
			if !ok {
				continue
			}
			days := daysBetween(today, due)
			kind, ok := classify(days)
			if !ok {
				continue
			}
			reminders = append(reminders, Reminder{
				CardID:    c.ID,
				RowIndex:  c.RowIndex,
				Title:     c.Title,
				ListTitle: l.Title,
				DueDate:   c.DueDate,
				Kind:      kind,
				Days:      days,
				Message:   message(kind, c.Title, days),
			})
		}
	}
	return reminders
}

func classify(days int) (Kind, bool) {
	switch {
	case days == 0:
		return KindDueToday, true
	case days < 0:
		return KindOverdue, true
	case days <= SoonWindowDays:
		return KindDueSoon, true
	}
	return "", false
}

func message(kind Kind, title string, days int) string {
	switch kind {
	case KindDueToday:
		return fmt.Sprintf("「%s」の期日は本日です", title)
	case KindOverdue:
		return fmt.Sprintf("「%s」の期日を%d日過ぎています", title, -days)
	default:
		return fmt.Sprintf("「%s」の期日まで%d日", title, days)
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func daysBetween(today, due time.Time) int {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(due.Sub(start).Hours() / 24)
}
