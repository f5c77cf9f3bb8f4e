package model

import "math"

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

type Direction string

const (
	DirectionVertical   Direction = "vertical"
	DirectionHorizontal Direction = "horizontal"
)

const PriorityMedium = "medium"

// UncategorizedList is the list a card falls into when its list name is blank.
const UncategorizedList = "未分類"

// ListColors is cycled by list position.
var ListColors = []string{"#1E4B9E", "#2E7D32", "#E65100", "#C62828", "#6A1B9A", "#00838F"}

type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

type TaskCard struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Checklist   []ChecklistItem `json:"checklist,omitempty"`
	Status      Status          `json:"status"`
	Priority    string          `json:"priority"`
	Assignee    string          `json:"assignee,omitempty"`
	DueDate     string          `json:"dueDate,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	RowIndex    int             `json:"rowIndex"`
}

type TaskList struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Direction Direction  `json:"direction"`
	Color     string     `json:"color"`
	Cards     []TaskCard `json:"cards"`
}

// Progress returns the rounded percentage of done cards across all lists.
func Progress(lists []TaskList) int {
	total, done := 0, 0
	for _, l := range lists {
		for _, c := range l.Cards {
			total++
			if c.Status == StatusDone {
				done++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// DateLayout is the calendar date format stored in the sheets.
const DateLayout = "2006-01-02"

// TaskFields are the user-editable columns of a task row. Status holds the
// API value ("todo", "in-progress", "done").
type TaskFields struct {
	Title       string
	Status      string
	Assignee    string
	DueDate     string
	ListName    string
	Description string
}
