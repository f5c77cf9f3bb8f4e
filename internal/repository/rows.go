package repository

import (
	"fmt"
	"strings"

	"taskboard/internal/checklist"
	"taskboard/internal/model"
)

// Sheet names inside the template and every project copy.
const (
	MemberSheet  = "ユーザー"
	ProjectSheet = "プロジェクト情報"
	TaskSheet    = "タスク一覧"
)

// FirstDataRow is the sheet row of the first record: row 1 is the header.
// Row numbers handed out as card keys are offset from the data range by it,
// so it must change together with the ranges below.
const FirstDataRow = 2

// Localized status labels stored in the status column.
const (
	LabelTodo       = "未着手"
	LabelInProgress = "進行中"
	LabelDone       = "完了"
)

var statusByLabel = map[string]model.Status{
	LabelTodo:       model.StatusTodo,
	LabelInProgress: model.StatusInProgress,
	LabelDone:       model.StatusDone,
}

var labelByStatus = map[string]string{
	string(model.StatusTodo):       LabelTodo,
	string(model.StatusInProgress): LabelInProgress,
	string(model.StatusDone):       LabelDone,
}

// StatusFromLabel maps a stored label to a status; anything unknown is todo.
func StatusFromLabel(label string) model.Status {
	if s, ok := statusByLabel[strings.TrimSpace(label)]; ok {
		return s
	}
	return model.StatusTodo
}

// LabelForStatus maps an API status to its stored label. Values that are not
// a known status are written through unchanged.
func LabelForStatus(status string) string {
	if l, ok := labelByStatus[status]; ok {
		return l
	}
	return status
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// DecodeMembers maps roster rows (A=name, B=email, C=color).
func DecodeMembers(rows [][]string) []model.Member {
	members := []model.Member{}
	for _, row := range rows {
		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			continue
		}
		members = append(members, model.Member{
			Name:  name,
			Email: cell(row, 1),
			Color: model.NormalizeMemberColor(cell(row, 2)),
		})
	}
	return members
}

// DecodeProjects maps registry rows (A=title, B=open date, C=description,
// D=created date, E=spreadsheet id). Cleared rows are skipped.
func DecodeProjects(rows [][]string) []model.Project {
	projects := []model.Project{}
	for _, row := range rows {
		title := cell(row, 0)
		if strings.TrimSpace(title) == "" {
			continue
		}
		spreadsheetID := strings.TrimSpace(cell(row, 4))
		id := spreadsheetID
		if id == "" {
			id = model.PlaceholderProjectID(len(projects))
		}
		projects = append(projects, model.Project{
			ID:            id,
			Title:         title,
			OpenDate:      cell(row, 1),
			Description:   cell(row, 2),
			CreatedAt:     cell(row, 3),
			SpreadsheetID: spreadsheetID,
			Lists:         []model.TaskList{},
		})
	}
	return projects
}

// DecodeTasks groups task rows (A=title, B=status, C=assignee, D=due date,
// E=list name, F=description, G=created date) into lists. rows must start at
// FirstDataRow. Cards without a stored created date get today.
func DecodeTasks(rows [][]string, today string) []model.TaskList {
	var lists []model.TaskList
	index := map[string]int{}

	for i, row := range rows {
		title := cell(row, 0)
		if strings.TrimSpace(title) == "" {
			continue
		}

		listName := cell(row, 4)
		if strings.TrimSpace(listName) == "" {
			listName = model.UncategorizedList
		}

		rowIndex := i + FirstDataRow
		description := cell(row, 5)
		createdAt := cell(row, 6)
		if createdAt == "" {
			createdAt = today
		}

		card := model.TaskCard{
			ID:          fmt.Sprintf("row-%d", rowIndex),
			Title:       title,
			Description: description,
			Checklist:   checklist.Parse(description),
			Status:      StatusFromLabel(cell(row, 1)),
			Priority:    model.PriorityMedium,
			Assignee:    cell(row, 2),
			DueDate:     cell(row, 3),
			CreatedAt:   createdAt,
			RowIndex:    rowIndex,
		}

		pos, ok := index[listName]
		if !ok {
			pos = len(lists)
			index[listName] = pos
			lists = append(lists, model.TaskList{
				ID:        fmt.Sprintf("list-%d", pos),
				Title:     listName,
				Direction: model.DirectionVertical,
				Color:     model.ListColors[pos%len(model.ListColors)],
				Cards:     []model.TaskCard{},
			})
		}
		lists[pos].Cards = append(lists[pos].Cards, card)
	}

	if lists == nil {
		return []model.TaskList{}
	}
	return lists
}

// EncodeNewTask renders a full A..G row for a new card. New cards always start as todo.
func EncodeNewTask(f model.TaskFields, createdAt string) []string {
	return []string{f.Title, LabelTodo, f.Assignee, f.DueDate, f.ListName, f.Description, createdAt}
}

// EncodeTaskUpdate renders columns A..F. The created date in G is never rewritten.
func EncodeTaskUpdate(f model.TaskFields) []string {
	return []string{f.Title, LabelForStatus(f.Status), f.Assignee, f.DueDate, f.ListName, f.Description}
}

// EncodeProjectInfo renders the vertical info block (B1:B4) of a project copy.
func EncodeProjectInfo(p model.Project) [][]string {
	return [][]string{{p.Title}, {p.OpenDate}, {p.Description}, {p.CreatedAt}}
}

// EncodeRegistryRow renders one registry row (A..E).
func EncodeRegistryRow(p model.Project) []string {
	return []string{p.Title, p.OpenDate, p.Description, p.CreatedAt, p.SpreadsheetID}
}
