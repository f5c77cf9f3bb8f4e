package repository_test

import (
	"context"
	"testing"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProjectRepo(t *testing.T) (*repository.ProjectRepository, *testutil.FakeSpreadsheet) {
	t.Helper()
	fake := testutil.NewFakeSpreadsheet()
	fake.SetRows("template", repository.ProjectSheet, 1, [][]string{
		{"プロジェクト名", "OPEN日", "説明", "作成日", "スプレッドシートID"},
		{"新店舗", "2025-04-01", "", "2025-01-01", "sheet-a"},
		{"改装", "2025-06-01", "", "2025-01-02", "sheet-b"},
	})
	return repository.NewProjectRepository(fake), fake
}

func TestProjectRepository_FindRow(t *testing.T) {
	repo, _ := setupProjectRepo(t)

	row, err := repo.FindRow(context.Background(), "template", "sheet-b")
	require.NoError(t, err)
	assert.Equal(t, 3, row)

	_, err = repo.FindRow(context.Background(), "template", "sheet-z")
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestProjectRepository_RegisterAfterClearedRow(t *testing.T) {
	// Arrange
	repo, fake := setupProjectRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.ClearRow(ctx, "template", 2))

	// Act
	err := repo.Register(ctx, "template", model.Project{Title: "新規", OpenDate: "2025-07-01", CreatedAt: "2025-01-03", SpreadsheetID: "sheet-c"})

	// Assert
	require.NoError(t, err)
	projects, err := repo.List(ctx, "template")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "sheet-b", projects[0].ID)
	assert.Equal(t, "sheet-c", projects[1].ID)
	assert.Len(t, fake.Rows("template", repository.ProjectSheet), 4)
}

func TestProjectRepository_WriteInfo(t *testing.T) {
	repo, fake := setupProjectRepo(t)
	fake.AddSpreadsheet("sheet-c")

	err := repo.WriteInfo(context.Background(), model.Project{Title: "新規", OpenDate: "2025-07-01", Description: "説明", CreatedAt: "2025-01-03", SpreadsheetID: "sheet-c"})

	require.NoError(t, err)
	assert.Equal(t, "プロジェクト情報!B1:B4", fake.CallsFor("UpdateValues")[0].Range)
	assert.Equal(t, [][]string{{"", "新規"}, {"", "2025-07-01"}, {"", "説明"}, {"", "2025-01-03"}}, fake.Rows("sheet-c", repository.ProjectSheet))
}

func TestMemberRepository_FindByEmail(t *testing.T) {
	fake := testutil.NewFakeSpreadsheet()
	fake.SetRows("template", repository.MemberSheet, 1, [][]string{
		{"名前", "メール", "色"},
		{"佐藤", "Sato@Example.com", "Red"},
	})
	repo := repository.NewMemberRepository(fake)

	m, err := repo.FindByEmail(context.Background(), "template", " sato@example.com ")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "佐藤", m.Name)

	m, err = repo.FindByEmail(context.Background(), "template", "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, m)
}
