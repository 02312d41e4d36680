// Package repositorytest holds the behaviour every repository.Repository
// implementation must share, as a test suite the backends run against
// themselves.
package repositorytest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-travel-tasks/internal/domain"
	"time-travel-tasks/internal/errors"
	"time-travel-tasks/internal/repository"
)

// Factory returns a fresh, empty repository for a single subtest.
type Factory func(t *testing.T) repository.Repository

// Run exercises the repository contract against repositories built by newRepo.
func Run(t *testing.T, newRepo Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, repo repository.Repository)
	}{
		{"create assigns sequential ids", testCreateAssignsIDs},
		{"get returns stored task", testGetTask},
		{"get missing task", testGetMissing},
		{"list keeps insertion order", testListOrder},
		{"list filters", testListFilters},
		{"update keeps position", testUpdateKeepsPosition},
		{"update missing task", testUpdateMissing},
		{"delete never reuses ids", testDeleteNoReuse},
		{"delete missing task", testDeleteMissing},
		{"count", testCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo(t)
			t.Cleanup(func() { repo.Close() })
			tt.fn(t, repo)
		})
	}
}

var baseTime = time.Date(2025, 6, 1, 12, 30, 0, 123456789, time.UTC)

func create(t *testing.T, repo repository.Repository, text string, priority domain.Priority, category string) *domain.Task {
	t.Helper()
	task := domain.NewTask(domain.TaskInput{Text: text, Priority: priority, Category: &category}, baseTime)
	require.NoError(t, repo.CreateTask(context.Background(), &task))
	return &task
}

func ids(tasks []*domain.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ID)
	}
	return out
}

func testCreateAssignsIDs(t *testing.T, repo repository.Repository) {
	first := create(t, repo, "first", domain.PriorityLow, "a")
	second := create(t, repo, "second", domain.PriorityHigh, "b")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func testGetTask(t *testing.T, repo repository.Repository) {
	created := create(t, repo, "Draw a futuristic city", domain.PriorityMedium, "art")

	got, err := repo.GetTask(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Draw a futuristic city", got.Text)
	assert.Equal(t, domain.PriorityMedium, got.Priority)
	assert.Equal(t, "art", got.Category)
	assert.False(t, got.Completed)
	assert.True(t, baseTime.Equal(got.CreatedAt), "created_at round trip: %v", got.CreatedAt)
}

func testGetMissing(t *testing.T, repo repository.Repository) {
	for _, id := range []int64{0, -1, 999} {
		_, err := repo.GetTask(context.Background(), id)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err), "id %d: %v", id, err)
	}
}

func testListOrder(t *testing.T, repo repository.Repository) {
	empty, err := repo.ListTasks(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	create(t, repo, "one", domain.PriorityLow, "x")
	create(t, repo, "two", domain.PriorityLow, "x")
	create(t, repo, "three", domain.PriorityLow, "x")

	all, err := repo.ListTasks(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(all))
}

func testListFilters(t *testing.T, repo repository.Repository) {
	create(t, repo, "Write a diary entry from the future", domain.PriorityMedium, "writing")
	create(t, repo, "Create a time machine from a cardboard box", domain.PriorityHigh, "crafts")
	create(t, repo, "Plan a trip to the dinosaurs", domain.PriorityHigh, "planning")

	done, err := repo.GetTask(context.Background(), 3)
	require.NoError(t, err)
	toggled := done.Toggled()
	require.NoError(t, repo.UpdateTask(context.Background(), &toggled))

	high := domain.PriorityHigh
	planning := "planning"
	yes := true
	no := false
	search := "CARDBOARD"
	miss := "zzz"

	tests := []struct {
		name   string
		filter domain.ListFilter
		want   []int64
	}{
		{"priority", domain.ListFilter{Priority: &high}, []int64{2, 3}},
		{"category", domain.ListFilter{Category: &planning}, []int64{3}},
		{"completed", domain.ListFilter{Completed: &yes}, []int64{3}},
		{"not completed", domain.ListFilter{Completed: &no}, []int64{1, 2}},
		{"search ignores case", domain.ListFilter{Search: &search}, []int64{2}},
		{"combined", domain.ListFilter{Priority: &high, Completed: &no}, []int64{2}},
		{"no match", domain.ListFilter{Search: &miss}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListTasks(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func testUpdateKeepsPosition(t *testing.T, repo repository.Repository) {
	create(t, repo, "one", domain.PriorityLow, "x")
	second := create(t, repo, "two", domain.PriorityLow, "x")
	create(t, repo, "three", domain.PriorityLow, "x")

	replaced := second.Replaced(domain.TaskInput{Text: "two, revised", Priority: domain.PriorityHigh})
	require.NoError(t, repo.UpdateTask(context.Background(), &replaced))

	all, err := repo.ListTasks(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ids(all))
	assert.Equal(t, "two, revised", all[1].Text)
	assert.Equal(t, domain.PriorityHigh, all[1].Priority)
	assert.Equal(t, domain.DefaultCategory, all[1].Category)
}

func testUpdateMissing(t *testing.T, repo repository.Repository) {
	task := domain.NewTask(domain.TaskInput{Text: "ghost"}, baseTime)
	task.ID = 42
	err := repo.UpdateTask(context.Background(), &task)
	assert.True(t, errors.IsNotFound(err), "got %v", err)
}

func testDeleteNoReuse(t *testing.T, repo repository.Repository) {
	create(t, repo, "one", domain.PriorityLow, "x")
	second := create(t, repo, "two", domain.PriorityLow, "x")

	require.NoError(t, repo.DeleteTask(context.Background(), second.ID))

	_, err := repo.GetTask(context.Background(), second.ID)
	assert.True(t, errors.IsNotFound(err))

	third := create(t, repo, "three", domain.PriorityLow, "x")
	assert.Equal(t, int64(3), third.ID)

	all, err := repo.ListTasks(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(all))
}

func testDeleteMissing(t *testing.T, repo repository.Repository) {
	err := repo.DeleteTask(context.Background(), 7)
	assert.True(t, errors.IsNotFound(err), "got %v", err)
}

func testCount(t *testing.T, repo repository.Repository) {
	count, err := repo.CountTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	create(t, repo, "one", domain.PriorityLow, "x")
	create(t, repo, "two", domain.PriorityLow, "x")

	count, err = repo.CountTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
