package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddAndAll(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Add("write report", "2026-09-15", PriorityHigh, CategoryWork))
	require.NoError(t, list.Add("buy groceries", "2026-09-01", PriorityLow, CategoryPersonal))

	all := list.All()
	require.Len(t, all, 2)
	require.Equal(t, "write report", all[0].Description)
	require.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), all[0].Deadline)
	require.False(t, all[0].Done)
}

func TestAddValidation(t *testing.T) {
	list := NewList()

	require.ErrorIs(t, list.Add("  ", "2026-09-15", PriorityHigh, CategoryWork), ErrEmptyDescription)
	require.ErrorIs(t, list.Add("x", "15-09-2026", PriorityHigh, CategoryWork), ErrBadDeadline)
	require.ErrorIs(t, list.Add("x", "2026-09-15", Priority(0), CategoryWork), ErrBadPriority)
	require.ErrorIs(t, list.Add("x", "2026-09-15", Priority(4), CategoryWork), ErrBadPriority)
}

func TestAddDefaultsCategory(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Add("x", "2026-09-15", PriorityMedium, ""))
	require.Equal(t, CategoryOther, list.All()[0].Category)
}

func TestComplete(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Add("x", "2026-09-15", PriorityHigh, CategoryWork))

	require.NoError(t, list.Complete(1))
	require.True(t, list.All()[0].Done)

	require.ErrorIs(t, list.Complete(0), ErrBadIndex)
	require.ErrorIs(t, list.Complete(2), ErrBadIndex)
}

func TestDelete(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Add("first", "2026-09-15", PriorityHigh, CategoryWork))
	require.NoError(t, list.Add("second", "2026-09-16", PriorityLow, CategoryStudy))

	require.NoError(t, list.Delete(1))
	require.Equal(t, 1, list.Len())
	require.Equal(t, "second", list.All()[0].Description)

	require.ErrorIs(t, list.Delete(5), ErrBadIndex)
}

func TestEditKeepsCompletion(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Add("draft", "2026-09-15", PriorityLow, CategoryStudy))
	require.NoError(t, list.Complete(1))

	require.NoError(t, list.Edit(1, "final", "2026-09-20", PriorityHigh, CategoryWork))

	task := list.All()[0]
	require.Equal(t, "final", task.Description)
	require.Equal(t, PriorityHigh, task.Priority)
	require.Equal(t, CategoryWork, task.Category)
	require.True(t, task.Done)
}

func TestEditValidation(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Add("x", "2026-09-15", PriorityHigh, CategoryWork))

	require.ErrorIs(t, list.Edit(2, "y", "2026-09-15", PriorityHigh, CategoryWork), ErrBadIndex)
	require.ErrorIs(t, list.Edit(1, "y", "bad", PriorityHigh, CategoryWork), ErrBadDeadline)
}

func TestSortByDeadline(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Add("late", "2026-12-01", PriorityLow, CategoryOther))
	require.NoError(t, list.Add("early", "2026-01-01", PriorityHigh, CategoryWork))
	require.NoError(t, list.Add("middle", "2026-06-01", PriorityMedium, CategoryStudy))

	list.SortByDeadline()

	all := list.All()
	require.Equal(t, "early", all[0].Description)
	require.Equal(t, "middle", all[1].Description)
	require.Equal(t, "late", all[2].Description)
}

func TestSortByDeadlineStable(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Add("a", "2026-06-01", PriorityHigh, CategoryWork))
	require.NoError(t, list.Add("b", "2026-06-01", PriorityLow, CategoryStudy))

	list.SortByDeadline()

	all := list.All()
	require.Equal(t, "a", all[0].Description)
	require.Equal(t, "b", all[1].Description)
}

func TestFilter(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Add("a", "2026-06-01", PriorityHigh, CategoryWork))
	require.NoError(t, list.Add("b", "2026-06-02", PriorityLow, CategoryStudy))
	require.NoError(t, list.Add("c", "2026-06-03", PriorityLow, CategoryWork))

	work := list.Filter(CategoryWork)
	require.Len(t, work, 2)
	require.Equal(t, "a", work[0].Description)
	require.Equal(t, "c", work[1].Description)

	// filter comparison ignores case, the menus accept free-form input
	require.Len(t, list.Filter(Category("work")), 2)
	require.Len(t, list.Filter(CategoryAll), 3)
	require.Len(t, list.Filter(CategoryPersonal), 0)
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	past := Task{Deadline: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	require.True(t, past.Overdue(now))

	past.Done = true
	require.False(t, past.Overdue(now))

	future := Task{Deadline: time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)}
	require.False(t, future.Overdue(now))
}

func TestDueIn(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	task := Task{Deadline: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)}
	require.Equal(t, 5, task.DueIn(now))

	past := Task{Deadline: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)}
	require.Equal(t, -2, past.DueIn(now))
}

func TestPriorityString(t *testing.T) {
	require.Equal(t, "High", PriorityHigh.String())
	require.Equal(t, "Medium", PriorityMedium.String())
	require.Equal(t, "Low", PriorityLow.String())
	require.Equal(t, "Unknown", Priority(9).String())
}
