// Package tasks manages an in-memory to-do list: tasks carry a description,
// a deadline, a priority and a category, and can be completed, edited,
// deleted, sorted by deadline and filtered by category.
package tasks

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DeadlineLayout is the date format deadlines are entered with.
const DeadlineLayout = "2006-01-02"

type Priority int

const (
	PriorityHigh Priority = iota + 1
	PriorityMedium
	PriorityLow
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return "Unknown"
}

type Category string

const (
	CategoryStudy    Category = "Study"
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryOther    Category = "Other"

	// CategoryAll is a filter value, never stored on a task.
	CategoryAll Category = "ALL"
)

var (
	ErrBadIndex         = errors.New("task number out of range")
	ErrEmptyDescription = errors.New("task description is empty")
	ErrBadDeadline      = errors.New("bad deadline")
	ErrBadPriority      = errors.New("bad priority")
)

// Task is one to-do entry.
type Task struct {
	Description string
	Deadline    time.Time
	Priority    Priority
	Category    Category
	Done        bool
}

// Overdue reports whether the task's deadline has passed without completion.
func (t Task) Overdue(now time.Time) bool {
	return !t.Done && t.Deadline.Before(now)
}

// DueIn returns the whole days until the deadline, negative once past.
func (t Task) DueIn(now time.Time) int {
	return int(t.Deadline.Sub(now).Hours() / 24)
}

// List owns an in-memory task collection. Task numbers are 1-based
// positions in the current order.
type List struct {
	tasks []Task
}

func NewList() *List {
	return &List{tasks: []Task{}}
}

func newTask(description, deadline string, p Priority, c Category) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, ErrEmptyDescription
	}
	when, err := time.Parse(DeadlineLayout, deadline)
	if err != nil {
		return Task{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrBadDeadline, deadline)
	}
	if p < PriorityHigh || p > PriorityLow {
		return Task{}, fmt.Errorf("%w: %d", ErrBadPriority, p)
	}
	if c == "" {
		c = CategoryOther
	}
	return Task{Description: description, Deadline: when, Priority: p, Category: c}, nil
}

func (l *List) Add(description, deadline string, p Priority, c Category) error {
	t, err := newTask(description, deadline, p, c)
	if err != nil {
		return err
	}
	l.tasks = append(l.tasks, t)
	return nil
}

func (l *List) index(n int) (int, error) {
	if n < 1 || n > len(l.tasks) {
		return 0, fmt.Errorf("%w: %d", ErrBadIndex, n)
	}
	return n - 1, nil
}

func (l *List) Complete(n int) error {
	i, err := l.index(n)
	if err != nil {
		return err
	}
	l.tasks[i].Done = true
	return nil
}

func (l *List) Delete(n int) error {
	i, err := l.index(n)
	if err != nil {
		return err
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return nil
}

// Edit replaces task n, keeping its completion state.
func (l *List) Edit(n int, description, deadline string, p Priority, c Category) error {
	i, err := l.index(n)
	if err != nil {
		return err
	}
	t, err := newTask(description, deadline, p, c)
	if err != nil {
		return err
	}
	t.Done = l.tasks[i].Done
	l.tasks[i] = t
	return nil
}

func (l *List) Len() int {
	return len(l.tasks)
}

// All returns the tasks in their current order.
func (l *List) All() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// SortByDeadline orders tasks earliest deadline first, keeping the relative
// order of tasks that share a deadline.
func (l *List) SortByDeadline() {
	sort.SliceStable(l.tasks, func(i, j int) bool {
		return l.tasks[i].Deadline.Before(l.tasks[j].Deadline)
	})
}

// Filter returns the tasks in category c; CategoryAll returns everything.
func (l *List) Filter(c Category) []Task {
	if c == CategoryAll {
		return l.All()
	}
	matches := []Task{}
	for _, t := range l.tasks {
		if strings.EqualFold(string(t.Category), string(c)) {
			matches = append(matches, t)
		}
	}
	return matches
}
