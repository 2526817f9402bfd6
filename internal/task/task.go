// Package task defines the task record and the in-memory operations on the
// task list: id assignment, lookup, completion, and deletion. It performs
// no I/O.
package task

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when no task carries the requested id.
var ErrNotFound = errors.New("task not found")

// Task represents a single task in the list.
type Task struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// StampLayout is the display form of a task's creation time.
const StampLayout = "2006-01-02 15:04"

// createdAtLayouts are the accepted created_at forms, tried in order.
// Files written by other tooling may carry zone-less or fractional stamps.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreatedTime parses the created_at stamp. The second return value is false
// when the stamp is missing or does not match any accepted form.
func (t Task) CreatedTime() (time.Time, bool) {
	s := strings.TrimSpace(t.CreatedAt)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// CreatedStamp renders the creation time for display, or "Unknown" when the
// stamp is missing or unparsable.
func (t Task) CreatedStamp() string {
	ts, ok := t.CreatedTime()
	if !ok {
		return "Unknown"
	}
	return ts.Format(StampLayout)
}

// Mark returns the status glyph: "✓" for a completed task, a space otherwise.
func (t Task) Mark() string {
	if t.Completed {
		return "✓"
	}
	return " "
}

// List is the ordered task collection. Insertion order is display order.
type List []Task

// NextID returns the id for the next task: 1 for an empty list, otherwise
// the maximum existing id plus one. Ids are never reused, so deletions leave
// gaps.
func (l List) NextID() int {
	next := 1
	for _, t := range l {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

// Add appends a new incomplete task with the given text and returns it.
// Empty text is accepted as a valid, if unusual, description.
func (l *List) Add(text string) Task {
	t := Task{
		ID:        l.NextID(),
		Text:      text,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	*l = append(*l, t)
	return t
}

// Find returns the task with the given id. The second return value reports
// whether it exists; ids are unique, so at most one task matches.
func (l List) Find(id int) (*Task, bool) {
	for i := range l {
		if l[i].ID == id {
			return &l[i], true
		}
	}
	return nil, false
}

// Complete marks the task with the given id as completed. Completing an
// already-completed task succeeds. Returns ErrNotFound when the id is
// absent, leaving the list unchanged.
func (l *List) Complete(id int) error {
	t, ok := l.Find(id)
	if !ok {
		return ErrNotFound
	}
	t.Completed = true
	return nil
}

// Delete removes the task with the given id, preserving the order of the
// remaining tasks. Returns ErrNotFound when the id is absent.
func (l *List) Delete(id int) error {
	for i := range *l {
		if (*l)[i].ID == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Counts reports how many tasks are open and how many are completed.
func (l List) Counts() (open, done int) {
	for _, t := range l {
		if t.Completed {
			done++
		} else {
			open++
		}
	}
	return open, done
}
