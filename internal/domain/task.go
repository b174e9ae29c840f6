package domain

import (
	"time"
)

// Task priority tokens. The set is closed; blank input normalizes to required.
const (
	PriorityRequired = "required"
	PriorityOptional = "optional"
)

// Task represents an academic task with a due date in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	Title       string
	TaskType    string
	Subject     string
	DueDate     time.Time // calendar date only, normalized to midnight UTC
	Description string
	IsDone      bool
	Priority    string
	OwnerID     *int64 // nil unless per-user ownership is enabled
}

// NewTask creates a new Task with the given fields and default state.
func NewTask(title, taskType, subject string, dueDate time.Time) Task {
	return Task{
		Title:    title,
		TaskType: taskType,
		Subject:  subject,
		DueDate:  DateOnly(dueDate),
		Priority: PriorityRequired,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != "" && t.TaskType != "" && t.Subject != "" && !t.DueDate.IsZero()
}

// IsOverdue reports whether the task is not done and due before today.
func (t Task) IsOverdue(today time.Time) bool {
	return !t.IsDone && DateOnly(t.DueDate).Before(DateOnly(today))
}

// IsSoon reports whether the task is not done and due today or tomorrow.
// This is a display highlight, deliberately narrower than the week bucket.
func (t Task) IsSoon(today time.Time) bool {
	if t.IsDone {
		return false
	}
	delta := DaysUntil(t.DueDate, today)
	return delta >= 0 && delta <= 1
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// DateOnly strips the time-of-day component, anchoring the date at midnight UTC.
// All due-date arithmetic goes through this so day differences are exact.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the signed number of whole days from today until due.
func DaysUntil(due, today time.Time) int {
	return int(DateOnly(due).Sub(DateOnly(today)).Hours() / 24)
}
