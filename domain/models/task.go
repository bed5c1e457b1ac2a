package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusDone    TaskStatus = "done"
	TaskStatusNotDone TaskStatus = "not_done"
)

// ParseTaskStatus accepts only the exact enum spelling, no case folding.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case TaskStatusDone, TaskStatusNotDone:
		return TaskStatus(s), true
	default:
		return "", false
	}
}

func (s TaskStatus) Valid() bool {
	_, ok := ParseTaskStatus(string(s))
	return ok
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func ParseTaskPriority(s string) (TaskPriority, bool) {
	switch TaskPriority(s) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return TaskPriority(s), true
	default:
		return "", false
	}
}

func (p TaskPriority) Valid() bool {
	_, ok := ParseTaskPriority(string(p))
	return ok
}

const (
	DefaultTaskStatus   = TaskStatusNotDone
	DefaultTaskPriority = TaskPriorityMedium
)

// Task is the single persisted resource. Column names are part of the
// external contract, so they are pinned explicitly.
type Task struct {
	ID          int64        `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string       `gorm:"column:title;not null"`
	Description *string      `gorm:"column:description"`
	DueDate     time.Time    `gorm:"column:due_date;not null"`
	CreateDate  time.Time    `gorm:"column:create_date;not null"`
	Status      TaskStatus   `gorm:"column:status;type:varchar(16);not null;default:'not_done'"`
	Priority    TaskPriority `gorm:"column:priority;type:varchar(16);not null;default:'medium'"`
	Category    *string      `gorm:"column:category"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskPatch carries the updatable subset of a task. A nil field is left
// untouched; id and create_date cannot be expressed here.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *TaskStatus
	Priority    *TaskPriority
	Category    *string
}

// Columns returns column -> value for every field present in the patch.
func (p TaskPatch) Columns() map[string]any {
	cols := make(map[string]any, 6)
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.DueDate != nil {
		cols["due_date"] = *p.DueDate
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.Priority != nil {
		cols["priority"] = *p.Priority
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	return cols
}

func (p TaskPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Valid reports whether every enum value carried by the patch is in domain.
func (p TaskPatch) Valid() bool {
	if p.Status != nil && !p.Status.Valid() {
		return false
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return false
	}
	return true
}
