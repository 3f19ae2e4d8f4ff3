// SPDX-License-Identifier: MIT

// Package model defines the domain entities whose snapshots ride inside
// event payloads. Entities are plain data; services own their lifecycle.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Priority ranks a task's urgency.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// TaskStatus tracks where a task sits in its lifecycle.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
	StatusCancelled  TaskStatus = "CANCELLED"
)

// Subtask is a single checklist item belonging to a task.
type Subtask struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
}

// Task is a user task with all associated metadata.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`

	DueDate       time.Time `json:"dueDate,omitzero"`
	DueTime       time.Time `json:"dueTime,omitzero"`
	ScheduledDate time.Time `json:"scheduledDate,omitzero"`

	Priority   Priority   `json:"priority,omitempty"`
	Status     TaskStatus `json:"status,omitempty"`
	CategoryID uuid.UUID  `json:"categoryId,omitzero"`

	Tags     []string  `json:"tags,omitempty"`
	Subtasks []Subtask `json:"subtasks,omitempty"`

	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
	CompletedAt time.Time `json:"completedAt,omitzero"`

	ReminderMinutesBefore int       `json:"reminderMinutesBefore,omitempty"`
	SnoozeUntil           time.Time `json:"snoozeUntil,omitzero"`

	EstimatedDuration time.Duration `json:"estimatedDuration,omitempty"`
	ActualDuration    time.Duration `json:"actualDuration,omitempty"`
}

// Clone returns a deep copy. Mutating the original after cloning never
// affects the copy.
func (t Task) Clone() Task {
	cp := t
	if t.Tags != nil {
		cp.Tags = append([]string(nil), t.Tags...)
	}
	if t.Subtasks != nil {
		cp.Subtasks = append([]Subtask(nil), t.Subtasks...)
	}
	return cp
}
