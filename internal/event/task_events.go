// SPDX-License-Identifier: MIT

package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dayflow/dayflow/internal/model"
)

// TaskCreated is published when a new task is created.
type TaskCreated struct {
	Meta
	Task model.Task `json:"task"`
}

// NewTaskCreated snapshots the created task.
func NewTaskCreated(task model.Task) *TaskCreated {
	return &TaskCreated{Meta: NewMeta(TypeTaskCreated), Task: task.Clone()}
}

func (e *TaskCreated) Details() string {
	return fmt.Sprintf("Task created: %s (ID: %s)", e.Task.Title, e.Task.ID)
}

// TaskUpdated is published when a task is updated. It carries both the old
// and new states of the task.
type TaskUpdated struct {
	Meta
	OldTask model.Task `json:"oldTask"`
	NewTask model.Task `json:"newTask"`
}

// NewTaskUpdated snapshots the task before and after the update.
func NewTaskUpdated(oldTask, newTask model.Task) *TaskUpdated {
	return &TaskUpdated{Meta: NewMeta(TypeTaskUpdated), OldTask: oldTask.Clone(), NewTask: newTask.Clone()}
}

func (e *TaskUpdated) Details() string {
	return fmt.Sprintf("Task updated: %s (ID: %s)", e.NewTask.Title, e.NewTask.ID)
}

// TaskDeleted is published when a task is deleted. It carries the task as
// it existed at deletion time.
type TaskDeleted struct {
	Meta
	Task model.Task `json:"task"`
}

func NewTaskDeleted(task model.Task) *TaskDeleted {
	return &TaskDeleted{Meta: NewMeta(TypeTaskDeleted), Task: task.Clone()}
}

func (e *TaskDeleted) Details() string {
	return fmt.Sprintf("Task deleted: %s (ID: %s)", e.Task.Title, e.Task.ID)
}

// TaskCompleted is published when a task is marked as complete.
type TaskCompleted struct {
	Meta
	TaskID      uuid.UUID `json:"taskId"`
	CompletedAt time.Time `json:"completionTimestamp"`
}

func NewTaskCompleted(taskID uuid.UUID, completedAt time.Time) *TaskCompleted {
	return &TaskCompleted{Meta: NewMeta(TypeTaskCompleted), TaskID: taskID, CompletedAt: completedAt}
}

func (e *TaskCompleted) Details() string {
	return fmt.Sprintf("Task completed: ID %s at %s", e.TaskID, e.CompletedAt.Format(time.RFC3339))
}

// TaskScheduled is published when a task is scheduled for a specific date.
type TaskScheduled struct {
	Meta
	TaskID        uuid.UUID `json:"taskId"`
	ScheduledDate time.Time `json:"scheduledDate"`
}

func NewTaskScheduled(taskID uuid.UUID, scheduledDate time.Time) *TaskScheduled {
	return &TaskScheduled{Meta: NewMeta(TypeTaskScheduled), TaskID: taskID, ScheduledDate: scheduledDate}
}

func (e *TaskScheduled) Details() string {
	return fmt.Sprintf("Task scheduled: ID %s for %s", e.TaskID, e.ScheduledDate.Format("2006-01-02"))
}

// TaskPriorityChanged is published when a task's priority is changed.
type TaskPriorityChanged struct {
	Meta
	TaskID      uuid.UUID      `json:"taskId"`
	OldPriority model.Priority `json:"oldPriority"`
	NewPriority model.Priority `json:"newPriority"`
}

func NewTaskPriorityChanged(taskID uuid.UUID, oldPriority, newPriority model.Priority) *TaskPriorityChanged {
	return &TaskPriorityChanged{
		Meta:        NewMeta(TypeTaskPriorityChanged),
		TaskID:      taskID,
		OldPriority: oldPriority,
		NewPriority: newPriority,
	}
}

func (e *TaskPriorityChanged) Details() string {
	return fmt.Sprintf("Task priority changed: ID %s from %s to %s", e.TaskID, e.OldPriority, e.NewPriority)
}

// TaskMovedToCategory is published when a task is moved to a different category.
type TaskMovedToCategory struct {
	Meta
	TaskID        uuid.UUID `json:"taskId"`
	OldCategoryID uuid.UUID `json:"oldCategoryId"`
	NewCategoryID uuid.UUID `json:"newCategoryId"`
}

func NewTaskMovedToCategory(taskID, oldCategoryID, newCategoryID uuid.UUID) *TaskMovedToCategory {
	return &TaskMovedToCategory{
		Meta:          NewMeta(TypeTaskMovedToCategory),
		TaskID:        taskID,
		OldCategoryID: oldCategoryID,
		NewCategoryID: newCategoryID,
	}
}

func (e *TaskMovedToCategory) Details() string {
	return fmt.Sprintf("Task moved: ID %s from category %s to %s", e.TaskID, e.OldCategoryID, e.NewCategoryID)
}

// TaskSnoozed is published when a task is snoozed until a future date/time.
type TaskSnoozed struct {
	Meta
	TaskID      uuid.UUID `json:"taskId"`
	SnoozeUntil time.Time `json:"snoozeUntil"`
}

func NewTaskSnoozed(taskID uuid.UUID, snoozeUntil time.Time) *TaskSnoozed {
	return &TaskSnoozed{Meta: NewMeta(TypeTaskSnoozed), TaskID: taskID, SnoozeUntil: snoozeUntil}
}

func (e *TaskSnoozed) Details() string {
	return fmt.Sprintf("Task snoozed: ID %s until %s", e.TaskID, e.SnoozeUntil.Format(time.RFC3339))
}
