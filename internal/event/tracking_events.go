// SPDX-License-Identifier: MIT

package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReminderTriggered is published when a task reminder fires.
type ReminderTriggered struct {
	Meta
	TaskID     uuid.UUID `json:"taskId"`
	TaskTitle  string    `json:"taskTitle"`
	ReminderAt time.Time `json:"reminderTime"`
}

func NewReminderTriggered(taskID uuid.UUID, taskTitle string, reminderAt time.Time) *ReminderTriggered {
	return &ReminderTriggered{
		Meta:       NewMeta(TypeReminderTriggered),
		TaskID:     taskID,
		TaskTitle:  taskTitle,
		ReminderAt: reminderAt,
	}
}

func (e *ReminderTriggered) Details() string {
	return fmt.Sprintf("Reminder triggered for task: %s (ID: %s) at %s",
		e.TaskTitle, e.TaskID, e.ReminderAt.Format(time.RFC3339))
}

// TimeTracked is published when time is tracked against a task.
type TimeTracked struct {
	Meta
	TaskID    uuid.UUID     `json:"taskId"`
	Tracked   time.Duration `json:"trackedDuration"`
	StartedAt time.Time     `json:"startTime"`
	EndedAt   time.Time     `json:"endTime"`
}

func NewTimeTracked(taskID uuid.UUID, tracked time.Duration, startedAt, endedAt time.Time) *TimeTracked {
	return &TimeTracked{
		Meta:      NewMeta(TypeTimeTracked),
		TaskID:    taskID,
		Tracked:   tracked,
		StartedAt: startedAt,
		EndedAt:   endedAt,
	}
}

func (e *TimeTracked) Details() string {
	return fmt.Sprintf("Task %s: tracked %d minutes from %s to %s",
		e.TaskID, int64(e.Tracked.Minutes()), e.StartedAt.Format(time.RFC3339), e.EndedAt.Format(time.RFC3339))
}
