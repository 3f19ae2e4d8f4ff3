// SPDX-License-Identifier: MIT

// Package event defines the closed set of domain events published on the
// dispatcher and recorded in the event store. Events are immutable facts:
// constructed once, published once, never mutated. Payload snapshots are
// deep copies taken at construction, so later mutation of the live domain
// object never alters the recorded state.
package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type is the stable discriminator identifying an event variant. It is the
// primary dimension for store queries and dispatcher routing.
type Type string

const (
	TypeTaskCreated         Type = "TaskCreatedEvent"
	TypeTaskUpdated         Type = "TaskUpdatedEvent"
	TypeTaskDeleted         Type = "TaskDeletedEvent"
	TypeTaskCompleted       Type = "TaskCompletedEvent"
	TypeTaskScheduled       Type = "TaskScheduledEvent"
	TypeTaskPriorityChanged Type = "TaskPriorityChangedEvent"
	TypeTaskMovedToCategory Type = "TaskMovedToCategoryEvent"
	TypeTaskSnoozed         Type = "TaskSnoozedEvent"

	TypeCategoryCreated   Type = "CategoryCreatedEvent"
	TypeCategoryUpdated   Type = "CategoryUpdatedEvent"
	TypeCategoryDeleted   Type = "CategoryDeletedEvent"
	TypeCategoryReordered Type = "CategoryReorderedEvent"

	TypePreferencesUpdated Type = "PreferencesUpdatedEvent"

	TypeFocusModeEnabled  Type = "FocusModeEnabledEvent"
	TypeFocusModeDisabled Type = "FocusModeDisabledEvent"
	TypeBreakReminder     Type = "BreakReminderEvent"

	TypeReminderTriggered Type = "ReminderTriggeredEvent"

	// Historical wire name, kept for audit-log continuity.
	TypeTimeTracked Type = "TIME_TRACKED"

	TypeWeeklyReviewStarted   Type = "WeeklyReviewStartedEvent"
	TypeWeeklyReviewCompleted Type = "WeeklyReviewCompletedEvent"
)

// Types returns every known event type. The set is closed; the dispatcher
// and store never need runtime extension.
func Types() []Type {
	return []Type{
		TypeTaskCreated,
		TypeTaskUpdated,
		TypeTaskDeleted,
		TypeTaskCompleted,
		TypeTaskScheduled,
		TypeTaskPriorityChanged,
		TypeTaskMovedToCategory,
		TypeTaskSnoozed,
		TypeCategoryCreated,
		TypeCategoryUpdated,
		TypeCategoryDeleted,
		TypeCategoryReordered,
		TypePreferencesUpdated,
		TypeFocusModeEnabled,
		TypeFocusModeDisabled,
		TypeBreakReminder,
		TypeReminderTriggered,
		TypeTimeTracked,
		TypeWeeklyReviewStarted,
		TypeWeeklyReviewCompleted,
	}
}

// Event is an immutable record of a single completed domain occurrence.
type Event interface {
	// ID is the globally unique identifier, assigned at construction.
	ID() uuid.UUID
	// Type is the variant discriminator.
	Type() Type
	// Timestamp is the construction-time instant, not publish or persist time.
	Timestamp() time.Time
	// Details is a human-readable one-line summary for display and logging.
	Details() string
}

// Meta carries the identity fields common to every variant. Embed it and
// construct it with NewMeta; nothing changes it afterwards.
type Meta struct {
	EventID   uuid.UUID `json:"eventId"`
	Kind      Type      `json:"eventType"`
	CreatedAt time.Time `json:"timestamp"`
}

// NewMeta assigns a fresh event identity for the given type.
func NewMeta(t Type) Meta {
	return Meta{
		EventID:   uuid.New(),
		Kind:      t,
		CreatedAt: time.Now(),
	}
}

func (m Meta) ID() uuid.UUID        { return m.EventID }
func (m Meta) Type() Type           { return m.Kind }
func (m Meta) Timestamp() time.Time { return m.CreatedAt }

// String renders the identity triple, mirroring the audit-log line format.
func (m Meta) String() string {
	return fmt.Sprintf("%s[id=%s, timestamp=%s]", m.Kind, m.EventID, m.CreatedAt.Format(time.RFC3339))
}
