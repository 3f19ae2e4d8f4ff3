// SPDX-License-Identifier: MIT

package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownType is returned when decoding a record whose discriminator
// does not name a known variant. The variant set is closed; hitting this
// means the stored bytes came from a different program version.
var ErrUnknownType = errors.New("event: unknown event type")

// Encode serialises an event to its JSON wire form. Identity fields and
// payload fields share one flat object keyed by the variant's tags.
func Encode(e Event) ([]byte, error) {
	buf, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.Type(), err)
	}
	return buf, nil
}

// Decode deserialises an event from its JSON wire form, dispatching on the
// eventType discriminator.
func Decode(data []byte) (Event, error) {
	var probe struct {
		Kind Type `json:"eventType"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	e := newByType(probe.Kind)
	if e == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, probe.Kind)
	}
	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("decode %s: %w", probe.Kind, err)
	}
	return e, nil
}

func newByType(t Type) Event {
	switch t {
	case TypeTaskCreated:
		return &TaskCreated{}
	case TypeTaskUpdated:
		return &TaskUpdated{}
	case TypeTaskDeleted:
		return &TaskDeleted{}
	case TypeTaskCompleted:
		return &TaskCompleted{}
	case TypeTaskScheduled:
		return &TaskScheduled{}
	case TypeTaskPriorityChanged:
		return &TaskPriorityChanged{}
	case TypeTaskMovedToCategory:
		return &TaskMovedToCategory{}
	case TypeTaskSnoozed:
		return &TaskSnoozed{}
	case TypeCategoryCreated:
		return &CategoryCreated{}
	case TypeCategoryUpdated:
		return &CategoryUpdated{}
	case TypeCategoryDeleted:
		return &CategoryDeleted{}
	case TypeCategoryReordered:
		return &CategoryReordered{}
	case TypePreferencesUpdated:
		return &PreferencesUpdated{}
	case TypeFocusModeEnabled:
		return &FocusModeEnabled{}
	case TypeFocusModeDisabled:
		return &FocusModeDisabled{}
	case TypeBreakReminder:
		return &BreakReminder{}
	case TypeReminderTriggered:
		return &ReminderTriggered{}
	case TypeTimeTracked:
		return &TimeTracked{}
	case TypeWeeklyReviewStarted:
		return &WeeklyReviewStarted{}
	case TypeWeeklyReviewCompleted:
		return &WeeklyReviewCompleted{}
	default:
		return nil
	}
}
