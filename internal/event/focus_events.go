// SPDX-License-Identifier: MIT

package event

import (
	"fmt"
	"time"
)

// FocusModeEnabled is published when focus mode is switched on. A nil timer
// duration means focus mode runs until explicitly disabled.
type FocusModeEnabled struct {
	Meta
	TimerDurationMinutes *int      `json:"timerDurationMinutes,omitempty"`
	StartedAt            time.Time `json:"startTime"`
}

func NewFocusModeEnabled(timerDurationMinutes *int) *FocusModeEnabled {
	var d *int
	if timerDurationMinutes != nil {
		v := *timerDurationMinutes
		d = &v
	}
	return &FocusModeEnabled{
		Meta:                 NewMeta(TypeFocusModeEnabled),
		TimerDurationMinutes: d,
		StartedAt:            time.Now(),
	}
}

func (e *FocusModeEnabled) Details() string {
	timer := "none"
	if e.TimerDurationMinutes != nil {
		timer = fmt.Sprintf("%d", *e.TimerDurationMinutes)
	}
	return fmt.Sprintf("Focus mode enabled with timer: %s minutes", timer)
}

// FocusModeDisabled is published when focus mode is switched off, either by
// the user or by timer expiry.
type FocusModeDisabled struct {
	Meta
	EndedAt        time.Time `json:"endTime"`
	ExpiredByTimer bool      `json:"expiredByTimer"`
}

func NewFocusModeDisabled(expiredByTimer bool) *FocusModeDisabled {
	return &FocusModeDisabled{
		Meta:           NewMeta(TypeFocusModeDisabled),
		EndedAt:        time.Now(),
		ExpiredByTimer: expiredByTimer,
	}
}

func (e *FocusModeDisabled) Details() string {
	return fmt.Sprintf("Focus mode disabled. Expired by timer: %t", e.ExpiredByTimer)
}

// BreakReminder is published when it's time for a break during focus mode.
type BreakReminder struct {
	Meta
	ReminderAt             time.Time `json:"reminderTime"`
	SessionDurationMinutes int       `json:"sessionDurationMinutes"`
}

func NewBreakReminder(sessionDurationMinutes int) *BreakReminder {
	return &BreakReminder{
		Meta:                   NewMeta(TypeBreakReminder),
		ReminderAt:             time.Now(),
		SessionDurationMinutes: sessionDurationMinutes,
	}
}

func (e *BreakReminder) Details() string {
	return fmt.Sprintf("Break reminder after %d minutes of focus", e.SessionDurationMinutes)
}
