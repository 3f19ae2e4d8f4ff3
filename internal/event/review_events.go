// SPDX-License-Identifier: MIT

package event

import (
	"fmt"
	"time"
)

// WeeklyReviewStarted is published when a weekly review begins.
type WeeklyReviewStarted struct {
	Meta
	WeekStart time.Time `json:"weekStartDate"`
	WeekEnd   time.Time `json:"weekEndDate"`
}

func NewWeeklyReviewStarted(weekStart, weekEnd time.Time) *WeeklyReviewStarted {
	return &WeeklyReviewStarted{Meta: NewMeta(TypeWeeklyReviewStarted), WeekStart: weekStart, WeekEnd: weekEnd}
}

func (e *WeeklyReviewStarted) Details() string {
	return fmt.Sprintf("Weekly review started for week: %s to %s",
		e.WeekStart.Format("2006-01-02"), e.WeekEnd.Format("2006-01-02"))
}

// WeeklyReviewCompleted is published when a weekly review finishes.
type WeeklyReviewCompleted struct {
	Meta
	WeekStart     time.Time `json:"weekStartDate"`
	WeekEnd       time.Time `json:"weekEndDate"`
	ReviewedTasks int       `json:"reviewedTasksCount"`
}

func NewWeeklyReviewCompleted(weekStart, weekEnd time.Time, reviewedTasks int) *WeeklyReviewCompleted {
	return &WeeklyReviewCompleted{
		Meta:          NewMeta(TypeWeeklyReviewCompleted),
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		ReviewedTasks: reviewedTasks,
	}
}

func (e *WeeklyReviewCompleted) Details() string {
	return fmt.Sprintf("Weekly review completed for week: %s to %s (reviewed %d tasks)",
		e.WeekStart.Format("2006-01-02"), e.WeekEnd.Format("2006-01-02"), e.ReviewedTasks)
}
