// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldEventID   = "event_id"
	FieldEventType = "event_type"
	FieldTaskID    = "task_id"

	// Dispatch fields
	FieldComponent = "component"
	FieldListeners = "listeners"
	FieldDetails   = "details"

	// Store fields
	FieldBackend = "backend"
	FieldPath    = "path"
	FieldEvents  = "events"
)
