// SPDX-License-Identifier: MIT

package event

import (
	"github.com/dayflow/dayflow/internal/model"
)

// PreferencesUpdated is published when user preferences are updated.
type PreferencesUpdated struct {
	Meta
	OldPreferences model.UserPreferences `json:"oldPreferences"`
	NewPreferences model.UserPreferences `json:"newPreferences"`
}

func NewPreferencesUpdated(oldPrefs, newPrefs model.UserPreferences) *PreferencesUpdated {
	return &PreferencesUpdated{
		Meta:           NewMeta(TypePreferencesUpdated),
		OldPreferences: oldPrefs.Clone(),
		NewPreferences: newPrefs.Clone(),
	}
}

func (e *PreferencesUpdated) Details() string {
	return "User preferences updated"
}
