// SPDX-License-Identifier: MIT

package model

// UserPreferences holds the single user's settings.
type UserPreferences struct {
	// General settings
	StartOnBoot    bool   `json:"startOnBoot"`
	MinimizeToTray bool   `json:"minimizeToTray"`
	DefaultView    string `json:"defaultView,omitempty"` // today, upcoming, calendar, all
	Language       string `json:"language,omitempty"`

	// Appearance settings
	Theme       string `json:"theme,omitempty"` // light, dark
	AccentColor string `json:"accentColor,omitempty"`
	FontSize    int    `json:"fontSize,omitempty"`

	// Notification settings
	DesktopNotificationsEnabled bool `json:"desktopNotificationsEnabled"`
	SoundEnabled                bool `json:"soundEnabled"`
	ReminderLeadTimeMinutes     int  `json:"reminderLeadTimeMinutes,omitempty"`
}

// Clone returns a copy of the preferences.
func (p UserPreferences) Clone() UserPreferences {
	return p
}
