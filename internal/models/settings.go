package models

// Settings represents application-wide settings
type Settings struct {
	Timezone             string `json:"timezone"`              // IANA timezone name, or "Local" for the system timezone
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether reminder notifications are enabled
	NotificationTime     string `json:"notification_time"`     // preferred reminder time of day, e.g. "09:00"
	GardenTheme          string `json:"garden_theme"`          // visual theme for the garden view
	ViewMode             string `json:"view_mode"`             // garden list layout: "list" or "grid"
}
