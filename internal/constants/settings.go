package constants

const (
	// Settings keys
	SettingTimezone             = "timezone"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingNotificationTime     = "notification_time"
	SettingGardenTheme          = "garden_theme"
	SettingViewMode             = "view_mode"

	// Default Settings Values
	DefaultTimezone             = "Local" // Use system local timezone by default
	DefaultNotificationsEnabled = true
	DefaultNotificationTime     = "09:00"
	DefaultGardenTheme          = "zen"
	DefaultViewMode             = "list"
)
