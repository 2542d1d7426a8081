package constants

import "time"

const (
	AppName            = "timebloom"
	Version            = "v0.3.0"
	DefaultConfigPath  = "~/.config/timebloom/timebloom.db"
	DefaultKeyringUser = "database-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "timebloom-"
	BackupFileSuffix = ".db"

	// Export format version written by the garden exporter
	ExportVersion = 1

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "timebloom-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.timebloom"

	// DeadGraceMultiplier scales a frequency's withering grace period into the
	// point of no return: a plant missed for more than grace*multiplier whole
	// calendar days is dead and can only be restarted from seed.
	DeadGraceMultiplier = 3

	// MaxGrowthPoints is the point total at which a plant reaches full growth.
	MaxGrowthPoints = 30.0
)

// Growth stage point thresholds (inclusive low, exclusive high).
const (
	SproutThreshold = 3.0
	PlantThreshold  = 7.0
	FlowerThreshold = 15.0
	FruitThreshold  = 30.0
)

// Achievement rain-drop rewards.
const (
	RewardFirstCheckIn = 1
	RewardWeekStreak   = 3
	RewardMonthStreak  = 10
	RewardFruitStage   = 5
)
