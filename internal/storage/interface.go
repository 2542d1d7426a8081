package storage

import "github.com/julianstephens/timebloom/internal/models"

// Provider is the persistence surface the rest of the application talks to.
// Implementations return sql.ErrNoRows for single-record lookups that find
// nothing; the repository layer maps that to its own error taxonomy.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Plants
	AddPlant(models.Plant) error
	GetPlant(id string) (models.Plant, error)
	GetPlantByName(name string) (models.Plant, error)
	GetAllPlants(includeArchived, includeDeleted bool) ([]models.Plant, error)
	UpdatePlant(models.Plant) error
	ArchivePlant(id string) error
	UnarchivePlant(id string) error
	DeletePlant(id string) error
	RestorePlant(id string) error
	// PurgePlant permanently removes a plant and, via cascade, its check-ins
	// and achievements.
	PurgePlant(id string) error

	// Check-ins
	// RecordCheckIn persists the updated plant, its new check-in event, and
	// any newly unlocked achievements as one transaction: either all of them
	// commit or none do.
	RecordCheckIn(plant models.Plant, checkIn models.CheckIn, unlocked []models.Achievement) error
	AddCheckIn(models.CheckIn) error
	GetCheckInsForPlant(plantID string, limit int) ([]models.CheckIn, error)
	GetAllCheckIns() ([]models.CheckIn, error)

	// Achievements
	AddAchievement(models.Achievement) error
	GetAchievementsForPlant(plantID string) ([]models.Achievement, error)
	GetAllAchievements() ([]models.Achievement, error)

	// Utils
	GetConfigPath() string
}
