// Package export implements garden backups as portable JSON documents.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/timebloom/internal/constants"
	"github.com/julianstephens/timebloom/internal/logger"
	"github.com/julianstephens/timebloom/internal/models"
)

// Store is the slice of the storage provider the exporter needs.
type Store interface {
	GetAllPlants(includeArchived, includeDeleted bool) ([]models.Plant, error)
	GetAllCheckIns() ([]models.CheckIn, error)
	GetAllAchievements() ([]models.Achievement, error)
	GetPlantByName(name string) (models.Plant, error)
	AddPlant(models.Plant) error
	AddCheckIn(models.CheckIn) error
	AddAchievement(models.Achievement) error
}

// GardenBackup is the on-disk export document. ExportDate is epoch
// milliseconds for interoperability with older exports.
type GardenBackup struct {
	Version      int                  `json:"version"`
	ExportDate   int64                `json:"exportDate"`
	Plants       []models.Plant       `json:"plants"`
	CheckIns     []models.CheckIn     `json:"checkIns"`
	Achievements []models.Achievement `json:"achievements,omitempty"`
}

// Exporter reads and writes garden backups against a storage provider.
type Exporter struct {
	store Store
}

func NewExporter(store Store) *Exporter {
	return &Exporter{store: store}
}

// Snapshot collects the full garden, including archived and soft-deleted
// plants, into a backup document.
func (e *Exporter) Snapshot() (GardenBackup, error) {
	plants, err := e.store.GetAllPlants(true, true)
	if err != nil {
		return GardenBackup{}, fmt.Errorf("failed to load plants: %w", err)
	}
	checkIns, err := e.store.GetAllCheckIns()
	if err != nil {
		return GardenBackup{}, fmt.Errorf("failed to load check-ins: %w", err)
	}
	achievements, err := e.store.GetAllAchievements()
	if err != nil {
		return GardenBackup{}, fmt.Errorf("failed to load achievements: %w", err)
	}

	if plants == nil {
		plants = []models.Plant{}
	}
	if checkIns == nil {
		checkIns = []models.CheckIn{}
	}

	return GardenBackup{
		Version:      constants.ExportVersion,
		ExportDate:   time.Now().UnixMilli(),
		Plants:       plants,
		CheckIns:     checkIns,
		Achievements: achievements,
	}, nil
}

// WriteFile exports the garden to path as indented JSON.
func (e *Exporter) WriteFile(path string) error {
	backup, err := e.Snapshot()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	logger.Info("Exported garden", "path", path, "plants", len(backup.Plants), "check_ins", len(backup.CheckIns))
	return nil
}

// Parse decodes and validates a backup document.
func Parse(data []byte) (GardenBackup, error) {
	var backup GardenBackup
	if err := json.Unmarshal(data, &backup); err != nil {
		return GardenBackup{}, fmt.Errorf("not a valid garden backup: %w", err)
	}
	if backup.Version <= 0 || backup.Version > constants.ExportVersion {
		return GardenBackup{}, fmt.Errorf("unsupported backup version %d", backup.Version)
	}

	for i, p := range backup.Plants {
		if p.Name == "" {
			return GardenBackup{}, fmt.Errorf("plant %d has no name", i)
		}
		if _, err := models.ParseDifficulty(string(p.Difficulty)); err != nil {
			return GardenBackup{}, fmt.Errorf("plant %q: %w", p.Name, err)
		}
		if _, err := models.ParseFrequency(string(p.Frequency)); err != nil {
			return GardenBackup{}, fmt.Errorf("plant %q: %w", p.Name, err)
		}
	}

	return backup, nil
}

// ParseFile reads and validates a backup file.
func ParseFile(path string) (GardenBackup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GardenBackup{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	return Parse(data)
}

// ImportResult reports what an import added.
type ImportResult struct {
	Plants       int
	CheckIns     int
	Achievements int
	Skipped      []string
}

// Import merges a backup into the garden. Every imported record gets a fresh
// ID so importing into a non-empty garden can never collide; check-in and
// achievement references are remapped to the new plant IDs. Plants whose
// name already exists are skipped along with their history.
func (e *Exporter) Import(backup GardenBackup) (ImportResult, error) {
	var result ImportResult
	idMap := make(map[string]string, len(backup.Plants))

	for _, plant := range backup.Plants {
		if _, err := e.store.GetPlantByName(plant.Name); err == nil {
			result.Skipped = append(result.Skipped, plant.Name)
			continue
		}

		oldID := plant.ID
		plant.ID = uuid.New().String()
		idMap[oldID] = plant.ID

		if err := e.store.AddPlant(plant); err != nil {
			return result, fmt.Errorf("failed to import plant %q: %w", plant.Name, err)
		}
		result.Plants++
	}

	for _, checkIn := range backup.CheckIns {
		newID, ok := idMap[checkIn.PlantID]
		if !ok {
			continue
		}
		checkIn.ID = uuid.New().String()
		checkIn.PlantID = newID

		if err := e.store.AddCheckIn(checkIn); err != nil {
			return result, fmt.Errorf("failed to import check-in: %w", err)
		}
		result.CheckIns++
	}

	for _, achievement := range backup.Achievements {
		newID, ok := idMap[achievement.PlantID]
		if !ok {
			continue
		}
		achievement.ID = uuid.New().String()
		achievement.PlantID = newID

		if err := e.store.AddAchievement(achievement); err != nil {
			return result, fmt.Errorf("failed to import achievement: %w", err)
		}
		result.Achievements++
	}

	logger.Info("Imported garden", "plants", result.Plants, "check_ins", result.CheckIns, "skipped", len(result.Skipped))
	return result, nil
}

// ImportFile reads, validates, and imports a backup file.
func (e *Exporter) ImportFile(path string) (ImportResult, error) {
	backup, err := ParseFile(path)
	if err != nil {
		return ImportResult{}, err
	}
	return e.Import(backup)
}
