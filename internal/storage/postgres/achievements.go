package postgres

import (
	"fmt"
	"time"

	"github.com/julianstephens/timebloom/internal/models"
)

const insertAchievementQuery = `
	INSERT INTO achievements (id, plant_id, type, title, description, unlocked_at, rain_drops)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT(plant_id, type) DO NOTHING`

func (s *Store) AddAchievement(a models.Achievement) error {
	_, err := s.db.Exec(insertAchievementQuery,
		a.ID, a.PlantID, string(a.Type), a.Title, a.Description,
		a.UnlockedAt.Format(time.RFC3339), a.RainDrops)
	return err
}

func (s *Store) GetAchievementsForPlant(plantID string) ([]models.Achievement, error) {
	rows, err := s.db.Query(`
		SELECT id, plant_id, type, title, description, unlocked_at, rain_drops
		FROM achievements WHERE plant_id = $1 ORDER BY unlocked_at`, plantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAchievements(rows)
}

func (s *Store) GetAllAchievements() ([]models.Achievement, error) {
	rows, err := s.db.Query(`
		SELECT id, plant_id, type, title, description, unlocked_at, rain_drops
		FROM achievements ORDER BY unlocked_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAchievements(rows)
}

type achievementRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanAchievements(rows achievementRows) ([]models.Achievement, error) {
	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		var achievementType, unlockedAt string
		if err := rows.Scan(&a.ID, &a.PlantID, &achievementType, &a.Title, &a.Description, &unlockedAt, &a.RainDrops); err != nil {
			return nil, err
		}
		var err error
		a.UnlockedAt, err = time.Parse(time.RFC3339, unlockedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse unlocked_at for achievement %s: %w", a.ID, err)
		}
		a.Type = models.AchievementType(achievementType)
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}
