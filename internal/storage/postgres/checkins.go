package postgres

import (
	"fmt"
	"time"

	"github.com/julianstephens/timebloom/internal/models"
)

func (s *Store) RecordCheckIn(plant models.Plant, checkIn models.CheckIn, unlocked []models.Achievement) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(upsertPlantQuery, upsertPlantArgs(plant)...); err != nil {
		return fmt.Errorf("failed to update plant: %w", err)
	}

	if _, err := tx.Exec(insertCheckInQuery,
		checkIn.ID, checkIn.PlantID, checkIn.Timestamp.Format(time.RFC3339),
		checkIn.Note, string(checkIn.Mood)); err != nil {
		return fmt.Errorf("failed to insert check-in: %w", err)
	}

	for _, a := range unlocked {
		if _, err := tx.Exec(insertAchievementQuery,
			a.ID, a.PlantID, string(a.Type), a.Title, a.Description,
			a.UnlockedAt.Format(time.RFC3339), a.RainDrops); err != nil {
			return fmt.Errorf("failed to insert achievement: %w", err)
		}
	}

	return tx.Commit()
}

const insertCheckInQuery = `
	INSERT INTO check_ins (id, plant_id, timestamp, note, mood)
	VALUES ($1, $2, $3, $4, $5)`

func (s *Store) AddCheckIn(checkIn models.CheckIn) error {
	_, err := s.db.Exec(insertCheckInQuery,
		checkIn.ID, checkIn.PlantID, checkIn.Timestamp.Format(time.RFC3339),
		checkIn.Note, string(checkIn.Mood))
	return err
}

func (s *Store) GetCheckInsForPlant(plantID string, limit int) ([]models.CheckIn, error) {
	query := `
		SELECT id, plant_id, timestamp, note, mood
		FROM check_ins WHERE plant_id = $1
		ORDER BY timestamp DESC`
	args := []any{plantID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheckIns(rows)
}

func (s *Store) GetAllCheckIns() ([]models.CheckIn, error) {
	rows, err := s.db.Query(`
		SELECT id, plant_id, timestamp, note, mood
		FROM check_ins ORDER BY timestamp`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheckIns(rows)
}

type checkInRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanCheckIns(rows checkInRows) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	for rows.Next() {
		var c models.CheckIn
		var timestamp, mood string
		if err := rows.Scan(&c.ID, &c.PlantID, &timestamp, &c.Note, &mood); err != nil {
			return nil, err
		}
		var err error
		c.Timestamp, err = time.Parse(time.RFC3339, timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp for check-in %s: %w", c.ID, err)
		}
		c.Mood = models.Mood(mood)
		checkIns = append(checkIns, c)
	}

	return checkIns, rows.Err()
}
