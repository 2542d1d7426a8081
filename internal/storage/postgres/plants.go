package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/timebloom/internal/models"
)

const plantColumns = `id, name, description, difficulty, frequency, growth_stage,
	current_streak, longest_streak, total_check_ins, created_at,
	last_check_in, next_check_in_due, rain_drops, priority, color,
	archived_at, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlant(row rowScanner) (models.Plant, error) {
	var p models.Plant
	var difficulty, frequency, stage, createdAt string
	var lastCheckIn, nextDue, archivedAt, deletedAt sql.NullString

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &difficulty, &frequency, &stage,
		&p.CurrentStreak, &p.LongestStreak, &p.TotalCheckIns, &createdAt,
		&lastCheckIn, &nextDue, &p.RainDrops, &p.Priority, &p.Color,
		&archivedAt, &deletedAt,
	)
	if err != nil {
		return models.Plant{}, err
	}

	p.Difficulty = models.Difficulty(difficulty)
	p.Frequency = models.Frequency(frequency)
	p.GrowthStage = models.GrowthStage(stage)

	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Plant{}, fmt.Errorf("failed to parse created_at for plant %s: %w", p.ID, err)
	}

	for _, col := range []struct {
		val  sql.NullString
		dest **time.Time
		name string
	}{
		{lastCheckIn, &p.LastCheckIn, "last_check_in"},
		{nextDue, &p.NextCheckInDue, "next_check_in_due"},
		{archivedAt, &p.ArchivedAt, "archived_at"},
		{deletedAt, &p.DeletedAt, "deleted_at"},
	} {
		if !col.val.Valid {
			continue
		}
		t, err := time.Parse(time.RFC3339, col.val.String)
		if err != nil {
			return models.Plant{}, fmt.Errorf("failed to parse %s for plant %s: %w", col.name, p.ID, err)
		}
		*col.dest = &t
	}

	return p, nil
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func (s *Store) AddPlant(plant models.Plant) error {
	return s.UpdatePlant(plant)
}

func (s *Store) GetPlant(id string) (models.Plant, error) {
	row := s.db.QueryRow(`
		SELECT `+plantColumns+`
		FROM plants WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanPlant(row)
}

func (s *Store) GetPlantByName(name string) (models.Plant, error) {
	row := s.db.QueryRow(`
		SELECT `+plantColumns+`
		FROM plants WHERE name = $1 AND deleted_at IS NULL`, name)
	return scanPlant(row)
}

func (s *Store) GetAllPlants(includeArchived, includeDeleted bool) ([]models.Plant, error) {
	query := "SELECT " + plantColumns + " FROM plants WHERE TRUE"
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY priority DESC, created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plants []models.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		plants = append(plants, p)
	}

	return plants, rows.Err()
}

const upsertPlantQuery = `
	INSERT INTO plants (` + plantColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		description = excluded.description,
		difficulty = excluded.difficulty,
		frequency = excluded.frequency,
		growth_stage = excluded.growth_stage,
		current_streak = excluded.current_streak,
		longest_streak = excluded.longest_streak,
		total_check_ins = excluded.total_check_ins,
		last_check_in = excluded.last_check_in,
		next_check_in_due = excluded.next_check_in_due,
		rain_drops = excluded.rain_drops,
		priority = excluded.priority,
		color = excluded.color,
		archived_at = excluded.archived_at,
		deleted_at = excluded.deleted_at`

func upsertPlantArgs(plant models.Plant) []any {
	return []any{
		plant.ID, plant.Name, plant.Description,
		string(plant.Difficulty), string(plant.Frequency), string(plant.GrowthStage),
		plant.CurrentStreak, plant.LongestStreak, plant.TotalCheckIns,
		plant.CreatedAt.Format(time.RFC3339),
		nullTime(plant.LastCheckIn), nullTime(plant.NextCheckInDue),
		plant.RainDrops, plant.Priority, plant.Color,
		nullTime(plant.ArchivedAt), nullTime(plant.DeletedAt),
	}
}

func (s *Store) UpdatePlant(plant models.Plant) error {
	_, err := s.db.Exec(upsertPlantQuery, upsertPlantArgs(plant)...)
	return err
}

func (s *Store) ArchivePlant(id string) error {
	result, err := s.db.Exec(`
		UPDATE plants SET archived_at = $1 WHERE id = $2 AND deleted_at IS NULL AND archived_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRow(result, "plant not found or already archived/deleted")
}

func (s *Store) UnarchivePlant(id string) error {
	result, err := s.db.Exec(`
		UPDATE plants SET archived_at = NULL WHERE id = $1 AND deleted_at IS NULL AND archived_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	return requireRow(result, "plant not found or not archived")
}

func (s *Store) DeletePlant(id string) error {
	result, err := s.db.Exec(`
		UPDATE plants SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRow(result, "plant not found or already deleted")
}

func (s *Store) RestorePlant(id string) error {
	result, err := s.db.Exec(`
		UPDATE plants SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	return requireRow(result, "plant not found or not deleted")
}

func (s *Store) PurgePlant(id string) error {
	result, err := s.db.Exec(`DELETE FROM plants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result, "plant not found")
}

func requireRow(result sql.Result, msg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s", msg)
	}
	return nil
}
