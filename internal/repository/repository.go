// Package repository implements the check-in service: every mutation of a
// plant goes through here so the growth engine's gating rules and the
// storage layer's transactional writes stay in lockstep.
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/timebloom/internal/constants"
	"github.com/julianstephens/timebloom/internal/growth"
	"github.com/julianstephens/timebloom/internal/logger"
	"github.com/julianstephens/timebloom/internal/models"
	"github.com/julianstephens/timebloom/internal/storage"
	"github.com/julianstephens/timebloom/internal/utils"
)

// Sentinel errors for state-gated rejections. Each maps to a distinct UI
// response: a revival dialog for withering, a restart dialog for dead, a
// plain message for the rest.
var (
	ErrPlantNotFound         = errors.New("plant not found")
	ErrDuplicateCheckIn      = errors.New("already watered today")
	ErrPlantWithering        = errors.New("plant is withering and needs revival")
	ErrPlantDead             = errors.New("plant is dead and can only be restarted from seed")
	ErrPlantNotWithering     = errors.New("plant does not need revival")
	ErrInsufficientRainDrops = errors.New("not enough rain drops")
)

// Service coordinates engine decisions with storage writes. Mutations are
// serialized per plant so two concurrent check-ins cannot both read the same
// pre-state and double-increment the streak.
type Service struct {
	store storage.Provider
	clock func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(store storage.Provider) *Service {
	return &Service{
		store: store,
		clock: time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// NewWithClock injects a fixed clock for tests.
func NewWithClock(store storage.Provider, clock func() time.Time) *Service {
	s := New(store)
	s.clock = clock
	return s
}

func (s *Service) plantLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// now returns the current time in the configured timezone. Falls back to the
// clock's own location when settings are unavailable.
func (s *Service) now() time.Time {
	t := s.clock()
	settings, err := s.store.GetSettings()
	if err != nil {
		return t
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return t
	}
	return t.In(loc)
}

func (s *Service) loadPlant(id string) (models.Plant, error) {
	plant, err := s.store.GetPlant(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Plant{}, ErrPlantNotFound
	}
	if err != nil {
		return models.Plant{}, fmt.Errorf("failed to load plant: %w", err)
	}
	return plant, nil
}

// CreateParams holds the user-supplied fields for a new plant.
type CreateParams struct {
	Name        string
	Description string
	Difficulty  models.Difficulty
	Frequency   models.Frequency
	Priority    int
	Color       string
}

// CreatePlant inserts a new plant at the seed stage.
func (s *Service) CreatePlant(params CreateParams) (models.Plant, error) {
	if params.Name == "" {
		return models.Plant{}, errors.New("plant name is required")
	}
	if _, err := s.store.GetPlantByName(params.Name); err == nil {
		return models.Plant{}, fmt.Errorf("plant with name %q already exists", params.Name)
	}

	now := s.now()
	color := params.Color
	if color == "" {
		color = models.DefaultPlantColor
	}

	plant := models.Plant{
		ID:          uuid.New().String(),
		Name:        params.Name,
		Description: params.Description,
		Difficulty:  params.Difficulty,
		Frequency:   params.Frequency,
		GrowthStage: models.StageSeed,
		CreatedAt:   now,
		Priority:    params.Priority,
		Color:       color,
	}
	due := growth.NextCheckInDue(plant, now)
	plant.NextCheckInDue = &due

	if err := s.store.AddPlant(plant); err != nil {
		return models.Plant{}, fmt.Errorf("failed to save plant: %w", err)
	}

	logger.Info("Created plant", "id", plant.ID, "name", plant.Name)
	return plant, nil
}

// ResolvePlant finds a plant by ID or, failing that, by exact name. CLI
// commands accept either form.
func (s *Service) ResolvePlant(ref string) (models.Plant, error) {
	plant, err := s.store.GetPlant(ref)
	if err == nil {
		return plant, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Plant{}, fmt.Errorf("failed to load plant: %w", err)
	}

	plant, err = s.store.GetPlantByName(ref)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Plant{}, ErrPlantNotFound
	}
	if err != nil {
		return models.Plant{}, fmt.Errorf("failed to load plant: %w", err)
	}
	return plant, nil
}

// CheckInResult reports what a successful check-in changed.
type CheckInResult struct {
	Plant     models.Plant
	CheckIn   models.CheckIn
	RainDrops int
	Unlocked  []models.Achievement
	Message   string
}

// CheckIn waters a plant. Gate order: not found, duplicate same-day
// check-in, dead (restart required), withering (revival required). On
// success the plant update, the check-in event, and any achievement unlocks
// are persisted in a single transaction.
func (s *Service) CheckIn(plantID, note string, mood models.Mood) (CheckInResult, error) {
	lock := s.plantLock(plantID)
	lock.Lock()
	defer lock.Unlock()

	plant, err := s.loadPlant(plantID)
	if err != nil {
		return CheckInResult{}, err
	}

	now := s.now()
	switch {
	case growth.HasCheckedInToday(plant, now):
		return CheckInResult{}, ErrDuplicateCheckIn
	case growth.ShouldBeDead(plant, now):
		return CheckInResult{}, ErrPlantDead
	case growth.ShouldBeWithering(plant, now):
		return CheckInResult{}, ErrPlantWithering
	}

	earned := growth.RainDropsForCheckIn(plant.CurrentStreak)

	plant.CurrentStreak++
	if plant.CurrentStreak > plant.LongestStreak {
		plant.LongestStreak = plant.CurrentStreak
	}
	plant.TotalCheckIns++
	plant.RainDrops += earned
	plant.LastCheckIn = &now
	plant.GrowthStage = growth.Stage(plant)
	due := growth.NextCheckInDue(plant, now)
	plant.NextCheckInDue = &due

	unlocked, err := s.pendingAchievements(plant, now)
	if err != nil {
		return CheckInResult{}, err
	}
	for _, a := range unlocked {
		plant.RainDrops += a.RainDrops
	}

	checkIn := models.CheckIn{
		ID:        uuid.New().String(),
		PlantID:   plant.ID,
		Timestamp: now,
		Note:      note,
		Mood:      mood,
	}

	if err := s.store.RecordCheckIn(plant, checkIn, unlocked); err != nil {
		return CheckInResult{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	logger.Info("Check-in recorded", "plant", plant.Name, "streak", plant.CurrentStreak, "drops", earned)
	return CheckInResult{
		Plant:     plant,
		CheckIn:   checkIn,
		RainDrops: earned,
		Unlocked:  unlocked,
		Message:   growth.MotivationalMessage(plant, now),
	}, nil
}

// pendingAchievements returns the milestone unlocks the updated plant has
// earned but not yet recorded.
func (s *Service) pendingAchievements(plant models.Plant, now time.Time) ([]models.Achievement, error) {
	existing, err := s.store.GetAchievementsForPlant(plant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}
	have := make(map[models.AchievementType]bool, len(existing))
	for _, a := range existing {
		have[a.Type] = true
	}

	candidates := []struct {
		achievementType models.AchievementType
		earned          bool
		title           string
		description     string
		reward          int
	}{
		{models.AchievementFirstCheckIn, plant.TotalCheckIns >= 1,
			"First Sprout", "Watered " + plant.Name + " for the first time", constants.RewardFirstCheckIn},
		{models.AchievementWeekStreak, plant.CurrentStreak >= 7,
			"One Week Strong", "Kept a 7-day streak on " + plant.Name, constants.RewardWeekStreak},
		{models.AchievementMonthStreak, plant.CurrentStreak >= 30,
			"Monthly Gardener", "Kept a 30-day streak on " + plant.Name, constants.RewardMonthStreak},
		{models.AchievementFruitStage, plant.GrowthStage == models.StageFruit,
			"Full Bloom", plant.Name + " reached the fruit stage", constants.RewardFruitStage},
	}

	var unlocked []models.Achievement
	for _, c := range candidates {
		if !c.earned || have[c.achievementType] {
			continue
		}
		unlocked = append(unlocked, models.Achievement{
			ID:          uuid.New().String(),
			PlantID:     plant.ID,
			Type:        c.achievementType,
			Title:       c.title,
			Description: c.description,
			UnlockedAt:  now,
			RainDrops:   c.reward,
		})
	}

	return unlocked, nil
}

// Revive spends rain drops to rescue a withering plant. The current streak
// resets to zero: revival saves the plant, not the streak.
func (s *Service) Revive(plantID string) (models.Plant, error) {
	lock := s.plantLock(plantID)
	lock.Lock()
	defer lock.Unlock()

	plant, err := s.loadPlant(plantID)
	if err != nil {
		return models.Plant{}, err
	}

	now := s.now()
	if growth.ShouldBeDead(plant, now) {
		return models.Plant{}, ErrPlantDead
	}
	if !growth.ShouldBeWithering(plant, now) {
		return models.Plant{}, ErrPlantNotWithering
	}

	cost := growth.ReviveCost(plant, now)
	if plant.RainDrops < cost {
		return models.Plant{}, fmt.Errorf("%w: need %d, have %d", ErrInsufficientRainDrops, cost, plant.RainDrops)
	}

	plant.RainDrops -= cost
	plant.CurrentStreak = 0
	plant.LastCheckIn = &now
	plant.GrowthStage = growth.Stage(plant)
	due := growth.NextCheckInDue(plant, now)
	plant.NextCheckInDue = &due

	if err := s.store.UpdatePlant(plant); err != nil {
		return models.Plant{}, fmt.Errorf("failed to revive plant: %w", err)
	}

	logger.Info("Plant revived", "plant", plant.Name, "cost", cost)
	return plant, nil
}

// Restart resets a dead plant back to seed. Rain drops, the longest streak,
// and the check-in history are kept.
func (s *Service) Restart(plantID string) (models.Plant, error) {
	lock := s.plantLock(plantID)
	lock.Lock()
	defer lock.Unlock()

	plant, err := s.loadPlant(plantID)
	if err != nil {
		return models.Plant{}, err
	}

	if !growth.ShouldBeDead(plant, s.now()) {
		return models.Plant{}, errors.New("only a dead plant can be restarted from seed")
	}

	plant.CurrentStreak = 0
	plant.TotalCheckIns = 0
	plant.GrowthStage = models.StageSeed
	plant.LastCheckIn = nil
	plant.NextCheckInDue = nil

	if err := s.store.UpdatePlant(plant); err != nil {
		return models.Plant{}, fmt.Errorf("failed to restart plant: %w", err)
	}

	logger.Info("Plant restarted from seed", "plant", plant.Name)
	return plant, nil
}

// PlantStatus is a read-only snapshot of one plant's derived state for
// display.
type PlantStatus struct {
	Plant        models.Plant
	DisplayStage models.GrowthStage
	Health       float64
	Progress     float64
	DaysToNext   int
	ReviveCost   int
	Message      string
}

// Status computes the display snapshot for a single plant.
func (s *Service) Status(plant models.Plant) PlantStatus {
	now := s.now()
	return PlantStatus{
		Plant:        plant,
		DisplayStage: growth.DisplayStage(plant, now),
		Health:       growth.Health(plant, now),
		Progress:     growth.Progress(plant),
		DaysToNext:   growth.DaysToNextStage(plant, now),
		ReviveCost:   growth.ReviveCost(plant, now),
		Message:      growth.MotivationalMessage(plant, now),
	}
}

// Garden returns display snapshots for every active plant.
func (s *Service) Garden(includeArchived bool) ([]PlantStatus, error) {
	plants, err := s.store.GetAllPlants(includeArchived, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load plants: %w", err)
	}

	statuses := make([]PlantStatus, 0, len(plants))
	for _, p := range plants {
		statuses = append(statuses, s.Status(p))
	}
	return statuses, nil
}

// Stats aggregates garden-wide totals.
type Stats struct {
	TotalPlants    int
	TotalCheckIns  int
	LongestStreak  int
	TotalRainDrops int
	PlantsByStage  map[string]int
}

// Statistics computes garden-wide totals over active plants.
func (s *Service) Statistics() (Stats, error) {
	plants, err := s.store.GetAllPlants(false, false)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load plants: %w", err)
	}

	stats := Stats{PlantsByStage: make(map[string]int)}
	now := s.now()
	for _, p := range plants {
		stats.TotalPlants++
		stats.TotalCheckIns += p.TotalCheckIns
		stats.TotalRainDrops += p.RainDrops
		if p.LongestStreak > stats.LongestStreak {
			stats.LongestStreak = p.LongestStreak
		}
		stats.PlantsByStage[growth.DisplayStage(p, now).DisplayName()]++
	}

	return stats, nil
}

// DuePlants returns active plants that are due for a check-in or withering,
// for the reminder command.
func (s *Service) DuePlants() ([]PlantStatus, error) {
	statuses, err := s.Garden(false)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var due []PlantStatus
	for _, st := range statuses {
		overdue := st.Plant.NextCheckInDue != nil && st.Plant.NextCheckInDue.Before(now)
		if st.DisplayStage == models.StageWithering || overdue {
			if growth.HasCheckedInToday(st.Plant, now) {
				continue
			}
			due = append(due, st)
		}
	}
	return due, nil
}
