package repository

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/timebloom/internal/models"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// fakeStore is an in-memory Provider for service tests.
type fakeStore struct {
	plants       map[string]models.Plant
	checkIns     []models.CheckIn
	achievements []models.Achievement
	settings     models.Settings

	recordCalls int
	failRecord  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		plants:   make(map[string]models.Plant),
		settings: models.Settings{Timezone: "UTC"},
	}
}

func (f *fakeStore) Init() error  { return nil }
func (f *fakeStore) Load() error  { return nil }
func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) GetSettings() (models.Settings, error) { return f.settings, nil }
func (f *fakeStore) SaveSettings(s models.Settings) error  { f.settings = s; return nil }

func (f *fakeStore) AddPlant(p models.Plant) error {
	f.plants[p.ID] = p
	return nil
}

func (f *fakeStore) GetPlant(id string) (models.Plant, error) {
	p, ok := f.plants[id]
	if !ok {
		return models.Plant{}, sql.ErrNoRows
	}
	return p, nil
}

func (f *fakeStore) GetPlantByName(name string) (models.Plant, error) {
	for _, p := range f.plants {
		if p.Name == name && p.DeletedAt == nil {
			return p, nil
		}
	}
	return models.Plant{}, sql.ErrNoRows
}

func (f *fakeStore) GetAllPlants(includeArchived, includeDeleted bool) ([]models.Plant, error) {
	var out []models.Plant
	for _, p := range f.plants {
		if p.DeletedAt != nil && !includeDeleted {
			continue
		}
		if p.ArchivedAt != nil && !includeArchived {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) UpdatePlant(p models.Plant) error {
	if _, ok := f.plants[p.ID]; !ok {
		return sql.ErrNoRows
	}
	f.plants[p.ID] = p
	return nil
}

func (f *fakeStore) ArchivePlant(id string) error   { return f.setArchived(id, true) }
func (f *fakeStore) UnarchivePlant(id string) error { return f.setArchived(id, false) }

func (f *fakeStore) setArchived(id string, archived bool) error {
	p, ok := f.plants[id]
	if !ok {
		return sql.ErrNoRows
	}
	if archived {
		now := testNow
		p.ArchivedAt = &now
	} else {
		p.ArchivedAt = nil
	}
	f.plants[id] = p
	return nil
}

func (f *fakeStore) DeletePlant(id string) error {
	p, ok := f.plants[id]
	if !ok {
		return sql.ErrNoRows
	}
	now := testNow
	p.DeletedAt = &now
	f.plants[id] = p
	return nil
}

func (f *fakeStore) RestorePlant(id string) error {
	p, ok := f.plants[id]
	if !ok {
		return sql.ErrNoRows
	}
	p.DeletedAt = nil
	f.plants[id] = p
	return nil
}

func (f *fakeStore) PurgePlant(id string) error {
	delete(f.plants, id)
	return nil
}

func (f *fakeStore) RecordCheckIn(plant models.Plant, checkIn models.CheckIn, unlocked []models.Achievement) error {
	f.recordCalls++
	if f.failRecord {
		return errors.New("record failed")
	}
	f.plants[plant.ID] = plant
	f.checkIns = append(f.checkIns, checkIn)
	f.achievements = append(f.achievements, unlocked...)
	return nil
}

func (f *fakeStore) AddCheckIn(c models.CheckIn) error {
	f.checkIns = append(f.checkIns, c)
	return nil
}

func (f *fakeStore) GetCheckInsForPlant(plantID string, limit int) ([]models.CheckIn, error) {
	var out []models.CheckIn
	for _, c := range f.checkIns {
		if c.PlantID == plantID {
			out = append(out, c)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) GetAllCheckIns() ([]models.CheckIn, error) { return f.checkIns, nil }

func (f *fakeStore) AddAchievement(a models.Achievement) error {
	f.achievements = append(f.achievements, a)
	return nil
}

func (f *fakeStore) GetAchievementsForPlant(plantID string) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, a := range f.achievements {
		if a.PlantID == plantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) GetAllAchievements() ([]models.Achievement, error) { return f.achievements, nil }

func (f *fakeStore) GetConfigPath() string { return ":memory:" }

func newTestService(store *fakeStore) *Service {
	return NewWithClock(store, func() time.Time { return testNow })
}

func seedPlant(store *fakeStore, p models.Plant) models.Plant {
	if p.ID == "" {
		p.ID = "plant-" + p.Name
	}
	if p.Difficulty == "" {
		p.Difficulty = models.DifficultyMedium
	}
	if p.Frequency == "" {
		p.Frequency = models.FrequencyDaily
	}
	if p.GrowthStage == "" {
		p.GrowthStage = models.StageSeed
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = testNow.AddDate(0, -1, 0)
	}
	store.plants[p.ID] = p
	return p
}

func daysAgo(n int) *time.Time {
	t := testNow.AddDate(0, 0, -n)
	return &t
}

func TestCreatePlant(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	plant, err := svc.CreatePlant(CreateParams{
		Name:       "Meditation",
		Difficulty: models.DifficultyMedium,
		Frequency:  models.FrequencyDaily,
	})
	if err != nil {
		t.Fatalf("CreatePlant: %v", err)
	}
	if plant.ID == "" {
		t.Error("expected generated plant ID")
	}
	if plant.GrowthStage != models.StageSeed {
		t.Errorf("GrowthStage = %s, want seed", plant.GrowthStage)
	}
	if plant.Color != models.DefaultPlantColor {
		t.Errorf("Color = %s, want default", plant.Color)
	}
	if plant.NextCheckInDue == nil {
		t.Error("expected NextCheckInDue to be set at creation")
	}
	if _, ok := store.plants[plant.ID]; !ok {
		t.Error("plant not persisted")
	}
}

func TestCreatePlantDuplicateName(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	seedPlant(store, models.Plant{Name: "Reading"})

	_, err := svc.CreatePlant(CreateParams{
		Name:       "Reading",
		Difficulty: models.DifficultyEasy,
		Frequency:  models.FrequencyDaily,
	})
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestCheckInSuccess(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	plant := seedPlant(store, models.Plant{
		Name:          "Running",
		CurrentStreak: 2,
		LongestStreak: 5,
		TotalCheckIns: 2,
		LastCheckIn:   daysAgo(1),
	})

	res, err := svc.CheckIn(plant.ID, "morning run", models.MoodGood)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if res.Plant.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", res.Plant.CurrentStreak)
	}
	if res.Plant.LongestStreak != 5 {
		t.Errorf("LongestStreak = %d, want 5 (unchanged)", res.Plant.LongestStreak)
	}
	if res.Plant.TotalCheckIns != 3 {
		t.Errorf("TotalCheckIns = %d, want 3", res.Plant.TotalCheckIns)
	}
	// 3 medium check-ins = 3 points, the sprout threshold
	if res.Plant.GrowthStage != models.StageSprout {
		t.Errorf("GrowthStage = %s, want sprout", res.Plant.GrowthStage)
	}
	// pre-increment streak 2 earns nothing
	if res.RainDrops != 0 {
		t.Errorf("RainDrops = %d, want 0", res.RainDrops)
	}
	if res.Plant.LastCheckIn == nil || !res.Plant.LastCheckIn.Equal(testNow) {
		t.Errorf("LastCheckIn = %v, want %v", res.Plant.LastCheckIn, testNow)
	}
	if res.Plant.NextCheckInDue == nil {
		t.Error("expected NextCheckInDue to be set")
	}
	if store.recordCalls != 1 {
		t.Errorf("recordCalls = %d, want 1", store.recordCalls)
	}
	if len(store.checkIns) != 1 {
		t.Fatalf("len(checkIns) = %d, want 1", len(store.checkIns))
	}
	if store.checkIns[0].Note != "morning run" || store.checkIns[0].Mood != models.MoodGood {
		t.Errorf("check-in event = %+v", store.checkIns[0])
	}
}

func TestCheckInStreakReward(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	plant := seedPlant(store, models.Plant{
		Name:          "Journaling",
		CurrentStreak: 6,
		LongestStreak: 6,
		TotalCheckIns: 6,
		RainDrops:     2,
		LastCheckIn:   daysAgo(1),
	})
	// first_check_in already recorded
	store.achievements = append(store.achievements, models.Achievement{
		ID: "a1", PlantID: plant.ID, Type: models.AchievementFirstCheckIn,
	})

	res, err := svc.CheckIn(plant.ID, "", models.MoodNeutral)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	// pre-increment streak of exactly 6 earns 1 drop
	if res.RainDrops != 1 {
		t.Errorf("RainDrops = %d, want 1", res.RainDrops)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].Type != models.AchievementWeekStreak {
		t.Fatalf("Unlocked = %+v, want week_streak", res.Unlocked)
	}
	// 2 existing + 1 streak reward + 3 week_streak bonus
	if res.Plant.RainDrops != 6 {
		t.Errorf("Plant.RainDrops = %d, want 6", res.Plant.RainDrops)
	}
	if res.Plant.LongestStreak != 7 {
		t.Errorf("LongestStreak = %d, want 7", res.Plant.LongestStreak)
	}
}

func TestCheckInFirstUnlocksAchievement(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	plant := seedPlant(store, models.Plant{Name: "Stretching"})

	res, err := svc.CheckIn(plant.ID, "", models.MoodGreat)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].Type != models.AchievementFirstCheckIn {
		t.Fatalf("Unlocked = %+v, want first_check_in", res.Unlocked)
	}
	if len(store.achievements) != 1 {
		t.Errorf("achievements persisted = %d, want 1", len(store.achievements))
	}
}

func TestCheckInGates(t *testing.T) {
	tests := []struct {
		name    string
		plant   models.Plant
		wantErr error
	}{
		{
			name: "same day duplicate",
			plant: models.Plant{
				Name: "Walk", CurrentStreak: 1, TotalCheckIns: 1,
				LastCheckIn: &testNow,
			},
			wantErr: ErrDuplicateCheckIn,
		},
		{
			name: "withering daily plant",
			plant: models.Plant{
				Name: "Walk", CurrentStreak: 4, TotalCheckIns: 4,
				LastCheckIn: daysAgo(2),
			},
			wantErr: ErrPlantWithering,
		},
		{
			name: "dead daily plant",
			plant: models.Plant{
				Name: "Walk", CurrentStreak: 4, TotalCheckIns: 4,
				LastCheckIn: daysAgo(4),
			},
			wantErr: ErrPlantDead,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := newTestService(store)
			plant := seedPlant(store, tt.plant)

			_, err := svc.CheckIn(plant.ID, "", models.MoodNeutral)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckIn error = %v, want %v", err, tt.wantErr)
			}
			if store.recordCalls != 0 {
				t.Errorf("recordCalls = %d, want 0", store.recordCalls)
			}
		})
	}
}

func TestCheckInUnknownPlant(t *testing.T) {
	svc := newTestService(newFakeStore())
	_, err := svc.CheckIn("nope", "", models.MoodNeutral)
	if !errors.Is(err, ErrPlantNotFound) {
		t.Errorf("CheckIn error = %v, want ErrPlantNotFound", err)
	}
}

func TestRevive(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	// 2 days missed on a daily plant: withering, cost tier 1
	plant := seedPlant(store, models.Plant{
		Name: "Yoga", CurrentStreak: 10, LongestStreak: 10, TotalCheckIns: 10,
		RainDrops: 5, LastCheckIn: daysAgo(2),
	})

	revived, err := svc.Revive(plant.ID)
	if err != nil {
		t.Fatalf("Revive: %v", err)
	}
	if revived.RainDrops != 4 {
		t.Errorf("RainDrops = %d, want 4", revived.RainDrops)
	}
	if revived.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0 after revival", revived.CurrentStreak)
	}
	if revived.LongestStreak != 10 {
		t.Errorf("LongestStreak = %d, want 10 (kept)", revived.LongestStreak)
	}
	if revived.TotalCheckIns != 10 {
		t.Errorf("TotalCheckIns = %d, want 10 (kept)", revived.TotalCheckIns)
	}
	if revived.LastCheckIn == nil || !revived.LastCheckIn.Equal(testNow) {
		t.Errorf("LastCheckIn = %v, want %v", revived.LastCheckIn, testNow)
	}
}

func TestReviveInsufficientRainDrops(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	plant := seedPlant(store, models.Plant{
		Name: "Yoga", TotalCheckIns: 10, RainDrops: 0, LastCheckIn: daysAgo(2),
	})

	_, err := svc.Revive(plant.ID)
	if !errors.Is(err, ErrInsufficientRainDrops) {
		t.Errorf("Revive error = %v, want ErrInsufficientRainDrops", err)
	}
	if store.plants[plant.ID].RainDrops != 0 {
		t.Error("rain drops changed on failed revival")
	}
}

func TestReviveHealthyPlant(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	plant := seedPlant(store, models.Plant{
		Name: "Yoga", TotalCheckIns: 5, RainDrops: 10, LastCheckIn: daysAgo(1),
	})

	_, err := svc.Revive(plant.ID)
	if !errors.Is(err, ErrPlantNotWithering) {
		t.Errorf("Revive error = %v, want ErrPlantNotWithering", err)
	}
}

func TestReviveDeadPlant(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	plant := seedPlant(store, models.Plant{
		Name: "Yoga", TotalCheckIns: 5, RainDrops: 10, LastCheckIn: daysAgo(10),
	})

	_, err := svc.Revive(plant.ID)
	if !errors.Is(err, ErrPlantDead) {
		t.Errorf("Revive error = %v, want ErrPlantDead", err)
	}
}

func TestRestart(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	plant := seedPlant(store, models.Plant{
		Name: "Guitar", CurrentStreak: 3, LongestStreak: 20, TotalCheckIns: 40,
		GrowthStage: models.StageFruit, RainDrops: 8, LastCheckIn: daysAgo(10),
	})

	restarted, err := svc.Restart(plant.ID)
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if restarted.CurrentStreak != 0 || restarted.TotalCheckIns != 0 {
		t.Errorf("counters = %d/%d, want 0/0", restarted.CurrentStreak, restarted.TotalCheckIns)
	}
	if restarted.GrowthStage != models.StageSeed {
		t.Errorf("GrowthStage = %s, want seed", restarted.GrowthStage)
	}
	if restarted.LastCheckIn != nil {
		t.Error("expected LastCheckIn cleared")
	}
	if restarted.RainDrops != 8 {
		t.Errorf("RainDrops = %d, want 8 (kept)", restarted.RainDrops)
	}
	if restarted.LongestStreak != 20 {
		t.Errorf("LongestStreak = %d, want 20 (kept)", restarted.LongestStreak)
	}
}

func TestRestartLivingPlant(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	plant := seedPlant(store, models.Plant{
		Name: "Guitar", TotalCheckIns: 5, LastCheckIn: daysAgo(1),
	})

	if _, err := svc.Restart(plant.ID); err == nil {
		t.Error("expected error restarting a living plant")
	}
}

func TestResolvePlant(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	plant := seedPlant(store, models.Plant{ID: "abc-123", Name: "Swimming"})

	byID, err := svc.ResolvePlant("abc-123")
	if err != nil || byID.ID != plant.ID {
		t.Errorf("ResolvePlant by ID = %v, %v", byID.ID, err)
	}
	byName, err := svc.ResolvePlant("Swimming")
	if err != nil || byName.ID != plant.ID {
		t.Errorf("ResolvePlant by name = %v, %v", byName.ID, err)
	}
	if _, err := svc.ResolvePlant("missing"); !errors.Is(err, ErrPlantNotFound) {
		t.Errorf("ResolvePlant(missing) = %v, want ErrPlantNotFound", err)
	}
}

func TestStatistics(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	seedPlant(store, models.Plant{
		Name: "A", TotalCheckIns: 10, LongestStreak: 10, RainDrops: 4,
		GrowthStage: models.StagePlant, LastCheckIn: daysAgo(1),
	})
	seedPlant(store, models.Plant{
		Name: "B", TotalCheckIns: 2, LongestStreak: 2, RainDrops: 1,
		GrowthStage: models.StageSeed, LastCheckIn: daysAgo(1),
	})
	archived := seedPlant(store, models.Plant{Name: "C", TotalCheckIns: 99})
	store.ArchivePlant(archived.ID)

	stats, err := svc.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalPlants != 2 {
		t.Errorf("TotalPlants = %d, want 2", stats.TotalPlants)
	}
	if stats.TotalCheckIns != 12 {
		t.Errorf("TotalCheckIns = %d, want 12", stats.TotalCheckIns)
	}
	if stats.LongestStreak != 10 {
		t.Errorf("LongestStreak = %d, want 10", stats.LongestStreak)
	}
	if stats.TotalRainDrops != 5 {
		t.Errorf("TotalRainDrops = %d, want 5", stats.TotalRainDrops)
	}
	if stats.PlantsByStage["Plant"] != 1 || stats.PlantsByStage["Seed"] != 1 {
		t.Errorf("PlantsByStage = %v", stats.PlantsByStage)
	}
}

func TestDuePlants(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	overdue := testNow.Add(-2 * time.Hour)
	seedPlant(store, models.Plant{
		Name: "Due", TotalCheckIns: 3, LastCheckIn: daysAgo(1), NextCheckInDue: &overdue,
	})
	future := testNow.Add(12 * time.Hour)
	seedPlant(store, models.Plant{
		Name: "NotDue", TotalCheckIns: 3, LastCheckIn: &testNow, NextCheckInDue: &future,
	})
	seedPlant(store, models.Plant{
		Name: "Withering", TotalCheckIns: 3, LastCheckIn: daysAgo(2),
	})

	due, err := svc.DuePlants()
	if err != nil {
		t.Fatalf("DuePlants: %v", err)
	}
	names := make(map[string]bool)
	for _, st := range due {
		names[st.Plant.Name] = true
	}
	if !names["Due"] || !names["Withering"] || names["NotDue"] {
		t.Errorf("due plants = %v", names)
	}
}
