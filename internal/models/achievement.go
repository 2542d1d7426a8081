package models

import "time"

type AchievementType string

const (
	AchievementFirstCheckIn AchievementType = "first_check_in"
	AchievementWeekStreak   AchievementType = "week_streak"
	AchievementMonthStreak  AchievementType = "month_streak"
	AchievementFruitStage   AchievementType = "fruit_stage"
)

// Achievement records a milestone unlocked for a plant. Each type unlocks at
// most once per plant.
type Achievement struct {
	ID          string          `json:"id"`
	PlantID     string          `json:"plant_id"`
	Type        AchievementType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	UnlockedAt  time.Time       `json:"unlocked_at"`
	RainDrops   int             `json:"rain_drops"`
}
