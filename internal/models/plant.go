package models

import (
	"fmt"
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts user input into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q (expected easy, medium, or hard)", s)
	}
}

// GrowthRate returns the growth-point multiplier applied per check-in.
// Easier habits grow faster to keep early motivation up.
func (d Difficulty) GrowthRate() float64 {
	switch d {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.7
	default:
		return 1.0
	}
}

type Frequency string

const (
	FrequencyDaily            Frequency = "daily"
	FrequencyWeekly           Frequency = "weekly"
	FrequencyTwiceWeekly      Frequency = "twice_weekly"
	FrequencyThreeTimesWeekly Frequency = "three_times_weekly"
)

// ParseFrequency converts user input into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case FrequencyDaily:
		return FrequencyDaily, nil
	case FrequencyWeekly:
		return FrequencyWeekly, nil
	case FrequencyTwiceWeekly:
		return FrequencyTwiceWeekly, nil
	case FrequencyThreeTimesWeekly:
		return FrequencyThreeTimesWeekly, nil
	default:
		return "", fmt.Errorf("invalid frequency %q (expected daily, weekly, twice_weekly, or three_times_weekly)", s)
	}
}

// IntervalHours returns the expected time between check-ins.
func (f Frequency) IntervalHours() int {
	switch f {
	case FrequencyWeekly:
		return 168
	case FrequencyTwiceWeekly:
		return 84
	case FrequencyThreeTimesWeekly:
		return 56
	default:
		return 24
	}
}

// GraceDays returns the number of whole calendar days a plant may go
// unattended before it starts withering.
func (f Frequency) GraceDays() int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyTwiceWeekly:
		return 4
	case FrequencyThreeTimesWeekly:
		return 2
	default:
		return 1
	}
}

// MaxHealthDays returns the elapsed-day count at which health reaches zero.
func (f Frequency) MaxHealthDays() float64 {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyTwiceWeekly:
		return 3.5
	case FrequencyThreeTimesWeekly:
		return 2.5
	default:
		return 1
	}
}

// CadenceDays returns the typical calendar days between check-ins, used to
// convert a check-in count into an elapsed-day estimate.
func (f Frequency) CadenceDays() int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyTwiceWeekly:
		return 4
	case FrequencyThreeTimesWeekly:
		return 2
	default:
		return 1
	}
}

type GrowthStage string

// Persisted stages run seed through fruit. Withering and dead are derived
// display overlays and are never written to storage.
const (
	StageSeed      GrowthStage = "seed"
	StageSprout    GrowthStage = "sprout"
	StagePlant     GrowthStage = "plant"
	StageFlower    GrowthStage = "flower"
	StageFruit     GrowthStage = "fruit"
	StageWithering GrowthStage = "withering"
	StageDead      GrowthStage = "dead"
)

// DisplayName returns a human-readable stage label.
func (g GrowthStage) DisplayName() string {
	switch g {
	case StageSeed:
		return "Seed"
	case StageSprout:
		return "Sprout"
	case StagePlant:
		return "Plant"
	case StageFlower:
		return "Flower"
	case StageFruit:
		return "Fruit"
	case StageWithering:
		return "Withering"
	case StageDead:
		return "Dead"
	default:
		return string(g)
	}
}

// DefaultPlantColor is the accent color assigned when the user doesn't pick
// one.
const DefaultPlantColor = "#4CAF50"

// Plant is a tracked habit rendered as a virtual plant.
type Plant struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description,omitempty"`
	Difficulty     Difficulty  `json:"difficulty"`
	Frequency      Frequency   `json:"frequency"`
	GrowthStage    GrowthStage `json:"growth_stage"`
	CurrentStreak  int         `json:"current_streak"`
	LongestStreak  int         `json:"longest_streak"`
	TotalCheckIns  int         `json:"total_check_ins"`
	CreatedAt      time.Time   `json:"created_at"`
	LastCheckIn    *time.Time  `json:"last_check_in,omitempty"`
	NextCheckInDue *time.Time  `json:"next_check_in_due,omitempty"`
	RainDrops      int         `json:"rain_drops"`
	Priority       int         `json:"priority"`
	Color          string      `json:"color,omitempty"`
	ArchivedAt     *time.Time  `json:"archived_at,omitempty"`
	DeletedAt      *time.Time  `json:"deleted_at,omitempty"`
}
