// Package growth implements the plant growth, health, and economy rules.
//
// Every function is pure: the same plant and the same instant always produce
// the same result. The repository uses these functions both to gate actions
// and to compute persisted mutations, so any hidden state here would let the
// two drift apart. Calendar-day math is evaluated in now's location.
package growth

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/timebloom/internal/constants"
	"github.com/julianstephens/timebloom/internal/models"
	"github.com/julianstephens/timebloom/internal/utils"
)

// Points returns the plant's growth points: total check-ins scaled by the
// difficulty growth rate.
func Points(p models.Plant) float64 {
	return float64(p.TotalCheckIns) * p.Difficulty.GrowthRate()
}

// Stage maps growth points to a persisted growth stage. It never returns
// the withering or dead overlays; see DisplayStage for those.
func Stage(p models.Plant) models.GrowthStage {
	points := Points(p)
	switch {
	case points < constants.SproutThreshold:
		return models.StageSeed
	case points < constants.PlantThreshold:
		return models.StageSprout
	case points < constants.FlowerThreshold:
		return models.StagePlant
	case points < constants.FruitThreshold:
		return models.StageFlower
	default:
		return models.StageFruit
	}
}

// HasCheckedInToday reports whether the plant was already watered on now's
// calendar day. A check-in at 23:59 does not block one at 00:01 the next day.
func HasCheckedInToday(p models.Plant, now time.Time) bool {
	if p.LastCheckIn == nil {
		return false
	}
	return utils.SameCalendarDay(*p.LastCheckIn, now)
}

// DaysMissed returns the whole calendar days since the last check-in, or 0
// for a plant that has never been watered.
func DaysMissed(p models.Plant, now time.Time) int {
	if p.LastCheckIn == nil {
		return 0
	}
	return utils.CalendarDaysBetween(*p.LastCheckIn, now)
}

// ShouldBeWithering reports whether the plant is overdue beyond its
// frequency's grace period. A plant that has never been checked in is not
// at risk, and neither is an archived one: archiving pauses the habit.
func ShouldBeWithering(p models.Plant, now time.Time) bool {
	if p.LastCheckIn == nil || p.ArchivedAt != nil {
		return false
	}
	return DaysMissed(p, now) > p.Frequency.GraceDays()
}

// ShouldBeDead reports whether the plant is past the point of no return:
// missed for more than grace * DeadGraceMultiplier whole calendar days.
// Dead plants reject both check-ins and revival; only a restart from seed
// brings them back.
func ShouldBeDead(p models.Plant, now time.Time) bool {
	if p.LastCheckIn == nil || p.ArchivedAt != nil {
		return false
	}
	return DaysMissed(p, now) > p.Frequency.GraceDays()*constants.DeadGraceMultiplier
}

// DisplayStage overlays the derived withering/dead states on the persisted
// growth stage. The overlay is computed at read time and never persisted.
func DisplayStage(p models.Plant, now time.Time) models.GrowthStage {
	if ShouldBeDead(p, now) {
		return models.StageDead
	}
	if ShouldBeWithering(p, now) {
		return models.StageWithering
	}
	return p.GrowthStage
}

// ReviveCost returns the rain drops required to revive a withering plant,
// tiered by days missed. Monotonic non-decreasing.
func ReviveCost(p models.Plant, now time.Time) int {
	if p.LastCheckIn == nil {
		return 1
	}
	switch missed := DaysMissed(p, now); {
	case missed <= 3:
		return 1
	case missed <= 7:
		return 2
	case missed <= 14:
		return 3
	default:
		return 5
	}
}

// Health returns the plant's health percentage in [0, 100]: linear decay
// from 100 at zero days elapsed to 0 at the frequency's max-health day
// count. Negative elapsed time (clock skew) clamps to 100.
func Health(p models.Plant, now time.Time) float64 {
	if p.LastCheckIn == nil {
		return 100
	}

	elapsed := float64(DaysMissed(p, now))
	if elapsed < 0 {
		return 100
	}

	maxDays := p.Frequency.MaxHealthDays()
	health := (maxDays - elapsed) / maxDays * 100
	if health < 0 {
		return 0
	}
	if health > 100 {
		return 100
	}
	return health
}

// NextCheckInDue returns the next due timestamp: the last check-in (or now,
// for a fresh plant) plus the frequency interval.
func NextCheckInDue(p models.Plant, now time.Time) time.Time {
	base := now
	if p.LastCheckIn != nil {
		base = *p.LastCheckIn
	}
	return base.Add(time.Duration(p.Frequency.IntervalHours()) * time.Hour)
}

// RainDropsForCheckIn returns the reward for a check-in given the streak
// count before it is incremented. Rewards ramp up at the one-week mark and
// plateau for long streaks.
func RainDropsForCheckIn(currentStreak int) int {
	switch {
	case currentStreak < 6:
		return 0
	case currentStreak == 6:
		return 1 // the check-in that completes the first week
	case currentStreak < 29:
		return 2
	case currentStreak < 89:
		return 3
	default:
		return 5
	}
}

// Progress returns normalized growth progress in [0, 1] independent of the
// discrete stage.
func Progress(p models.Plant) float64 {
	progress := Points(p) / constants.MaxGrowthPoints
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// DaysToNextStage estimates the calendar days until the next stage threshold
// is crossed. Returns 0 for a plant already at fruit or withering.
func DaysToNextStage(p models.Plant, now time.Time) int {
	var target float64
	switch DisplayStage(p, now) {
	case models.StageSeed:
		target = constants.SproutThreshold
	case models.StageSprout:
		target = constants.PlantThreshold
	case models.StagePlant:
		target = constants.FlowerThreshold
	case models.StageFlower:
		target = constants.FruitThreshold
	default:
		return 0
	}

	deficit := target - Points(p)
	if deficit <= 0 {
		return 0
	}
	checkInsNeeded := int(math.Ceil(deficit / p.Difficulty.GrowthRate()))

	return checkInsNeeded * p.Frequency.CadenceDays()
}

// MotivationalMessage picks a message for the plant, highest-priority rule
// first: withering beats streaks beats stage beats the fresh-plant nudge.
func MotivationalMessage(p models.Plant, now time.Time) string {
	switch {
	case ShouldBeWithering(p, now):
		return fmt.Sprintf("Your %s needs attention! 🥺", p.Name)
	case p.CurrentStreak >= 30:
		return "Amazing dedication! Keep going! 🌟"
	case p.CurrentStreak >= 7:
		return "One week streak! You're on fire! 🔥"
	case p.GrowthStage == models.StageFruit:
		return fmt.Sprintf("Your %s is thriving! 🎉", p.Name)
	case p.TotalCheckIns == 0:
		return fmt.Sprintf("Start your journey with %s! 🌱", p.Name)
	default:
		return fmt.Sprintf("Keep nurturing your %s! 💪", p.Name)
	}
}
