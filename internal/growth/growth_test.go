package growth

import (
	"testing"
	"time"

	"github.com/julianstephens/timebloom/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func plantWith(difficulty models.Difficulty, totalCheckIns int) models.Plant {
	return models.Plant{
		ID:            "p1",
		Name:          "Meditation",
		Difficulty:    difficulty,
		Frequency:     models.FrequencyDaily,
		GrowthStage:   models.StageSeed,
		TotalCheckIns: totalCheckIns,
	}
}

func lastCheckInDaysAgo(days int) *time.Time {
	t := testNow.AddDate(0, 0, -days)
	return &t
}

func TestStage(t *testing.T) {
	tests := []struct {
		name          string
		difficulty    models.Difficulty
		totalCheckIns int
		want          models.GrowthStage
	}{
		{"fresh medium plant is seed", models.DifficultyMedium, 0, models.StageSeed},
		{"medium below sprout threshold", models.DifficultyMedium, 2, models.StageSeed},
		{"medium at sprout boundary is inclusive", models.DifficultyMedium, 3, models.StageSprout},
		{"medium at plant boundary", models.DifficultyMedium, 7, models.StagePlant},
		{"medium at flower boundary", models.DifficultyMedium, 15, models.StageFlower},
		{"medium at fruit boundary", models.DifficultyMedium, 30, models.StageFruit},
		{"easy reaches sprout after two check-ins", models.DifficultyEasy, 2, models.StageSprout},
		{"hard needs more check-ins for sprout", models.DifficultyHard, 4, models.StageSeed},
		{"hard reaches sprout at five", models.DifficultyHard, 5, models.StageSprout},
		{"large count stays fruit", models.DifficultyMedium, 500, models.StageFruit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stage(plantWith(tt.difficulty, tt.totalCheckIns))
			if got != tt.want {
				t.Errorf("Stage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStageMonotonic(t *testing.T) {
	for _, d := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		order := map[models.GrowthStage]int{
			models.StageSeed:   0,
			models.StageSprout: 1,
			models.StagePlant:  2,
			models.StageFlower: 3,
			models.StageFruit:  4,
		}
		prev := 0
		for n := 0; n <= 100; n++ {
			rank := order[Stage(plantWith(d, n))]
			if rank < prev {
				t.Fatalf("stage decreased at difficulty=%s n=%d", d, n)
			}
			prev = rank
		}
	}
}

func TestHasCheckedInToday(t *testing.T) {
	lateYesterday := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	earlyToday := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)

	tests := []struct {
		name        string
		lastCheckIn *time.Time
		now         time.Time
		want        bool
	}{
		{"never checked in", nil, testNow, false},
		{"checked in earlier today", &earlyToday, testNow, true},
		{"checked in at 23:59 yesterday", &lateYesterday, earlyToday, false},
		{"checked in two days ago", lastCheckInDaysAgo(2), testNow, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := plantWith(models.DifficultyMedium, 1)
			p.LastCheckIn = tt.lastCheckIn
			if got := HasCheckedInToday(p, tt.now); got != tt.want {
				t.Errorf("HasCheckedInToday() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShouldBeWithering(t *testing.T) {
	tests := []struct {
		name      string
		frequency models.Frequency
		daysAgo   int
		want      bool
	}{
		{"daily missed two days", models.FrequencyDaily, 2, true},
		{"daily within grace", models.FrequencyDaily, 1, false},
		{"weekly five days is fine", models.FrequencyWeekly, 5, false},
		{"weekly eight days withers", models.FrequencyWeekly, 8, true},
		{"twice weekly four days is fine", models.FrequencyTwiceWeekly, 4, false},
		{"twice weekly five days withers", models.FrequencyTwiceWeekly, 5, true},
		{"three times weekly three days withers", models.FrequencyThreeTimesWeekly, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := plantWith(models.DifficultyMedium, 5)
			p.Frequency = tt.frequency
			p.LastCheckIn = lastCheckInDaysAgo(tt.daysAgo)
			if got := ShouldBeWithering(p, testNow); got != tt.want {
				t.Errorf("ShouldBeWithering() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("never checked in is never withering", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 0)
		if ShouldBeWithering(p, testNow) {
			t.Error("fresh plant reported withering")
		}
	})

	t.Run("archived plant is paused", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 5)
		p.LastCheckIn = lastCheckInDaysAgo(10)
		p.ArchivedAt = lastCheckInDaysAgo(8)
		if ShouldBeWithering(p, testNow) {
			t.Error("archived plant reported withering")
		}
		if ShouldBeDead(p, testNow) {
			t.Error("archived plant reported dead")
		}
	})
}

func TestShouldBeDead(t *testing.T) {
	tests := []struct {
		name      string
		frequency models.Frequency
		daysAgo   int
		want      bool
	}{
		{"daily three days missed is withering not dead", models.FrequencyDaily, 3, false},
		{"daily four days missed is dead", models.FrequencyDaily, 4, true},
		{"weekly twenty-one days still alive", models.FrequencyWeekly, 21, false},
		{"weekly twenty-two days is dead", models.FrequencyWeekly, 22, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := plantWith(models.DifficultyMedium, 5)
			p.Frequency = tt.frequency
			p.LastCheckIn = lastCheckInDaysAgo(tt.daysAgo)
			if got := ShouldBeDead(p, testNow); got != tt.want {
				t.Errorf("ShouldBeDead() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("dead implies withering", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 5)
		p.LastCheckIn = lastCheckInDaysAgo(10)
		if ShouldBeDead(p, testNow) && !ShouldBeWithering(p, testNow) {
			t.Error("dead plant not reported withering")
		}
	})
}

func TestDisplayStage(t *testing.T) {
	p := plantWith(models.DifficultyMedium, 10)
	p.GrowthStage = models.StagePlant

	if got := DisplayStage(p, testNow); got != models.StagePlant {
		t.Errorf("healthy plant DisplayStage() = %v, want %v", got, models.StagePlant)
	}

	p.LastCheckIn = lastCheckInDaysAgo(2)
	if got := DisplayStage(p, testNow); got != models.StageWithering {
		t.Errorf("overdue plant DisplayStage() = %v, want %v", got, models.StageWithering)
	}

	p.LastCheckIn = lastCheckInDaysAgo(10)
	if got := DisplayStage(p, testNow); got != models.StageDead {
		t.Errorf("long-missed plant DisplayStage() = %v, want %v", got, models.StageDead)
	}
}

func TestReviveCost(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo int
		want    int
	}{
		{"three days missed", 3, 1},
		{"five days missed", 5, 2},
		{"seven days missed", 7, 2},
		{"ten days missed", 10, 3},
		{"fourteen days missed", 14, 3},
		{"thirty days missed", 30, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := plantWith(models.DifficultyMedium, 5)
			p.LastCheckIn = lastCheckInDaysAgo(tt.daysAgo)
			if got := ReviveCost(p, testNow); got != tt.want {
				t.Errorf("ReviveCost() = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("never checked in costs the minimum", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 0)
		if got := ReviveCost(p, testNow); got != 1 {
			t.Errorf("ReviveCost() = %d, want 1", got)
		}
	})

	t.Run("monotonic non-decreasing in days missed", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 5)
		prev := 0
		for days := 0; days <= 60; days++ {
			p.LastCheckIn = lastCheckInDaysAgo(days)
			cost := ReviveCost(p, testNow)
			if cost < prev {
				t.Fatalf("cost decreased at %d days: %d < %d", days, cost, prev)
			}
			prev = cost
		}
	})
}

func TestHealth(t *testing.T) {
	t.Run("never checked in is full health", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 0)
		if got := Health(p, testNow); got != 100 {
			t.Errorf("Health() = %f, want 100", got)
		}
	})

	t.Run("daily plant at zero days", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 3)
		p.LastCheckIn = lastCheckInDaysAgo(0)
		if got := Health(p, testNow); got != 100 {
			t.Errorf("Health() = %f, want 100", got)
		}
	})

	t.Run("daily plant one day elapsed", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 3)
		p.LastCheckIn = lastCheckInDaysAgo(1)
		if got := Health(p, testNow); got != 0 {
			t.Errorf("Health() = %f, want 0", got)
		}
	})

	t.Run("weekly plant decays linearly", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 3)
		p.Frequency = models.FrequencyWeekly
		p.LastCheckIn = lastCheckInDaysAgo(3)
		want := (7.0 - 3.0) / 7.0 * 100
		got := Health(p, testNow)
		if got < want-0.001 || got > want+0.001 {
			t.Errorf("Health() = %f, want %f", got, want)
		}
	})

	t.Run("clock skew clamps to full health", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 3)
		future := testNow.AddDate(0, 0, 2)
		p.LastCheckIn = &future
		if got := Health(p, testNow); got != 100 {
			t.Errorf("Health() = %f, want 100", got)
		}
	})

	t.Run("monotonic non-increasing and bounded", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 3)
		p.Frequency = models.FrequencyWeekly
		prev := 101.0
		for days := 0; days <= 20; days++ {
			p.LastCheckIn = lastCheckInDaysAgo(days)
			h := Health(p, testNow)
			if h < 0 || h > 100 {
				t.Fatalf("health out of range at %d days: %f", days, h)
			}
			if h > prev {
				t.Fatalf("health increased at %d days: %f > %f", days, h, prev)
			}
			prev = h
		}
	})
}

func TestNextCheckInDue(t *testing.T) {
	t.Run("from last check-in", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 3)
		p.LastCheckIn = lastCheckInDaysAgo(1)
		want := p.LastCheckIn.Add(24 * time.Hour)
		if got := NextCheckInDue(p, testNow); !got.Equal(want) {
			t.Errorf("NextCheckInDue() = %v, want %v", got, want)
		}
	})

	t.Run("fresh plant measures from now", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 0)
		p.Frequency = models.FrequencyWeekly
		want := testNow.Add(168 * time.Hour)
		if got := NextCheckInDue(p, testNow); !got.Equal(want) {
			t.Errorf("NextCheckInDue() = %v, want %v", got, want)
		}
	})
}

func TestRainDropsForCheckIn(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{0, 0},
		{5, 0},
		{6, 1},
		{7, 2},
		{28, 2},
		{29, 3},
		{88, 3},
		{89, 5},
		{100, 5},
	}

	for _, tt := range tests {
		if got := RainDropsForCheckIn(tt.streak); got != tt.want {
			t.Errorf("RainDropsForCheckIn(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name          string
		totalCheckIns int
		want          float64
	}{
		{"fresh plant", 0, 0},
		{"halfway", 15, 0.5},
		{"at max", 30, 1},
		{"beyond max clamps", 60, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(plantWith(models.DifficultyMedium, tt.totalCheckIns))
			if got != tt.want {
				t.Errorf("Progress() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestDaysToNextStage(t *testing.T) {
	t.Run("seed needs three daily check-ins", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 0)
		if got := DaysToNextStage(p, testNow); got != 3 {
			t.Errorf("DaysToNextStage() = %d, want 3", got)
		}
	})

	t.Run("weekly cadence multiplies the estimate", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 0)
		p.Frequency = models.FrequencyWeekly
		if got := DaysToNextStage(p, testNow); got != 21 {
			t.Errorf("DaysToNextStage() = %d, want 21", got)
		}
	})

	t.Run("fruit stage returns zero", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 30)
		p.GrowthStage = models.StageFruit
		if got := DaysToNextStage(p, testNow); got != 0 {
			t.Errorf("DaysToNextStage() = %d, want 0", got)
		}
	})

	t.Run("withering plant returns zero", func(t *testing.T) {
		p := plantWith(models.DifficultyMedium, 1)
		p.LastCheckIn = lastCheckInDaysAgo(2)
		if got := DaysToNextStage(p, testNow); got != 0 {
			t.Errorf("DaysToNextStage() = %d, want 0", got)
		}
	})
}

func TestMotivationalMessagePriority(t *testing.T) {
	p := plantWith(models.DifficultyMedium, 35)
	p.CurrentStreak = 35
	p.GrowthStage = models.StageFruit
	p.LastCheckIn = lastCheckInDaysAgo(2)

	// Withering outranks the long streak and the fruit stage.
	if got := MotivationalMessage(p, testNow); got != "Your Meditation needs attention! 🥺" {
		t.Errorf("MotivationalMessage() = %q", got)
	}

	p.LastCheckIn = lastCheckInDaysAgo(0)
	if got := MotivationalMessage(p, testNow); got != "Amazing dedication! Keep going! 🌟" {
		t.Errorf("MotivationalMessage() = %q", got)
	}

	fresh := plantWith(models.DifficultyMedium, 0)
	if got := MotivationalMessage(fresh, testNow); got != "Start your journey with Meditation! 🌱" {
		t.Errorf("MotivationalMessage() = %q", got)
	}
}

func TestReadFunctionsAreIdempotent(t *testing.T) {
	p := plantWith(models.DifficultyHard, 12)
	p.Frequency = models.FrequencyTwiceWeekly
	p.LastCheckIn = lastCheckInDaysAgo(3)
	p.CurrentStreak = 4

	if Stage(p) != Stage(p) {
		t.Error("Stage not idempotent")
	}
	if Health(p, testNow) != Health(p, testNow) {
		t.Error("Health not idempotent")
	}
	if ReviveCost(p, testNow) != ReviveCost(p, testNow) {
		t.Error("ReviveCost not idempotent")
	}
	if DisplayStage(p, testNow) != DisplayStage(p, testNow) {
		t.Error("DisplayStage not idempotent")
	}
}
