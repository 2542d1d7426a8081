package plants

import (
	"fmt"
	"time"

	"github.com/julianstephens/timebloom/internal/cli"
	"github.com/julianstephens/timebloom/internal/models"
)

type PlantShowCmd struct {
	Plant   string `arg:"" help:"Plant name or ID."`
	History int    `short:"n" help:"Number of recent check-ins to show." default:"5"`
}

func (c *PlantShowCmd) Run(ctx *cli.Context) error {
	plant, err := ctx.Service.ResolvePlant(c.Plant)
	if err != nil {
		return err
	}
	st := ctx.Service.Status(plant)

	fmt.Printf("%s %s\n", cli.StageEmoji(st.DisplayStage), plant.Name)
	if plant.Description != "" {
		fmt.Printf("   %s\n", plant.Description)
	}
	fmt.Println()
	fmt.Printf("   Stage:      %s", st.DisplayStage.DisplayName())
	if st.DisplayStage == models.StageWithering {
		fmt.Printf(" (revive for %d 💧)", st.ReviveCost)
	}
	fmt.Println()
	fmt.Printf("   Health:     %s %.0f%%\n", cli.HealthBar(st.Health, 10), st.Health)
	fmt.Printf("   Progress:   %.0f%% grown", st.Progress*100)
	if st.DaysToNext > 0 {
		fmt.Printf(", next stage in ~%d days", st.DaysToNext)
	}
	fmt.Println()
	fmt.Printf("   Streak:     %d (best %d)\n", plant.CurrentStreak, plant.LongestStreak)
	fmt.Printf("   Check-ins:  %d total\n", plant.TotalCheckIns)
	fmt.Printf("   Rain drops: %d 💧\n", plant.RainDrops)
	fmt.Printf("   Cadence:    %s, %s\n", plant.Frequency, plant.Difficulty)
	fmt.Printf("   Planted:    %s\n", plant.CreatedAt.Format("2006-01-02"))
	fmt.Printf("   Watered:    %s\n", cli.FormatRelativeTime(plant.LastCheckIn, time.Now()))
	fmt.Println()
	fmt.Printf("   %s\n", st.Message)

	if c.History > 0 {
		checkIns, err := ctx.Store.GetCheckInsForPlant(plant.ID, c.History)
		if err != nil {
			return err
		}
		if len(checkIns) > 0 {
			fmt.Println("\n   Recent check-ins:")
			for _, ci := range checkIns {
				line := fmt.Sprintf("   %s %s", ci.Timestamp.Format("2006-01-02 15:04"), ci.Mood.Emoji())
				if ci.Note != "" {
					line += " " + ci.Note
				}
				fmt.Println(line)
			}
		}
	}

	achievements, err := ctx.Store.GetAchievementsForPlant(plant.ID)
	if err != nil {
		return err
	}
	if len(achievements) > 0 {
		fmt.Println("\n   Achievements:")
		for _, a := range achievements {
			fmt.Printf("   🏆 %s — %s (+%d 💧)\n", a.Title, a.Description, a.RainDrops)
		}
	}

	return nil
}
