package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/timebloom/internal/models"
	"github.com/julianstephens/timebloom/internal/notifier"
	"github.com/julianstephens/timebloom/internal/repository"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	stats, err := ctx.Service.Statistics()
	if err != nil {
		return err
	}

	fmt.Println("🌻 Garden statistics")
	fmt.Printf("   Plants:         %d\n", stats.TotalPlants)
	fmt.Printf("   Check-ins:      %d\n", stats.TotalCheckIns)
	fmt.Printf("   Longest streak: %d\n", stats.LongestStreak)
	fmt.Printf("   Rain drops:     %d 💧\n", stats.TotalRainDrops)

	if len(stats.PlantsByStage) > 0 {
		fmt.Println("   By stage:")
		stages := make([]string, 0, len(stats.PlantsByStage))
		for stage := range stats.PlantsByStage {
			stages = append(stages, stage)
		}
		sort.Strings(stages)
		for _, stage := range stages {
			fmt.Printf("     %-10s %d\n", stage, stats.PlantsByStage[stage])
		}
	}
	return nil
}

type RemindCmd struct {
	Notify bool `help:"Send a desktop notification through the tray app instead of printing."`
}

func (c *RemindCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	due, err := ctx.Service.DuePlants()
	if err != nil {
		return err
	}
	if len(due) == 0 {
		fmt.Println("All plants are watered. 🌞")
		return nil
	}

	if c.Notify {
		if !settings.NotificationsEnabled {
			return fmt.Errorf("notifications are disabled; enable with 'timebloom settings --notifications-enabled=true'")
		}
		return sendDueNotification(due)
	}

	fmt.Printf("%d plant(s) need attention:\n", len(due))
	for _, st := range due {
		fmt.Println(describeDue(st))
	}
	return nil
}

// describeDue renders one reminder line for a plant that needs attention.
// Dead plants reject watering, so they get a restart hint instead of a
// watering prompt.
func describeDue(st repository.PlantStatus) string {
	switch st.DisplayStage {
	case models.StageDead:
		return fmt.Sprintf("  💀 %s has died (restart it to begin again)", st.Plant.Name)
	case models.StageWithering:
		return fmt.Sprintf("  🥀 %s is withering (revive for %d 💧)", st.Plant.Name, st.ReviveCost)
	default:
		return fmt.Sprintf("  💧 %s is due for watering", st.Plant.Name)
	}
}

func sendDueNotification(due []repository.PlantStatus) error {
	var names []string
	for _, st := range due {
		names = append(names, st.Plant.Name)
	}
	text := fmt.Sprintf("🌱 %d plant(s) need attention: %s", len(due), strings.Join(names, ", "))
	return notifier.New().Notify(text)
}
