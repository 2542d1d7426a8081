package plants

import (
	"fmt"
	"time"

	"github.com/julianstephens/timebloom/internal/cli"
)

type PlantListCmd struct {
	Archived bool `short:"a" help:"Include archived plants."`
}

func (c *PlantListCmd) Run(ctx *cli.Context) error {
	statuses, err := ctx.Service.Garden(c.Archived)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		fmt.Println("Your garden is empty. Plant a habit with 'timebloom plant add'.")
		return nil
	}

	now := time.Now()
	fmt.Printf("%-3s %-20s %-10s %-12s %-7s %-12s %s\n",
		"", "NAME", "STAGE", "HEALTH", "STREAK", "WATERED", "ID")
	for _, st := range statuses {
		label := st.DisplayStage.DisplayName()
		if st.Plant.ArchivedAt != nil {
			label += " (archived)"
		}
		fmt.Printf("%-3s %-20s %-10s %-12s %-7d %-12s %s\n",
			cli.StageEmoji(st.DisplayStage),
			truncate(st.Plant.Name, 20),
			label,
			cli.HealthBar(st.Health, 10),
			st.Plant.CurrentStreak,
			cli.FormatRelativeTime(st.Plant.LastCheckIn, now),
			st.Plant.ID)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
