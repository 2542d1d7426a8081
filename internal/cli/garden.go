package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/timebloom/internal/models"
)

type GardenCmd struct {
	Archived bool `short:"a" help:"Include archived plants."`
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(30)
	witheringCardStyle = cardStyle.BorderForeground(lipgloss.Color("208"))
	deadCardStyle      = cardStyle.BorderForeground(lipgloss.Color("240"))
	nameStyle          = lipgloss.NewStyle().Bold(true)
	dimStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (c *GardenCmd) Run(ctx *Context) error {
	statuses, err := ctx.Service.Garden(c.Archived)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		fmt.Println("Your garden is empty. Plant a habit with 'timebloom plant add'.")
		return nil
	}

	now := time.Now()
	var cards []string
	for _, st := range statuses {
		style := cardStyle
		switch st.DisplayStage {
		case models.StageWithering:
			style = witheringCardStyle
		case models.StageDead:
			style = deadCardStyle
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s %s\n", StageEmoji(st.DisplayStage), nameStyle.Render(st.Plant.Name))
		fmt.Fprintf(&b, "%s %s\n", st.DisplayStage.DisplayName(), dimStyle.Render(fmt.Sprintf("· streak %d", st.Plant.CurrentStreak)))
		fmt.Fprintf(&b, "%s %.0f%%\n", HealthBar(st.Health, 12), st.Health)
		switch st.DisplayStage {
		case models.StageWithering:
			fmt.Fprintf(&b, "revive for %d 💧", st.ReviveCost)
		case models.StageDead:
			b.WriteString("needs a restart")
		default:
			b.WriteString(dimStyle.Render("watered " + FormatRelativeTime(st.Plant.LastCheckIn, now)))
		}

		cards = append(cards, style.Render(b.String()))
	}

	// two cards per row
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		row := cards[i]
		if i+1 < len(cards) {
			row = lipgloss.JoinHorizontal(lipgloss.Top, cards[i], cards[i+1])
		}
		rows = append(rows, row)
	}
	fmt.Println(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return nil
}
