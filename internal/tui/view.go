package tui

import (
	"fmt"
	"strings"

	"github.com/julianstephens/timebloom/internal/models"
	"github.com/julianstephens/timebloom/internal/repository"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateAdding:
		return docStyle.Render(m.form.View())
	case stateConfirmRestart:
		return docStyle.Render(fmt.Sprintf(
			"Restart %s from seed?\n\nGrowth resets to zero; history and rain drops are kept.\n\n[y] yes  [n] no",
			m.confirmPlantName))
	}

	var b strings.Builder
	title := "🌻 Your Garden"
	if m.showArchived {
		title += " (including greenhouse)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.statuses) == 0 {
		b.WriteString(dimStyle.Render("The garden is empty. Press 'a' to plant a habit.\n"))
	}

	for i, st := range m.statuses {
		b.WriteString(m.renderPlantLine(i, st))
		b.WriteString("\n")
	}

	if st := m.selected(); st != nil {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(st.Message))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) renderPlantLine(i int, st repository.PlantStatus) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	line := fmt.Sprintf("%s%s %-20s %-10s %s %3.0f%%  streak %d",
		cursor,
		stageEmoji(st.DisplayStage),
		truncate(st.Plant.Name, 20),
		st.DisplayStage.DisplayName(),
		healthBar(st.Health),
		st.Health,
		st.Plant.CurrentStreak)

	switch {
	case i == m.cursor:
		return selectedStyle.Render(line)
	case st.DisplayStage == models.StageWithering:
		return witheringStyle.Render(line)
	case st.DisplayStage == models.StageDead:
		return deadStyle.Render(line)
	default:
		return line
	}
}

func stageEmoji(stage models.GrowthStage) string {
	switch stage {
	case models.StageSeed:
		return "🌰"
	case models.StageSprout:
		return "🌱"
	case models.StagePlant:
		return "🌿"
	case models.StageFlower:
		return "🌸"
	case models.StageFruit:
		return "🍎"
	case models.StageWithering:
		return "🥀"
	case models.StageDead:
		return "💀"
	default:
		return "🌱"
	}
}

func healthBar(health float64) string {
	const width = 10
	filled := int(health / 100 * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
