package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/timebloom/internal/backup"
	"github.com/julianstephens/timebloom/internal/logger"
	"github.com/julianstephens/timebloom/internal/models"
	"github.com/julianstephens/timebloom/internal/repository"
	"github.com/julianstephens/timebloom/internal/storage"
)

// Context is handed to every kong command's Run method.
type Context struct {
	Store   storage.Provider
	Service *repository.Service
}

// PerformAutomaticBackup creates a backup before destructive operations.
// Only the SQLite backend is file-backed; failures are logged, not fatal.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*storage.PostgresStore); ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// StageEmoji returns the glyph shown next to a plant's stage.
func StageEmoji(stage models.GrowthStage) string {
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

// HealthBar renders a fixed-width text gauge for a 0-100 health value.
func HealthBar(health float64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := int(health / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatRelativeTime renders a timestamp as a short "2d ago" style string.
func FormatRelativeTime(t *time.Time, now time.Time) string {
	if t == nil {
		return "never"
	}
	d := now.Sub(*t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
