package settings

import (
	"fmt"

	"github.com/julianstephens/timebloom/internal/cli"
	"github.com/julianstephens/timebloom/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone             *string `help:"IANA timezone for day boundaries (e.g. 'Europe/Berlin', 'Local')."`
	NotificationsEnabled *bool   `help:"Enable or disable reminder notifications."`
	NotificationTime     *string `help:"Daily reminder time (HH:MM)."`
	GardenTheme          *string `help:"Garden display theme."`
	ViewMode             *string `help:"Default garden view (list|grid)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Notification Time:     %s\n", settings.NotificationTime)
		fmt.Printf("  Garden Theme:          %s\n", settings.GardenTheme)
		fmt.Printf("  View Mode:             %s\n", settings.ViewMode)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if err := utils.ValidateTimezone(*c.Timezone); err != nil {
			return err
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.NotificationTime != nil {
		if err := utils.ValidateTimeFormat(*c.NotificationTime); err != nil {
			return err
		}
		settings.NotificationTime = *c.NotificationTime
		updated = true
	}
	if c.GardenTheme != nil {
		settings.GardenTheme = *c.GardenTheme
		updated = true
	}
	if c.ViewMode != nil {
		if *c.ViewMode != "list" && *c.ViewMode != "grid" {
			return fmt.Errorf("invalid view mode %q (expected list or grid)", *c.ViewMode)
		}
		settings.ViewMode = *c.ViewMode
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
