package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/timebloom/internal/cli"
	"github.com/julianstephens/timebloom/internal/constants"
	"github.com/julianstephens/timebloom/internal/models"
	"github.com/julianstephens/timebloom/internal/notifier"
	"github.com/julianstephens/timebloom/internal/utils"
)

// NotifyCmd is invoked by a scheduler (cron, systemd timer) every minute.
// It fires a reminder through the tray app when the configured notification
// time arrives and plants are due.
type NotifyCmd struct {
	DryRun bool `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	ready, err := notificationDue(settings, time.Now())
	if err != nil {
		return err
	}
	if !ready {
		if c.DryRun {
			fmt.Printf("Not notification time yet (configured for %s).\n", settings.NotificationTime)
		}
		return nil
	}

	due, err := ctx.Service.DuePlants()
	if err != nil {
		return err
	}
	if len(due) == 0 {
		if c.DryRun {
			fmt.Println("All plants are watered; nothing to send.")
		}
		return nil
	}

	var names []string
	for _, st := range due {
		names = append(names, st.Plant.Name)
	}
	msg := fmt.Sprintf("🌱 %d plant(s) need attention: %s", len(due), strings.Join(names, ", "))

	if c.DryRun {
		fmt.Println("[DryRun] " + msg)
		return nil
	}
	return notifier.New().Notify(msg)
}

// notificationDue reports whether the configured reminder time has arrived,
// evaluated in the settings timezone rather than the system zone.
func notificationDue(settings models.Settings, now time.Time) (bool, error) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return false, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return now.In(loc).Format(constants.TimeFormat) == settings.NotificationTime, nil
}
