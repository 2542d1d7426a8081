package postgres

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/timebloom/internal/constants"
	"github.com/julianstephens/timebloom/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingNotificationTime:
			settings.NotificationTime = value
		case constants.SettingGardenTheme:
			settings.GardenTheme = value
		case constants.SettingViewMode:
			settings.ViewMode = value
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, rows.Err()
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := []struct {
		key   string
		value string
	}{
		{constants.SettingTimezone, settings.Timezone},
		{constants.SettingNotificationsEnabled, strconv.FormatBool(settings.NotificationsEnabled)},
		{constants.SettingNotificationTime, settings.NotificationTime},
		{constants.SettingGardenTheme, settings.GardenTheme},
		{constants.SettingViewMode, settings.ViewMode},
	}
	for _, pair := range pairs {
		if _, err := stmt.Exec(pair.key, pair.value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
