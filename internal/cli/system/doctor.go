package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/timebloom/internal/backup"
	"github.com/julianstephens/timebloom/internal/cli"
	"github.com/julianstephens/timebloom/internal/storage"
	"github.com/julianstephens/timebloom/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}

		if err := checkPlantIntegrity(ctx); err != nil {
			fmt.Printf("❌ Plant integrity: FAIL\n   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Plant integrity: OK\n")
		}

		if err := checkOrphanedCheckIns(ctx); err != nil {
			fmt.Printf("❌ Check-in references: FAIL\n   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Check-in references: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Plant integrity: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Check-in references: SKIPPED (database not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkClockTimezone(ctx, dbReachable); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if err := utils.ValidateTimezone(settings.Timezone); err != nil {
		return fmt.Errorf("invalid timezone setting %q: %w", settings.Timezone, err)
	}
	if err := utils.ValidateTimeFormat(settings.NotificationTime); err != nil {
		return fmt.Errorf("invalid notification time %q: %w", settings.NotificationTime, err)
	}
	return nil
}

func checkPlantIntegrity(ctx *cli.Context) error {
	plants, err := ctx.Store.GetAllPlants(true, true)
	if err != nil {
		return err
	}

	names := make(map[string]string)
	for _, p := range plants {
		if p.ID == "" {
			return fmt.Errorf("plant %q has an empty ID", p.Name)
		}
		if p.CurrentStreak > p.LongestStreak {
			return fmt.Errorf("plant %q: current streak %d exceeds longest streak %d", p.Name, p.CurrentStreak, p.LongestStreak)
		}
		if p.RainDrops < 0 {
			return fmt.Errorf("plant %q has negative rain drops", p.Name)
		}
		if p.DeletedAt == nil {
			if other, dup := names[p.Name]; dup {
				return fmt.Errorf("duplicate plant name %q (IDs %s, %s)", p.Name, other, p.ID)
			}
			names[p.Name] = p.ID
		}
	}
	return nil
}

func checkOrphanedCheckIns(ctx *cli.Context) error {
	plants, err := ctx.Store.GetAllPlants(true, true)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(plants))
	for _, p := range plants {
		known[p.ID] = true
	}

	checkIns, err := ctx.Store.GetAllCheckIns()
	if err != nil {
		return err
	}
	for _, ci := range checkIns {
		if !known[ci.PlantID] {
			return fmt.Errorf("check-in %s references unknown plant %s", ci.ID, ci.PlantID)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*storage.PostgresStore); ok {
		return nil
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; one is created automatically before destructive operations")
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context, dbReachable bool) error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reports %v, which looks wrong", now)
	}
	if !dbReachable {
		return nil
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return nil
	}
	if _, err := utils.LoadLocation(settings.Timezone); err != nil {
		return fmt.Errorf("configured timezone %q cannot be loaded: %w", settings.Timezone, err)
	}
	return nil
}
