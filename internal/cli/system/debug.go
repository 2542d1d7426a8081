package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/timebloom/internal/cli"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show database path."`
	DumpPlant    *DebugDumpPlantCmd    `cmd:"" help:"Dump a plant as JSON."`
	DumpGarden   *DebugDumpGardenCmd   `cmd:"" help:"Dump all plants as JSON."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugDumpPlantCmd struct {
	Plant string `arg:"" help:"Plant name or ID."`
}

func (cmd *DebugDumpPlantCmd) Run(ctx *cli.Context) error {
	plant, err := ctx.Service.ResolvePlant(cmd.Plant)
	if err != nil {
		return err
	}

	checkIns, err := ctx.Store.GetCheckInsForPlant(plant.ID, 0)
	if err != nil {
		return err
	}
	achievements, err := ctx.Store.GetAchievementsForPlant(plant.ID)
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"plant":        plant,
		"check_ins":    checkIns,
		"achievements": achievements,
	})
}

type DebugDumpGardenCmd struct{}

func (cmd *DebugDumpGardenCmd) Run(ctx *cli.Context) error {
	plants, err := ctx.Store.GetAllPlants(true, true)
	if err != nil {
		return err
	}
	return printJSON(plants)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	return printJSON(settings)
}
