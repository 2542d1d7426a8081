package plants

import (
	"fmt"

	"github.com/julianstephens/timebloom/internal/cli"
	"github.com/julianstephens/timebloom/internal/models"
)

type PlantDeleteCmd struct {
	Plant string `arg:"" help:"Plant name or ID."`
	Purge bool   `help:"Permanently remove the plant and all its history."`
	Force bool   `short:"f" help:"Skip the purge confirmation."`
}

func (c *PlantDeleteCmd) Run(ctx *cli.Context) error {
	plant, err := ctx.Service.ResolvePlant(c.Plant)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	if c.Purge {
		if !c.Force {
			return fmt.Errorf("purging %s deletes its check-in history forever; re-run with --force to confirm", plant.Name)
		}
		if err := ctx.Store.PurgePlant(plant.ID); err != nil {
			return err
		}
		fmt.Printf("Purged %s and all of its history.\n", plant.Name)
		return nil
	}

	if err := ctx.Store.DeletePlant(plant.ID); err != nil {
		return err
	}
	fmt.Printf("Removed %s. Undo with 'timebloom plant restore %s'.\n", plant.Name, plant.Name)
	return nil
}

type PlantRestoreCmd struct {
	Plant string `arg:"" help:"Plant name or ID."`
}

func (c *PlantRestoreCmd) Run(ctx *cli.Context) error {
	plant, err := findDeletedPlant(ctx, c.Plant)
	if err != nil {
		return err
	}
	if err := ctx.Store.RestorePlant(plant.ID); err != nil {
		return err
	}
	fmt.Printf("Restored %s to the garden.\n", plant.Name)
	return nil
}

// findDeletedPlant looks the reference up among soft-deleted plants, which
// the usual name lookup intentionally excludes.
func findDeletedPlant(ctx *cli.Context, ref string) (models.Plant, error) {
	all, err := ctx.Store.GetAllPlants(true, true)
	if err != nil {
		return models.Plant{}, err
	}
	for _, p := range all {
		if p.DeletedAt == nil {
			continue
		}
		if p.ID == ref || p.Name == ref {
			return p, nil
		}
	}
	return models.Plant{}, fmt.Errorf("no deleted plant matches %q", ref)
}
