package plants

import (
	"fmt"

	"github.com/julianstephens/timebloom/internal/cli"
)

type PlantArchiveCmd struct {
	Plant string `arg:"" help:"Plant name or ID."`
}

// Archiving pauses a habit: the plant keeps its stage and history but stops
// withering and drops out of the default garden view.
func (c *PlantArchiveCmd) Run(ctx *cli.Context) error {
	plant, err := ctx.Service.ResolvePlant(c.Plant)
	if err != nil {
		return err
	}
	if err := ctx.Store.ArchivePlant(plant.ID); err != nil {
		return err
	}
	fmt.Printf("Moved %s to the greenhouse. Bring it back with 'timebloom plant unarchive %s'.\n", plant.Name, plant.Name)
	return nil
}

type PlantUnarchiveCmd struct {
	Plant string `arg:"" help:"Plant name or ID."`
}

func (c *PlantUnarchiveCmd) Run(ctx *cli.Context) error {
	plant, err := ctx.Service.ResolvePlant(c.Plant)
	if err != nil {
		return err
	}
	if err := ctx.Store.UnarchivePlant(plant.ID); err != nil {
		return err
	}
	fmt.Printf("%s is back in the garden.\n", plant.Name)
	return nil
}
