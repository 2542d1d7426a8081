package plants

import (
	"fmt"

	"github.com/julianstephens/timebloom/internal/cli"
	"github.com/julianstephens/timebloom/internal/models"
)

type PlantEditCmd struct {
	Plant       string  `arg:"" help:"Plant name or ID."`
	Name        *string `help:"New name."`
	Description *string `short:"d" help:"New description."`
	Difficulty  *string `short:"D" help:"New difficulty (easy|medium|hard)."`
	Priority    *int    `short:"p" help:"New display priority."`
	Color       *string `help:"New accent color."`
}

func (c *PlantEditCmd) Run(ctx *cli.Context) error {
	plant, err := ctx.Service.ResolvePlant(c.Plant)
	if err != nil {
		return err
	}

	changed := false
	if c.Name != nil && *c.Name != "" && *c.Name != plant.Name {
		if _, err := ctx.Store.GetPlantByName(*c.Name); err == nil {
			return fmt.Errorf("plant with name %q already exists", *c.Name)
		}
		plant.Name = *c.Name
		changed = true
	}
	if c.Description != nil {
		plant.Description = *c.Description
		changed = true
	}
	if c.Difficulty != nil {
		// Changing difficulty re-rates all past check-ins; the stage is
		// recomputed on the next watering.
		difficulty, err := models.ParseDifficulty(*c.Difficulty)
		if err != nil {
			return err
		}
		plant.Difficulty = difficulty
		changed = true
	}
	if c.Priority != nil {
		plant.Priority = *c.Priority
		changed = true
	}
	if c.Color != nil {
		plant.Color = *c.Color
		changed = true
	}

	if !changed {
		fmt.Println("Nothing to change.")
		return nil
	}

	if err := ctx.Store.UpdatePlant(plant); err != nil {
		return err
	}
	fmt.Printf("Updated %s.\n", plant.Name)
	return nil
}
