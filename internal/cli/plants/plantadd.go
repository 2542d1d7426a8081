package plants

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timebloom/internal/cli"
	"github.com/julianstephens/timebloom/internal/models"
	"github.com/julianstephens/timebloom/internal/repository"
)

type PlantAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Description string `short:"d" help:"What this habit is about."`
	Difficulty  string `short:"D" help:"Difficulty (easy|medium|hard)." default:"medium"`
	Frequency   string `short:"f" help:"Frequency (daily|weekly|twice_weekly|three_times_weekly)." default:"daily"`
	Priority    int    `short:"p" help:"Display priority (higher sorts first)." default:"0"`
	Color       string `help:"Accent color as a hex value."`
	Interactive bool   `short:"i" help:"Fill in the plant details interactively."`
}

func (c *PlantAddCmd) Run(ctx *cli.Context) error {
	if c.Interactive || c.Name == "" {
		if err := c.promptForDetails(); err != nil {
			return err
		}
	}

	difficulty, err := models.ParseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}
	frequency, err := models.ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	plant, err := ctx.Service.CreatePlant(repository.CreateParams{
		Name:        c.Name,
		Description: c.Description,
		Difficulty:  difficulty,
		Frequency:   frequency,
		Priority:    c.Priority,
		Color:       c.Color,
	})
	if err != nil {
		return err
	}

	fmt.Printf("🌰 Planted %s (ID: %s). Water it with 'timebloom water %s'.\n", plant.Name, plant.ID, plant.Name)
	return nil
}

func (c *PlantAddCmd) promptForDetails() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&c.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&c.Description),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(
					huh.NewOption("Easy (grows fast)", string(models.DifficultyEasy)),
					huh.NewOption("Medium", string(models.DifficultyMedium)),
					huh.NewOption("Hard (grows slow)", string(models.DifficultyHard)),
				).
				Value(&c.Difficulty),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(models.FrequencyDaily)),
					huh.NewOption("Three times a week", string(models.FrequencyThreeTimesWeekly)),
					huh.NewOption("Twice a week", string(models.FrequencyTwiceWeekly)),
					huh.NewOption("Weekly", string(models.FrequencyWeekly)),
				).
				Value(&c.Frequency),
		),
	)
	return form.Run()
}
