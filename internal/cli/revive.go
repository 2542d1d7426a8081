package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/timebloom/internal/repository"
)

type ReviveCmd struct {
	Plant string `arg:"" help:"Plant name or ID."`
}

func (c *ReviveCmd) Run(ctx *Context) error {
	plant, err := ctx.Service.ResolvePlant(c.Plant)
	if err != nil {
		return err
	}

	revived, err := ctx.Service.Revive(plant.ID)
	switch {
	case errors.Is(err, repository.ErrPlantNotWithering):
		fmt.Printf("%s is doing fine and doesn't need revival.\n", plant.Name)
		return nil
	case errors.Is(err, repository.ErrPlantDead):
		return fmt.Errorf("%s is past saving. Start over with 'timebloom restart %s'", plant.Name, plant.Name)
	case errors.Is(err, repository.ErrInsufficientRainDrops):
		return fmt.Errorf("%v. Earn rain drops by keeping streaks on other plants", err)
	case err != nil:
		return err
	}

	fmt.Printf("🌤  Revived %s! It kept its %s stage; the streak starts over. %d 💧 left.\n",
		revived.Name, revived.GrowthStage.DisplayName(), revived.RainDrops)
	return nil
}

type RestartCmd struct {
	Plant string `arg:"" help:"Plant name or ID."`
	Force bool   `short:"f" help:"Skip confirmation."`
}

func (c *RestartCmd) Run(ctx *Context) error {
	plant, err := ctx.Service.ResolvePlant(c.Plant)
	if err != nil {
		return err
	}

	if !c.Force {
		return fmt.Errorf("restarting %s resets its growth to seed (history and rain drops are kept); re-run with --force to confirm", plant.Name)
	}

	restarted, err := ctx.Service.Restart(plant.ID)
	if err != nil {
		return err
	}

	fmt.Printf("🌰 %s starts over from seed. Best streak so far: %d.\n", restarted.Name, restarted.LongestStreak)
	return nil
}
