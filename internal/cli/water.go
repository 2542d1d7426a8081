package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/timebloom/internal/models"
	"github.com/julianstephens/timebloom/internal/repository"
)

type WaterCmd struct {
	Plant string `arg:"" help:"Plant name or ID."`
	Note  string `short:"n" help:"Optional note for this check-in."`
	Mood  string `short:"m" help:"How it felt (great|good|neutral|bad)." default:"neutral"`
}

func (c *WaterCmd) Run(ctx *Context) error {
	mood, err := models.ParseMood(c.Mood)
	if err != nil {
		return err
	}

	plant, err := ctx.Service.ResolvePlant(c.Plant)
	if err != nil {
		return err
	}

	res, err := ctx.Service.CheckIn(plant.ID, c.Note, mood)
	switch {
	case errors.Is(err, repository.ErrDuplicateCheckIn):
		fmt.Printf("%s was already watered today. Come back tomorrow!\n", plant.Name)
		return nil
	case errors.Is(err, repository.ErrPlantWithering):
		st := ctx.Service.Status(plant)
		return fmt.Errorf("%s is withering and needs revival first: 'timebloom revive %s' (%d 💧)",
			plant.Name, plant.Name, st.ReviveCost)
	case errors.Is(err, repository.ErrPlantDead):
		return fmt.Errorf("%s has died. Start over with 'timebloom restart %s'", plant.Name, plant.Name)
	case err != nil:
		return err
	}

	fmt.Printf("💧 Watered %s! Streak: %d", res.Plant.Name, res.Plant.CurrentStreak)
	if res.RainDrops > 0 {
		fmt.Printf(" (+%d 💧)", res.RainDrops)
	}
	fmt.Println()

	if res.Plant.GrowthStage != plant.GrowthStage {
		fmt.Printf("%s %s grew to the %s stage!\n",
			StageEmoji(res.Plant.GrowthStage), res.Plant.Name, res.Plant.GrowthStage.DisplayName())
	}
	for _, a := range res.Unlocked {
		fmt.Printf("🏆 Achievement unlocked: %s (+%d 💧)\n", a.Title, a.RainDrops)
	}
	fmt.Println(res.Message)
	return nil
}
