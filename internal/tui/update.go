package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timebloom/internal/models"
	"github.com/julianstephens/timebloom/internal/repository"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	switch m.state {
	case stateAdding:
		return m.updateAdding(msg)
	case stateConfirmRestart:
		return m.updateConfirmRestart(msg)
	default:
		return m.updateGarden(msg)
	}
}

func (m Model) updateGarden(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""
	m.errMsg = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.statuses)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Archived):
		m.showArchived = !m.showArchived
		m.refresh()

	case key.Matches(keyMsg, m.keys.Water):
		m.waterSelected()

	case key.Matches(keyMsg, m.keys.Revive):
		m.reviveSelected()

	case key.Matches(keyMsg, m.keys.Restart):
		if st := m.selected(); st != nil {
			m.confirmPlantID = st.Plant.ID
			m.confirmPlantName = st.Plant.Name
			m.state = stateConfirmRestart
		}

	case key.Matches(keyMsg, m.keys.Add):
		m.plantForm = &plantForm{
			Difficulty: string(models.DifficultyMedium),
			Frequency:  string(models.FrequencyDaily),
		}
		m.form = newPlantForm(m.plantForm)
		m.state = stateAdding
		return m, m.form.Init()
	}

	return m, nil
}

func (m *Model) waterSelected() {
	st := m.selected()
	if st == nil {
		return
	}

	res, err := m.service.CheckIn(st.Plant.ID, "", models.MoodNeutral)
	switch {
	case errors.Is(err, repository.ErrDuplicateCheckIn):
		m.status = fmt.Sprintf("%s was already watered today", st.Plant.Name)
	case errors.Is(err, repository.ErrPlantWithering):
		m.errMsg = fmt.Sprintf("%s is withering; press r to revive (%d 💧)", st.Plant.Name, st.ReviveCost)
	case errors.Is(err, repository.ErrPlantDead):
		m.errMsg = fmt.Sprintf("%s is dead; press R to restart from seed", st.Plant.Name)
	case err != nil:
		m.errMsg = err.Error()
	default:
		m.status = fmt.Sprintf("💧 Watered %s! Streak: %d", res.Plant.Name, res.Plant.CurrentStreak)
		for _, a := range res.Unlocked {
			m.status += fmt.Sprintf(" · 🏆 %s", a.Title)
		}
		m.refresh()
	}
}

func (m *Model) reviveSelected() {
	st := m.selected()
	if st == nil {
		return
	}

	revived, err := m.service.Revive(st.Plant.ID)
	switch {
	case errors.Is(err, repository.ErrPlantNotWithering):
		m.status = fmt.Sprintf("%s doesn't need revival", st.Plant.Name)
	case errors.Is(err, repository.ErrPlantDead):
		m.errMsg = fmt.Sprintf("%s is past saving; press R to restart from seed", st.Plant.Name)
	case errors.Is(err, repository.ErrInsufficientRainDrops):
		m.errMsg = err.Error()
	case err != nil:
		m.errMsg = err.Error()
	default:
		m.status = fmt.Sprintf("🌤  Revived %s (%d 💧 left)", revived.Name, revived.RainDrops)
		m.refresh()
	}
}

func (m Model) updateConfirmRestart(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		restarted, err := m.service.Restart(m.confirmPlantID)
		if err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = fmt.Sprintf("🌰 %s starts over from seed", restarted.Name)
			m.refresh()
		}
		m.state = stateGarden
	case "n", "N", "esc", "q":
		m.state = stateGarden
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = stateGarden
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		difficulty, err := models.ParseDifficulty(m.plantForm.Difficulty)
		if err != nil {
			m.errMsg = err.Error()
			m.state = stateGarden
			return m, cmd
		}
		frequency, err := models.ParseFrequency(m.plantForm.Frequency)
		if err != nil {
			m.errMsg = err.Error()
			m.state = stateGarden
			return m, cmd
		}

		plant, err := m.service.CreatePlant(repository.CreateParams{
			Name:        m.plantForm.Name,
			Description: m.plantForm.Description,
			Difficulty:  difficulty,
			Frequency:   frequency,
		})
		if err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = fmt.Sprintf("🌰 Planted %s", plant.Name)
			m.refresh()
		}
		m.state = stateGarden

	case huh.StateAborted:
		m.state = stateGarden
	}

	return m, cmd
}

func newPlantForm(f *plantForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&f.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&f.Description),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(
					huh.NewOption("Easy (grows fast)", string(models.DifficultyEasy)),
					huh.NewOption("Medium", string(models.DifficultyMedium)),
					huh.NewOption("Hard (grows slow)", string(models.DifficultyHard)),
				).
				Value(&f.Difficulty),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(models.FrequencyDaily)),
					huh.NewOption("Three times a week", string(models.FrequencyThreeTimesWeekly)),
					huh.NewOption("Twice a week", string(models.FrequencyTwiceWeekly)),
					huh.NewOption("Weekly", string(models.FrequencyWeekly)),
				).
				Value(&f.Frequency),
		),
	)
}
