// Package tui is the interactive garden view: a bubbletea program that
// lists plants with their live health, waters them, and walks through
// revival and restart flows.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timebloom/internal/repository"
	"github.com/julianstephens/timebloom/internal/storage"
)

type sessionState int

const (
	stateGarden sessionState = iota
	stateAdding
	stateConfirmRestart
)

// plantForm backs the huh add-plant form.
type plantForm struct {
	Name        string
	Description string
	Difficulty  string
	Frequency   string
}

type Model struct {
	store   storage.Provider
	service *repository.Service

	state        sessionState
	statuses     []repository.PlantStatus
	cursor       int
	showArchived bool

	form      *huh.Form
	plantForm *plantForm

	confirmPlantID   string
	confirmPlantName string

	keys     KeyMap
	help     help.Model
	status   string
	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, service *repository.Service) Model {
	m := Model{
		store:   store,
		service: service,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads the garden snapshot and clamps the cursor.
func (m *Model) refresh() {
	statuses, err := m.service.Garden(m.showArchived)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statuses = statuses
	if m.cursor >= len(m.statuses) {
		m.cursor = len(m.statuses) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() *repository.PlantStatus {
	if len(m.statuses) == 0 || m.cursor >= len(m.statuses) {
		return nil
	}
	return &m.statuses[m.cursor]
}
