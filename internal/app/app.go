package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/telepilot/telepilot/internal/markup"
	"github.com/telepilot/telepilot/internal/ui"
)

// Demo variant names, re-exported for configuration validation.
const (
	VariantShelves = ui.VariantShelves
	VariantZones   = ui.VariantZones
)

// Config describes user-provided application options.
type Config struct {
	Variant    string
	LayoutPath string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	layout, err := loadLayout(cfg.LayoutPath)
	if err != nil {
		return err
	}
	model, err := ui.NewModel(cfg.Variant, layout, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func loadLayout(path string) (*markup.Node, error) {
	if path == "" {
		return markup.Parse([]byte(ui.DefaultLayout()))
	}
	node, err := markup.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return node, nil
}
