package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fweber/routine/internal/alarm"
	"github.com/fweber/routine/internal/app"
	"github.com/fweber/routine/internal/catalog"
	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/internal/store"
)

func main() {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	s, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	ctx := context.Background()
	if err := catalog.New(s).Seed(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed catalog: %v\n", err)
		os.Exit(1)
	}

	sound, err := s.GetSetting(ctx, catalog.SettingAlarmSound, catalog.DefaultAlarmSound)
	if err != nil {
		sound = catalog.DefaultAlarmSound
	}
	bell := alarm.NewBell(sound, os.Stdout)

	p := tea.NewProgram(app.New(s, cfg, bell), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
