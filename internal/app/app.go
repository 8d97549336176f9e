package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/recoverops/dca-console/internal/api"
	"github.com/recoverops/dca-console/internal/config"
	"github.com/recoverops/dca-console/internal/keymap"
	"github.com/recoverops/dca-console/internal/poll"
	"github.com/recoverops/dca-console/internal/state"
	"github.com/recoverops/dca-console/internal/theme"
	root "github.com/recoverops/dca-console/internal/ui/root"
)

// Options control how the application is executed.
type Options struct {
	ConfigPath string
	Theme      string
	BaseURL    string
}

// Run loads configuration, prepares state, and starts the Bubble Tea
// program alongside the refresh poller.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	palette := theme.New(theme.Options{Override: opts.Theme, Preferred: cfg.Theme})
	store := state.NewStore()
	defer store.Close()

	client := api.NewClient(api.Options{
		BaseURL: config.ResolveBaseURL(opts.BaseURL, cfg),
		Timeout: cfg.RequestTimeout(),
	})
	poller := poll.New(client, store, poll.DefaultInterval)

	km := keymap.DefaultGlobal()
	rootModel := root.New(store, root.Options{
		Theme:     palette,
		KeyMap:    &km,
		Refresher: poller,
	})

	prog := tea.NewProgram(rootModel, tea.WithAltScreen())

	runnerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(runnerCtx)
	group.Go(func() error {
		err := poller.Run(groupCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			prog.Quit()
		}
		return err
	})
	group.Go(func() error {
		defer cancel()
		_, err := prog.Run()
		return err
	})

	if err := group.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
