package app

import (
	"context"
	"fmt"

	"github.com/rosedew/blush/internal/catalog"
	"github.com/rosedew/blush/internal/config"
	"github.com/rosedew/blush/internal/persist"
	"github.com/rosedew/blush/internal/prefs"
	"github.com/rosedew/blush/internal/storage"
	"github.com/rosedew/blush/internal/store"
	"github.com/rosedew/blush/internal/ui"
)

// Options configure the Blush application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/blush/prefs.toml
	DataDir    string // empty uses the configured data dir
}

// Run boots the Blush TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	client, err := catalog.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	dataDir := cfg.DataDir
	if opts.DataDir != "" {
		dataDir = opts.DataDir
	}
	kv, err := storage.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open device storage: %w", err)
	}

	st := store.New()
	sync := persist.New(st, kv)

	// Hydrate persisted state before the UI renders; write-back only starts
	// once hydration has finished.
	sync.Hydrate(ctx)
	defer sync.Close()

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     st,
		Sync:      sync,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
