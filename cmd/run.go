package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ducnm/elementary/internal/app"
	"github.com/ducnm/elementary/internal/config"
	"github.com/ducnm/elementary/internal/history"
	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lang := cfg.Lang()
	if l, _ := cmd.Flags().GetString("lang"); l != "" {
		lang = i18n.ParseLang(l)
	}

	// A broken database downgrades to an in-memory history so the app
	// still runs; scores just won't survive the session.
	var hist history.Store
	st, err := openStore(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "history unavailable:", err)
		hist = history.NewMemoryStore()
	} else {
		defer st.Close()
		hist = st.History()
	}

	return app.Run(app.Options{
		Translator: i18n.New(lang),
		History:    hist,
		Config:     cfg,
	})
}

func loadConfig() (config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
