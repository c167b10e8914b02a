package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wordvault/internal/app"
)

var (
	home       string
	configPath string
	backend    string
	verbose    bool
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "wordvault",
		Short: "Manage named word collections with duplicate prevention",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".wordvault")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if configPath == "" {
				configPath = filepath.Join(home, "config.yaml")
			}

			cfg, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			if backend != "" {
				cfg.Backend = backend
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}

			wire, err := app.NewWire(cfg)
			if err != nil {
				return err
			}

			appCtx = app.New(wire.Collections)
			appCtx.Collections.Load(cmd.Context())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.wordvault)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: file, redis or memory (default from config)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(createCmd(), addCmd(), removeCmd(), listCmd(), wordsCmd(), countCmd())
	return root.Execute()
}
