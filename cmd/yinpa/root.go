package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yinpa-bot/yinpa/internal/config"
)

type rootOptions struct {
	store   string
	verbose bool
	userID  int64
	envFile string

	app *app
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "yinpa",
		Short:         "yinpa game engine",
		Long:          `yinpa keeps per-user game state: anatomy, HP, persistence and items, and resolves the actions users take on each other.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoStore] == "true" {
				return nil
			}
			return opts.open(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.store, "store", "", "storage backend: redis or sqlite (overrides YINPA_STORE)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	flags.Int64VarP(&opts.userID, "user", "u", 0, "id of the acting user")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	cmd.AddCommand(
		newJoinCmd(opts),
		newInfoCmd(opts),
		newLeaveCmd(opts),
		newRenameCmd(opts),
		newRankCmd(opts),
		newActCmd(opts),
		newSoloCmd(opts),
		newSnatchCmd(opts),
		newRollCmd(opts),
		newBuyCmd(opts),
		newUseCmd(opts),
		newCatalogCmd(),
		newCheckStoreCmd(opts),
	)

	return cmd, opts
}

// Close releases whatever the last command opened
func (o *rootOptions) Close() error {
	if o.app == nil {
		return nil
	}
	err := o.app.Close()
	o.app = nil
	return err
}

// annotationNoStore marks commands that run without opening storage
const annotationNoStore = "no-store"

func (o *rootOptions) open(cmd *cobra.Command) error {
	if o.envFile != "" {
		// a missing file is fine; the environment may already be set
		if err := godotenv.Load(o.envFile); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.store != "" {
		cfg.Storage.Backend = o.store
		if err := cfg.Storage.Validate(); err != nil {
			return err
		}
	}

	level := slog.LevelInfo
	if o.verbose || cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	o.app, err = newApp(cmd.Context(), cfg)
	return err
}

func (o *rootOptions) requireUser() (int64, error) {
	if o.userID == 0 {
		return 0, errMissingUser
	}
	return o.userID, nil
}
