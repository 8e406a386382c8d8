package main

import (
	"fmt"

	"github.com/jeebeez/jeebeecard/internal/config"
	"github.com/jeebeez/jeebeecard/internal/db"
	"github.com/jeebeez/jeebeecard/internal/logger"
	"github.com/jeebeez/jeebeecard/internal/repository"
	"github.com/jeebeez/jeebeecard/internal/repository/kvstore"
	"github.com/spf13/cobra"
)

// storeOpener opens the key-value store named by the configuration.
type storeOpener func(cfg config.Config) (repository.Store, error)

func openStore(cfg config.Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return database, nil
	case config.StorePostgres:
		gs, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return gs, nil
	case config.StoreMemory:
		return db.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// app is the state shared by every subcommand once the root command has
// loaded configuration and opened the store.
type app struct {
	cfg   config.Config
	log   *logger.Logger
	store repository.Store

	flashcards repository.FlashcardRepository
	favorites  repository.FavoriteRepository
	levels     repository.LevelRepository
}

func newRootCmd(open storeOpener) *cobra.Command {
	a := &app{}
	var (
		logLevel string
		store    string
	)

	cmd := &cobra.Command{
		Use:           "jeebeecard",
		Short:         "Vocabulary flashcards by level",
		Long:          `JeeBeeCard keeps a deck of vocabulary flashcards, a list of marked words and your own study levels.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("store") {
				cfg.StoreDriver = store
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			log := logger.New(
				logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithColors(true),
			)
			logger.SetDefault(log)
			cmd.SetContext(logger.NewContext(cmd.Context(), log))

			log.Debug("store_driver=%s", cfg.StoreDriver)
			log.Debug("log_level=%s", cfg.LogLevel)

			s, err := open(cfg)
			if err != nil {
				return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
			}

			a.cfg = cfg
			a.log = log
			a.store = s
			a.flashcards = kvstore.NewFlashcardRepository(s)
			a.favorites = kvstore.NewFavoriteRepository(s)
			a.levels = kvstore.NewLevelRepository(s)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.store == nil {
				return nil
			}
			a.log.Debug("closing store")
			return a.store.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR); overrides LOG_LEVEL")
	cmd.PersistentFlags().StringVar(&store, "store", "", "Store driver (sqlite, postgres, memory); overrides STORE_DRIVER")

	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newLevelsCmd(a))
	cmd.AddCommand(newCardsCmd(a))
	cmd.AddCommand(newFavoritesCmd(a))
	cmd.AddCommand(newExportCmd(a))

	return cmd
}
