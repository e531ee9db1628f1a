package cmd

import (
	"fmt"
	"os"

	"github.com/clipdeck/clipdeck/internal/clipboard"
	"github.com/clipdeck/clipdeck/internal/common"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/copystate"
	"github.com/clipdeck/clipdeck/internal/storage"
	"github.com/clipdeck/clipdeck/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	quiet   bool
	useJSON bool

	// Shared resources
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clipdeck",
	Short: "A local manager for an ordered deck of text snippets",
	Long: `Clipdeck keeps an ordered collection of text snippets that you can
add to, edit, reorder, and copy to the system clipboard. The collection
persists across restarts.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/clipdeck/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimize output")
	rootCmd.PersistentFlags().BoolVar(&useJSON, "json", false, "output in JSON format")

	// Add commands
	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newEditCmd(),
		newRmCmd(),
		newMoveCmd(),
		newCopyCmd(),
		versionCmd,
	)
}

func setupLogger() {
	var err error
	var cfg zap.Config

	switch {
	case verbose:
		cfg = zap.NewDevelopmentConfig()
	case quiet:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.OutputPaths = []string{"stderr"}

	logger, err = cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
}

// session wires the config, storage backend, store, and copy-state tracker
// together for the lifetime of one command.
type session struct {
	cfg     *config.Config
	backend *storage.BoltStorage
	store   *store.Store
	tracker *copystate.Tracker
}

// openSession loads the configuration, opens the persistence backend, and
// loads the store from its snapshot.
func openSession() (*session, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// The flag-driven logger from setupLogger is a bootstrap; once the
	// config is loaded its log settings take over unless a verbosity flag
	// was given.
	if !verbose && !quiet {
		if configured, err := common.NewLogger(cfg); err == nil {
			logger = configured
		}
	}

	backend, err := storage.NewBoltStorage(storage.StorageConfig{
		DBPath: cfg.Storage.DBPath,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	var st *store.Store
	tracker := copystate.NewTracker(copystate.TrackerConfig{
		Expiry:    cfg.CopyExpiryDuration(),
		Clipboard: clipboard.NewAtottoClipboard(),
		Lookup: func(id string) (string, bool) {
			item, ok := st.Get(id)
			return item.Text, ok
		},
		Logger: logger,
	})
	st = store.New(store.Config{
		Backend: backend,
		Evictor: tracker,
		Logger:  logger,
	})

	if err := st.Load(); err != nil {
		backend.Close()
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	return &session{cfg: cfg, backend: backend, store: st, tracker: tracker}, nil
}

// Close releases the session's storage backend.
func (s *session) Close() {
	if err := s.backend.Close(); err != nil {
		logger.Warn("Failed to close storage", zap.Error(err))
	}
}
