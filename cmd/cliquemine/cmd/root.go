package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquemine/config"
	"github.com/katalvlaran/cliquemine/internal/apperr"
	"github.com/katalvlaran/cliquemine/internal/clog"
)

var (
	verbose    bool
	configPath string

	logger clog.Logger
	cfg    *config.Config
)

// rootCmd is the base command; mine and convert register themselves onto
// it from their own files' init().
var rootCmd = &cobra.Command{
	Use:   "cliquemine",
	Short: "Mine relaxed-clique subgraphs from large graphs",
	Long: `cliquemine mines k-plex, k-defective clique, gamma-quasi-clique, and
gamma-pseudo-clique subgraphs from a simple undirected graph, using a
degeneracy-ordered ego-network refinement engine.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := clog.LevelInfo
		if verbose {
			level = clog.LevelDebug
		}
		logger = clog.New(level, os.Stdout)

		loaded, err := config.Load(configPath)
		if err != nil {
			return apperr.Wrap(apperr.CodeConfigError, "loading configuration", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command; a non-nil error prints "ERROR: <message>"
// to stderr and exits 1, per this CLI's fatal-error contract.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose diagnostic output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a cliquemine config file (optional)")
}

// GetLogger returns the logger configured by PersistentPreRunE.
func GetLogger() clog.Logger {
	return logger
}

// GetConfig returns the configuration loaded by PersistentPreRunE.
func GetConfig() *config.Config {
	return cfg
}

// BinName returns the base name of the running executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
