package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvogel/trackwork/internal/core/config"
	"github.com/mvogel/trackwork/internal/core/models"
	"github.com/mvogel/trackwork/internal/core/report"
	"github.com/mvogel/trackwork/internal/core/store"
)

// FileEnvVar names the environment variable consulted when --file is not
// given.
const FileEnvVar = "TRACK_WORK_FILE"

var (
	filePath    string
	debugFlag   bool
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trackwork",
	Short: "A simple work tracker",
	Long: `trackwork - record and report your working hours

Sessions are stored as plain CSV, one row per tracked interval. Start one
with 'now', close it with 'stop', or keep 'live' running in a terminal and
hit Ctrl+C when you are done.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "",
		fmt.Sprintf("Storage file (default: $%s, then the config file)", FileEnvVar))
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"Print resolved options and raw records")
}

// resolveFile picks the storage path: flag, then environment, then config
// file (which falls back to ~/.config/trackwork/track.csv).
func resolveFile(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(FileEnvVar); env != "" {
		return env, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.DataFile == "" {
		return "", fmt.Errorf("no storage file configured; use --file or $%s", FileEnvVar)
	}
	return cfg.DataFile, nil
}

// openStore builds the store for the resolved path.
func openStore() (*store.Store, error) {
	path, err := resolveFile(filePath)
	if err != nil {
		return nil, err
	}
	if debugFlag {
		fmt.Printf("options: file=%s debug=%v\n", path, debugFlag)
	}
	return store.New(path, debugFlag), nil
}

// warnSkipped surfaces rows the loader had to drop. Loading never fails on
// bad data, but it should not lose it silently either.
func warnSkipped(s *store.Store) {
	if s.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "warning: skipped %d malformed record(s) in %s\n", s.Skipped, s.Path)
	}
}

// showReport prints the default report (current month, compressed) used
// after every state change.
func showReport(sessions []models.Session) {
	report.Render(os.Stdout, sessions, report.Scope{}, false, time.Now())
}
