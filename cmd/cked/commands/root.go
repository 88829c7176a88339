package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pthm/cked"
	"github.com/spf13/cobra"
)

var (
	profilePath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "cked",
	Short: "cked renders CKEditor placements from YAML profiles",
	Long: `cked prints the markup and script that create a CKEditor instance,
using the base path, configuration and event handlers of a YAML profile.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command. It is called by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", "", "Path to the YAML profile")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

// loadProfile reads the profile named by --profile, or returns an empty one.
func loadProfile() (*cked.Profile, error) {
	if profilePath == "" {
		return &cked.Profile{}, nil
	}
	return cked.LoadProfile(profilePath)
}
