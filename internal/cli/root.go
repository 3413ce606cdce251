// Package cli defines Cobra command definitions for the yume CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yume-app/yume/internal/tui"
	"github.com/yume-app/yume/internal/tui/app"
)

var (
	dataDir string
	version = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "yume",
	Short: "Guided breathing and grounding in your terminal",
	Long: `Yume paces breathing sessions through inhale, hold, and exhale
phases, walks you through the 5-4-3-2-1 grounding exercise, and shows a
mantra after every completed breathing cycle.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch TUI if TTY, show help otherwise
		if !tui.IsTTY() {
			return cmd.Help()
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		tuiApp := app.New(app.Options{
			Config:   e.cfg,
			Book:     e.book(),
			Prefs:    e.store,
			Reporter: e.reporter,
		})
		err = tui.Run(tuiApp)
		e.warn(tuiApp.Controller().Err())
		return err
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "Data directory (default ~/.yume)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(breatheCmd)
	rootCmd.AddCommand(groundCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(mantraCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(prefsCmd)
}
