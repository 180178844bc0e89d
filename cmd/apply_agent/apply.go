package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/apply-agent/internal/engine"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Process the oldest pending application",
	Long:  "Claim the oldest pending application, fill the matching career-site form through a headless browser, and record a single terminal status.",
	RunE:  runApply,
}

var applyVerbose bool

func init() {
	applyCmd.Flags().BoolVarP(&applyVerbose, "verbose", "v", false, "Log browser interaction details")

	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	cfg.Verbose = applyVerbose

	return engine.New(store, cfg, os.Stdout).Run(ctx)
}
