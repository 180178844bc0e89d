package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/apply-agent/internal/discovery"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Search for fresh job postings",
	Long:  "Search each supported career site for postings published in the last day and record the new ones, skipping URLs already seen.",
	RunE:  runDiscover,
}

var (
	discoverQuery    string
	discoverLocation string
)

func init() {
	discoverCmd.Flags().StringVarP(&discoverQuery, "query", "q", discovery.DefaultQuery, "Job title to search for")
	discoverCmd.Flags().StringVarP(&discoverLocation, "location", "l", discovery.DefaultLocation, "Location to search in")

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	loop := discovery.NewLoop(store, os.Stdout)
	loop.Query = discoverQuery
	loop.Location = discoverLocation
	loop.Dedupe = discovery.NewDeduplicator(store, discoverQuery, discoverLocation)

	total, err := loop.Run(ctx)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Discovery complete: %d new jobs recorded\n", total)
	return nil
}
