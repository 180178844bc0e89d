package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List discovered jobs",
	Long:  "List recently discovered jobs, optionally filtered by source platform.",
	RunE:  runJobs,
}

var (
	jobsSource string
	jobsLimit  int
)

func init() {
	jobsCmd.Flags().StringVarP(&jobsSource, "source", "s", "", "Filter by source platform (e.g. jobs.lever.co)")
	jobsCmd.Flags().IntVarP(&jobsLimit, "limit", "n", 50, "Maximum number of jobs to list")

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	jobs, err := store.ListJobs(ctx, jobsSource, jobsLimit)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Fprintln(os.Stdout, "No jobs found.")
		return nil
	}

	for _, j := range jobs {
		fmt.Fprintf(os.Stdout, "%s  %-28s %s\n", j.CreatedAt.Format("2006-01-02"), j.Source, j.URL)
	}
	fmt.Fprintf(os.Stdout, "%d jobs\n", len(jobs))
	return nil
}
