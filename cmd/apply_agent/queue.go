package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/apply-agent/internal/db"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Queue an application for a job",
	Long:  "Queue a pending application linking a profile to a discovered job. A profile can apply to each job at most once.",
	RunE:  runQueue,
}

var (
	queueEmail  string
	queueJobURL string
)

func init() {
	queueCmd.Flags().StringVarP(&queueEmail, "email", "e", "", "Email of the applicant profile (required)")
	queueCmd.Flags().StringVarP(&queueJobURL, "job-url", "j", "", "URL of the discovered job (required)")

	queueCmd.MarkFlagRequired("email")
	queueCmd.MarkFlagRequired("job-url")

	rootCmd.AddCommand(queueCmd)
}

func runQueue(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	profile, err := store.GetProfileByEmail(ctx, queueEmail)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no profile found for %s", queueEmail)
	}

	job, err := store.GetJobByURL(ctx, queueJobURL)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("no job found for %s", queueJobURL)
	}

	app, err := store.CreateApplication(ctx, job.ID, profile.ID)
	if err != nil {
		if errors.Is(err, db.ErrAlreadyApplied) {
			fmt.Fprintf(os.Stdout, "Profile %s has already applied to this job\n", queueEmail)
			return nil
		}
		return err
	}

	fmt.Fprintf(os.Stdout, "Queued application %s (%s)\n", app.ID, app.Status)
	return nil
}
