package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, name string) *cobra.Command {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"apply", "discover", "queue", "jobs", "migrate"} {
		findCommand(t, name)
	}
}

func TestQueueRequiredFlags(t *testing.T) {
	queue := findCommand(t, "queue")

	for _, flag := range []string{"email", "job-url"} {
		f := queue.Flags().Lookup(flag)
		require.NotNil(t, f, "flag %q", flag)
		assert.Contains(t, f.Annotations, cobra.BashCompOneRequiredFlag)
	}
}

func TestDiscoverFlagDefaults(t *testing.T) {
	discover := findCommand(t, "discover")

	query := discover.Flags().Lookup("query")
	require.NotNil(t, query)
	assert.Equal(t, "software engineer", query.DefValue)

	location := discover.Flags().Lookup("location")
	require.NotNil(t, location)
	assert.Equal(t, "Remote", location.DefValue)
}

func TestJobsFlagDefaults(t *testing.T) {
	jobs := findCommand(t, "jobs")

	limit := jobs.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "50", limit.DefValue)
}
