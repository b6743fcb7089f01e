package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DCX-dev/stonepack/internal/github"
	"github.com/DCX-dev/stonepack/internal/output"
)

var fetchPlatform string

func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Locate the newest build artifact on GitHub Actions",
		Long: `Fetch queries the repository's GitHub Actions runs for the most recent
successful build and reports the matching artifact.

The artifact content itself cannot be downloaded here: the GitHub API
requires authentication for artifact downloads, so fetch prints the run's
web URL and the artifact details for a manual download instead.`,
		Args: cobra.NoArgs,
		RunE: runFetch,
	}

	cmd.Flags().StringVar(&fetchPlatform, "platform", "Windows", "Substring that must appear in the artifact name")

	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	logger := output.DefaultLogger
	client := github.NewClient(github.WithOwnerRepo(repoOwner, repoName))

	logger.Info("Checking GitHub Actions for %s executable...", fetchPlatform)

	discovery, err := client.ResolveLatest(cmd.Context(), fetchPlatform)
	if err != nil {
		logger.Error("%v", err)
		logger.Info("Manual steps:")
		logger.Info("  Go to: %s", client.RepoURL())
		logger.Info("  Click the latest successful run")
		logger.Info("  Download the %s artifact", fetchPlatform)
		return fmt.Errorf("artifact discovery failed")
	}

	run := discovery.Run
	artifact := discovery.Artifact

	logger.Success("Found workflow run: %s", run.Name)
	logger.Info("Created: %s", run.CreatedAt.Format(time.RFC3339))
	logger.Info("URL: %s", run.HTMLURL)
	logger.Println("")
	logger.Success("Found %s executable artifact!", fetchPlatform)
	logger.Info("  Name: %s", artifact.Name)
	logger.Info("  Size: %.1f MB", float64(artifact.SizeInBytes)/1024/1024)
	logger.Println("")
	logger.Warn("GitHub requires authentication to download artifacts automatically.")
	logger.Println("")
	logger.Info("Download manually:")
	logger.Info("  1. Go to: %s", run.HTMLURL)
	logger.Info("  2. Scroll to 'Artifacts' at the bottom")
	logger.Info("  3. Click '%s'", artifact.Name)
	logger.Info("  4. Extract the ZIP to get the executable")

	return nil
}
