package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"termsearch/internal/config"
)

// githubRepoSlug is the release repository used when the configuration
// does not name one.
var githubRepoSlug = config.DefaultUpdateRepository

var errDevelopmentVersion = errors.New("cannot self-update a development version")

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update termsearch to the latest version",
		Long: `Checks for the latest release of termsearch on GitHub and,
if a newer version is available, replaces the running executable with it.

The release repository defaults to ` + githubRepoSlug + ` and can be changed with
update.repository in the configuration file.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

// updateRepository returns the configured release repository.
func updateRepository() string {
	cfg, err := config.LoadConfig()
	if err != nil || cfg.Update.Repository == "" {
		return githubRepoSlug
	}
	return cfg.Update.Repository
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return errDevelopmentVersion
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}

	repo := updateRepository()
	fmt.Printf("Current version: %s\n", currentVersion)
	fmt.Printf("Checking for updates in %s...\n", repo)

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", repo)
	}

	if latest.LessOrEqual(currentVersion) {
		fmt.Printf("Current version (%s) is the latest.\n", currentVersion)
		return nil
	}

	fmt.Printf("Found newer version: %s (published at %s)\n", latest.Version(), latest.PublishedAt)

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Printf("Updating %s to %s...\n", exe, latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}
