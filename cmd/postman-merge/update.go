package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// repoSlug is the GitHub repository releases are published to.
const repoSlug = "blackcoderx/postman-merge"

var assumeYes bool

func init() {
	updateCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "update without asking for confirmation")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update postman-merge to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if version == "dev" {
			fmt.Fprintln(out, "You are running a development build of postman-merge. Update is not supported.")
			return nil
		}

		current, err := semver.ParseTolerant(version)
		if err != nil {
			return fmt.Errorf("failed to parse current version '%s': %w", version, err)
		}

		latest, found, err := selfupdate.DetectLatest(repoSlug)
		if err != nil {
			return fmt.Errorf("failed to detect latest release: %w", err)
		}

		if !found || latest.Version.LTE(current) {
			fmt.Fprintf(out, "postman-merge %s is the latest version\n", current)
			return nil
		}

		if !assumeYes {
			fmt.Fprintf(out, "Update from %s to %s? (y/n): ", current, latest.Version)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				return nil
			}
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("could not locate executable path: %w", err)
		}

		logger.Debug("updating binary", zap.String("asset", latest.AssetURL), zap.String("path", exe))
		if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
			return fmt.Errorf("failed to update binary: %w", err)
		}

		fmt.Fprintln(out, "Successfully updated to version", latest.Version)
		return nil
	},
}
