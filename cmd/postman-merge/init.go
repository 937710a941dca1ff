package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackcoderx/postman-merge/pkg/config"
	"github.com/blackcoderx/postman-merge/pkg/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .postman-merge folder with the default config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}

		created, err := config.InitializeFolder(wd)
		if err != nil {
			return err
		}

		configPath := filepath.Join(config.FolderName, config.FileName)
		if !created {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s already exists\n", report.SkipStyle.Render(report.SkipGlyph), configPath)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", report.SuccessStyle.Render(report.SuccessGlyph), configPath)
		return nil
	},
}
