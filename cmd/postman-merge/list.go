package main

import (
	"errors"
	"fmt"

	"github.com/blackcoderx/postman-merge/pkg/config"
	"github.com/blackcoderx/postman-merge/pkg/merger"
	"github.com/blackcoderx/postman-merge/pkg/report"
	"github.com/blackcoderx/postman-merge/pkg/sections"
	"github.com/blackcoderx/postman-merge/pkg/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const renderWidth = 100

func init() {
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(sectionsCmd)
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the built-in section sets and their requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		md, err := setsListing()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.Render(md, renderWidth))
		return nil
	},
}

func setsListing() (string, error) {
	var sets []*sections.Set
	for _, name := range sections.Names() {
		set, err := sections.Load(name)
		if err != nil {
			return "", err
		}
		sets = append(sets, set)
	}
	return report.SetsMarkdown(sets)
}

var sectionsCmd = &cobra.Command{
	Use:   "sections [file...]",
	Short: "List the top-level sections of collection files",
	Long: `List the top-level sections (folders) of the given collection files, or of
the configured targets when no file is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				return err
			}
			if paths, err = cfg.ResolveTargets(targets); err != nil {
				return err
			}
		}

		printer := report.NewPrinter(cmd.ErrOrStderr())
		for _, path := range paths {
			doc, _, err := storage.LoadCollection(path)
			if err != nil {
				ev := merger.Event{Type: merger.EventError, Path: path, Err: err}
				if errors.Is(err, storage.ErrNotFound) {
					ev.Type = merger.EventNotFound
				}
				printer.Handle(ev)
				continue
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Render(report.CollectionMarkdown(path, doc), renderWidth))
		}
		return nil
	},
}
