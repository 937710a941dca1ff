package main

import (
	"fmt"
	"io"

	"github.com/blackcoderx/postman-merge/pkg/config"
	"github.com/blackcoderx/postman-merge/pkg/merger"
	"github.com/blackcoderx/postman-merge/pkg/report"
	"github.com/blackcoderx/postman-merge/pkg/sections"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(newSetCommand("common", "Add the Common folder (provinces and towns) to the collections"))
	rootCmd.AddCommand(newSetCommand("modules", "Add the Transacciones, Valoraciones and Mensajes folders to the collections"))
	rootCmd.AddCommand(applyCmd)
}

// newSetCommand builds a command that merges one built-in set.
func newSetCommand(set, short string) *cobra.Command {
	return &cobra.Command{
		Use:   set,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd.OutOrStdout(), []string{set})
		},
	}
}

var applyCmd = &cobra.Command{
	Use:   "apply <set>...",
	Short: "Add the folders of one or more section sets to the collections",
	Long: `Merge the named section sets, in argument order, into every target collection.

Folders whose name already exists in a collection are skipped. Run
"postman-merge sets" to see the available sets.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge(cmd.OutOrStdout(), args)
	},
}

// runMerge merges the named sets into the configured targets. Per-file
// failures are only reported; the returned error covers setup problems.
func runMerge(out io.Writer, setNames []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	paths, err := cfg.ResolveTargets(targets)
	if err != nil {
		return err
	}

	candidates, err := sections.LoadAll(setNames...)
	if err != nil {
		return err
	}

	printer := report.NewPrinter(out)
	m := merger.New(
		merger.WithLogger(logger),
		merger.WithIndent(cfg.IndentString()),
		merger.WithDryRun(dryRun),
		merger.WithEventCallback(printer.Handle),
	)

	if _, err := m.Run(paths, candidates); err != nil {
		return fmt.Errorf("merge aborted: %w", err)
	}

	return nil
}
