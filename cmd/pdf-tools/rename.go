package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/book-expert/pdf-tools/internal/rename"
)

var renameDryRun bool

var renameCmd = &cobra.Command{
	Use:   "rename <directory>",
	Short: "Normalize date-stamped PDF file names in a directory",
	Long: `Rename rewrites PDFs named with a "YYYY-MM-DD__YYYY-MM-DD" date range to
the "YYYY-MM-DD ~ YYYY-MM-DD.pdf" form. Files without a date range are
left alone. Use --dry-run to preview the changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().BoolVar(
		&renameDryRun,
		"dry-run",
		false,
		"Print planned renames without touching any file",
	)

	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	renames, err := rename.Run(args[0], renameDryRun, log)
	if err != nil {
		return err
	}

	verb := "Renamed"
	if renameDryRun {
		verb = "Would rename"
	}

	for _, entry := range renames {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", verb, entry.From, entry.To)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) affected\n", len(renames))

	return nil
}
