package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/book-expert/pdf-tools/internal/mergepdf"
)

var (
	mergeOutput string
	mergeDir    string
)

var mergeCmd = &cobra.Command{
	Use:   "merge [pdf...]",
	Short: "Merge PDF files into a single document",
	Long: `Merge concatenates the given PDF files, in order, into one output PDF.
With --dir, every PDF under the directory is collected (recursive, sorted
by path) and merged ahead of any explicitly listed files.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(
		&mergeOutput,
		"output",
		"o",
		"merged.pdf",
		"Output PDF path",
	)
	mergeCmd.Flags().StringVar(
		&mergeDir,
		"dir",
		"",
		"Merge every PDF found under this directory",
	)

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	inputs := args

	if mergeDir != "" {
		discovered, discoverErr := mergepdf.DiscoverPDFs(mergeDir)
		if discoverErr != nil {
			return discoverErr
		}

		inputs = append(discovered, args...)
	}

	mergeErr := mergepdf.Merge(cmd.Context(), inputs, mergeOutput, log)
	if mergeErr != nil {
		return mergeErr
	}

	fmt.Fprintf(
		cmd.OutOrStdout(),
		"Merged %d file(s) into %s\n",
		len(inputs),
		mergeOutput,
	)

	return nil
}
