package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/book-expert/pdf-tools/internal/compress"
)

var (
	compressOutput  string
	compressQuality string
)

var compressCmd = &cobra.Command{
	Use:   "compress <input.pdf>",
	Short: "Compress a PDF with Ghostscript",
	Long: `Compress re-encodes a PDF through Ghostscript's pdfwrite device using a
named quality preset: screen, ebook, printer, or prepress. Requires a
system-installed Ghostscript (gs) binary.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

func init() {
	compressCmd.Flags().StringVarP(
		&compressOutput,
		"output",
		"o",
		"",
		"Output PDF path (default: <input>_compressed.pdf)",
	)
	compressCmd.Flags().StringVar(
		&compressQuality,
		"quality",
		"",
		"Quality preset: screen, ebook, printer, or prepress (default: printer)",
	)

	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	quality := firstNonEmpty(compressQuality, cfg.Settings.CompressQuality)

	compressor := compress.New(log)

	result, err := compressor.Compress(cmd.Context(), args[0], compressOutput, quality)
	if err != nil {
		return err
	}

	fmt.Fprintf(
		cmd.OutOrStdout(),
		"Compressed %s: %d -> %d bytes (%.1f%% smaller)\n",
		result.OutputPath,
		result.OriginalBytes,
		result.CompressedBytes,
		result.Ratio(),
	)

	return nil
}
