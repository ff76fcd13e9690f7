package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/book-expert/pdf-tools/internal/convert"
)

var (
	pdfToImageOutput string
	pdfToImageDPI    int
	pdfToImageFormat string
)

var pdfToImageCmd = &cobra.Command{
	Use:   "pdf-to-image <pdf...>",
	Short: "Rasterize PDFs into per-page image files",
	Long: `Pdf-to-image renders every page of each input PDF at the requested DPI
and writes the images into a subdirectory named after the PDF, created
under the output root. A single-page PDF produces <stem>.<ext>; a
multi-page PDF produces <stem>_page_<NNN>.<ext> in page order.

Files are processed sequentially; a failing PDF is reported and skipped
while the rest of the batch continues, and the command exits non-zero if
any file failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPDFToImage,
}

func init() {
	pdfToImageCmd.Flags().StringVarP(
		&pdfToImageOutput,
		"output",
		"o",
		"",
		"Output root directory (default: current directory)",
	)
	pdfToImageCmd.Flags().IntVar(
		&pdfToImageDPI,
		"dpi",
		0,
		"Rasterization resolution in DPI (default: 200)",
	)
	pdfToImageCmd.Flags().StringVar(
		&pdfToImageFormat,
		"format",
		"",
		"Output image format: png or jpg (default: png)",
	)

	rootCmd.AddCommand(pdfToImageCmd)
}

func runPDFToImage(cmd *cobra.Command, args []string) error {
	converter := convert.New(&convert.Options{
		DPI:    firstPositive(pdfToImageDPI, cfg.Settings.DPI),
		Format: firstNonEmpty(pdfToImageFormat, cfg.Settings.ImageFormat),
	}, log)

	outputRoot := firstNonEmpty(pdfToImageOutput, cfg.Paths.OutputDir)

	results, batchErr := converter.PDFsToImages(cmd.Context(), args, outputRoot)
	if batchErr != nil {
		return batchErr
	}

	failed := 0

	for _, result := range results {
		if result.Failed() {
			failed++

			fmt.Fprintf(
				cmd.ErrOrStderr(),
				"failed: %s: %v\n",
				result.Input,
				result.Err,
			)
		} else {
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"converted: %s (%d page(s))\n",
				result.Input,
				len(result.Outputs),
			)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(results))
	}

	return nil
}
