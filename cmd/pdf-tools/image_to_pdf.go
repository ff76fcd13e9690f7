package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/book-expert/pdf-tools/internal/convert"
)

var (
	imageToPDFOutput string
	imageToPDFRotate []string
)

var imageToPDFCmd = &cobra.Command{
	Use:   "image-to-pdf <image...>",
	Short: "Compose image files into a single multi-page PDF",
	Long: `Image-to-pdf builds one PDF with a page per input image, in input order,
each page sized to its image. --rotate takes a zero-based image index and
an angle in degrees (counter-clockwise, canvas expanded); when the same
index is given more than once, the last value wins.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImageToPDF,
}

func init() {
	imageToPDFCmd.Flags().StringVarP(
		&imageToPDFOutput,
		"output",
		"o",
		"output.pdf",
		"Output PDF path (.pdf appended when no extension is given)",
	)
	imageToPDFCmd.Flags().StringArrayVar(
		&imageToPDFRotate,
		"rotate",
		nil,
		"Rotate an image before embedding, as INDEX,ANGLE (repeatable)",
	)

	rootCmd.AddCommand(imageToPDFCmd)
}

func runImageToPDF(cmd *cobra.Command, args []string) error {
	specs, parseErr := convert.ParseRotationSpecs(imageToPDFRotate)
	if parseErr != nil {
		return parseErr
	}

	converter := convert.New(&convert.Options{}, log)

	outputPath, convertErr := converter.ImagesToPDF(
		cmd.Context(),
		args,
		specs,
		imageToPDFOutput,
	)
	if convertErr != nil {
		return convertErr
	}

	fmt.Fprintf(
		cmd.OutOrStdout(),
		"Created %s (%d page(s))\n",
		outputPath,
		len(args),
	)

	return nil
}
