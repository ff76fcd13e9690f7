// Package main is the entry point for the pdf-tools CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/book-expert/configurator"
	"github.com/book-expert/logger"
	"github.com/spf13/cobra"
)

// logDirEnvVar overrides the log directory; it carries no functional
// state beyond where the log file lands.
const logDirEnvVar = "PDF_TOOLS_LOG_DIR"

// Define named types for each section of the configuration.
type configPaths struct {
	OutputDir string `toml:"output_dir"`
}

type configSettings struct {
	DPI             int    `toml:"dpi"`
	ImageFormat     string `toml:"image_format"`
	CompressQuality string `toml:"compress_quality"`
}

type configLogsDir struct {
	PDFTools string `toml:"pdf_tools"`
}

// config represents the structure of the project.toml file.
type config struct {
	Paths    configPaths    `toml:"paths"`
	Settings configSettings `toml:"settings"`
	LogsDir  configLogsDir  `toml:"logs_dir"`
}

var (
	cfg         config
	projectRoot string
	log         *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pdf-tools",
	Short: "Everyday PDF utilities: merge, compress, and image conversion",
	Long: `pdf-tools wraps proven engines for everyday PDF work: merging documents,
Ghostscript compression, composing images into a PDF, rasterizing PDFs to
per-page images, and normalizing date-stamped file names.

Defaults can be set in an optional project.toml; command-line flags take
precedence over the config file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupEnvironment,
}

// setupEnvironment locates the optional project config and prepares the
// file-backed logger before any subcommand runs.
func setupEnvironment(_ *cobra.Command, _ []string) error {
	root, configPath, rootErr := configurator.FindProjectRoot(".")
	if rootErr != nil {
		// Running outside a project tree is fine; fall back to the
		// working directory and built-in defaults.
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return fmt.Errorf("could not determine working directory: %w", cwdErr)
		}

		root, configPath = cwd, ""
	}

	projectRoot = root

	if configPath != "" {
		loaded, loadErr := safeLoadConfig(configPath)
		if loadErr != nil {
			return loadErr
		}

		cfg = loaded
	}

	logInstance, logErr := setupLogger(projectRoot, cfg.LogsDir.PDFTools)
	if logErr != nil {
		return fmt.Errorf("could not set up logger: %w", logErr)
	}

	log = logInstance

	return nil
}

// safeLoadConfig loads the TOML config, allowing a missing file without
// error.
func safeLoadConfig(path string) (config, error) {
	loaded, err := loadConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			var emptyCfg config

			return emptyCfg, nil
		}

		return config{}, fmt.Errorf("error loading config file: %w", err)
	}

	return loaded, nil
}

// loadConfig reads and parses the project.toml file.
func loadConfig(path string) (config, error) {
	var loaded config

	_, err := toml.DecodeFile(path, &loaded)
	if err != nil {
		var zero config

		return zero, fmt.Errorf("failed to decode config file: %w", err)
	}

	return loaded, nil
}

// setupLogger initializes the logger, creating the log directory if
// needed. The environment variable wins over the config file.
func setupLogger(root, logDirConfig string) (*logger.Logger, error) {
	logDir := firstNonEmpty(
		os.Getenv(logDirEnvVar),
		logDirConfig,
		filepath.Join(root, "logs", "pdf-tools"),
	)

	logFileName := fmt.Sprintf("log_%s.log", time.Now().Format("20060102_150405"))

	logInstance, err := logger.New(logDir, logFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logInstance, nil
}

// firstNonEmpty returns the first non-empty value, so flags can override
// config which overrides built-in defaults.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}

// firstPositive is firstNonEmpty for integer settings.
func firstPositive(values ...int) int {
	for _, value := range values {
		if value > 0 {
			return value
		}
	}

	return 0
}

func main() {
	err := rootCmd.Execute()

	if log != nil {
		cerr := log.Close()
		if cerr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to close logger: %v\n", cerr)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
