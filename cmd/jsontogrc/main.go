// Command jsontogrc converts Archicad Add-On resource documents from JSON
// into the textual .grc format consumed by ResConv.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphisoft/jsontogrc/grc"
	"github.com/graphisoft/jsontogrc/grc/xliff"
	"github.com/graphisoft/jsontogrc/internal/log"
	"github.com/graphisoft/jsontogrc/internal/profiler"
	"github.com/graphisoft/jsontogrc/internal/version"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	logCfg := log.NewConfig()
	prof := profiler.New()

	root := &cobra.Command{
		Use:           "jsontogrc",
		Short:         "Convert Archicad Add-On JSON resources to .grc",
		Version:       version.String(),
		SilenceErrors: false,
		SilenceUsage:  true,
	}

	logCfg.RegisterFlags(root.PersistentFlags())
	prof.RegisterFlags(root.PersistentFlags())

	if err := logCfg.RegisterCompletions(root); err != nil {
		cobra.CheckErr(err)
	}

	root.AddCommand(newConvertCommand(logCfg, prof))
	root.AddCommand(newVersionCommand())

	return root
}

func newConvertCommand(logCfg *log.Config, prof *profiler.Profiler) *cobra.Command {
	cfg := grc.NewConfig()
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert [input.json...]",
		Short: "Convert one or more JSON resource documents to .grc text",
		Long: "Convert reads one or more JSON resource documents (or stdin, given " +
			"\"-\" or no argument), optionally merges XLIFF translation catalogs, " +
			"and writes the converted .grc text to the given output path (or " +
			"stdout). Given more than one input, conversions run concurrently and " +
			"--output names the directory each input's .grc sibling is written to.",
		SilenceErrors: false,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, cfg, logCfg, prof, outputPath)
		},
	}

	cfg.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-",
		"output path (or - for stdout) for a single input; output directory when given multiple inputs")

	if err := cfg.RegisterCompletions(cmd); err != nil {
		cobra.CheckErr(err)
	}

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())

			return err
		},
	}
}

func runConvert(
	cmd *cobra.Command,
	args []string,
	cfg *grc.Config,
	logCfg *log.Config,
	prof *profiler.Profiler,
	outputPath string,
) error {
	// The logger writes through a Publisher so an embedding caller could
	// subscribe to conversion progress without taking over stderr; here
	// the CLI itself is the sole, permanent subscriber.
	publisher := log.NewPublisher()
	stderrSub := publisher.Subscribe()

	done := make(chan struct{})

	go func() {
		defer close(done)

		for entry := range stderrSub.C() {
			_, _ = cmd.ErrOrStderr().Write(entry)
		}
	}()

	defer func() {
		_ = publisher.Close()
		<-done
	}()

	handler, err := logCfg.NewHandler(publisher)
	if err != nil {
		return err
	}

	logger := slog.New(handler)

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := prof.Start(); err != nil {
		return err
	}
	defer func() {
		if err := prof.Stop(); err != nil {
			logger.Error("stopping profiler", "error", err)
		}
	}()

	inputPaths := args
	if len(inputPaths) == 0 {
		inputPaths = []string{"-"}
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	if len(inputPaths) == 1 {
		return convertOne(logger, cfg, catalog, inputPaths[0], outputPath)
	}

	return convertMany(logger, cfg, catalog, inputPaths, outputPath)
}

func convertOne(
	logger *slog.Logger,
	cfg *grc.Config,
	catalog xliff.Catalog,
	inputPath, outputPath string,
) error {
	data, err := readInput(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %w", grc.ErrReadInput, err)
	}

	warnUnknownIgnoredTypes(logger, data, cfg.IgnoredResourceTypeList())

	doc, err := grc.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %w", grc.ErrReadInput, err)
	}

	if catalog != nil {
		xliff.Translate(doc, catalog)
	}

	logger.Info("converting",
		"input", inputPath,
		"target_ac_version", cfg.TargetAcVersion,
		"ignored", cfg.IgnoredResourceTypeList())

	text, err := grc.Convert(doc, cfg.TargetAcVersion, cfg.IgnoredResourceTypeList())
	if err != nil {
		return err
	}

	if err := writeOutput(outputPath, text); err != nil {
		return fmt.Errorf("%w: %w", grc.ErrWriteOutput, err)
	}

	return nil
}

func convertMany(
	logger *slog.Logger,
	cfg *grc.Config,
	catalog xliff.Catalog,
	inputPaths []string,
	outputDir string,
) error {
	if outputDir == "-" {
		return fmt.Errorf("%w: --output must name a directory when converting multiple inputs", grc.ErrInvalidOption)
	}

	jobs := make([]grc.Job, 0, len(inputPaths))

	for _, inputPath := range inputPaths {
		data, err := readInput(inputPath)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", grc.ErrReadInput, inputPath, err)
		}

		warnUnknownIgnoredTypes(logger, data, cfg.IgnoredResourceTypeList())

		doc, err := grc.Decode(data)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", grc.ErrReadInput, inputPath, err)
		}

		if catalog != nil {
			xliff.Translate(doc, catalog)
		}

		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

		jobs = append(jobs, grc.Job{
			InputPath:  inputPath,
			OutputPath: filepath.Join(outputDir, base+".grc"),
			Document:   doc,
		})
	}

	logger.Info("converting batch",
		"inputs", len(jobs),
		"target_ac_version", cfg.TargetAcVersion,
		"ignored", cfg.IgnoredResourceTypeList())

	results, err := grc.ConvertBatch(context.Background(), jobs, cfg.TargetAcVersion, cfg.IgnoredResourceTypeList())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil { //nolint:gosec // Directory comes from a CLI flag.
		return fmt.Errorf("%w: %w", grc.ErrWriteOutput, err)
	}

	for _, r := range results {
		if err := writeOutput(r.Job.OutputPath, r.Text); err != nil {
			return fmt.Errorf("%w: %s: %w", grc.ErrWriteOutput, r.Job.OutputPath, err)
		}

		logger.Info("wrote", "input", r.Job.InputPath, "output", r.Job.OutputPath)
	}

	return nil
}

// warnUnknownIgnoredTypes logs a warning for any --ignore value that names
// no top-level tag in data, detected via a cheap gjson peek ahead of the
// full decode.
func warnUnknownIgnoredTypes(logger *slog.Logger, data []byte, ignored []string) {
	for _, tag := range grc.UnknownIgnoredResourceTypes(data, ignored) {
		logger.Warn("--ignore names a tag absent from this document", "tag", tag)
	}
}

func loadCatalog(cfg *grc.Config) (xliff.Catalog, error) {
	if cfg.XLIFFParent == "" && cfg.XLIFFChild == "" {
		return nil, nil
	}

	var parent, child xliff.Catalog

	if cfg.XLIFFParent != "" {
		c, err := parseCatalogFile(cfg.XLIFFParent)
		if err != nil {
			return nil, err
		}

		parent = c
	}

	if cfg.XLIFFChild != "" {
		c, err := parseCatalogFile(cfg.XLIFFChild)
		if err != nil {
			return nil, err
		}

		child = c
	}

	return xliff.Merge(parent, child), nil
}

func parseCatalogFile(path string) (xliff.Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from a CLI flag.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", grc.ErrReadInput, err)
	}
	defer f.Close()

	cat, err := xliff.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", grc.ErrReadInput, path, err)
	}

	return cat, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path) //nolint:gosec // Path comes from a CLI flag.
}

func writeOutput(path, text string) error {
	if path == "-" {
		_, err := io.WriteString(os.Stdout, text)

		return err
	}

	return os.WriteFile(path, []byte(text), 0o644) //nolint:gosec // Path comes from a CLI flag.
}
