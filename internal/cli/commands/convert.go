// Package commands implements the cadcodec subcommands.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/cadcodec"
	"github.com/tsawler/cadcodec/format"
	"github.com/tsawler/cadcodec/internal/cli/config"
	"github.com/tsawler/cadcodec/internal/logging"
	"github.com/tsawler/cadcodec/model"
)

// AddTargetFlags registers the flags shared by commands that write files.
func AddTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("to", config.DefaultTarget, "Output format (dxf|script|json|yaml)")
	cmd.Flags().String("out-dir", "", "Directory for output files (default: next to each input)")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency, "Number of files converted at once")
	_ = cmd.RegisterFlagCompletionFunc("to", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"dxf", "script", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Convert drawings to another format",
		Long: `Convert drawings between DXF interchange text, JSON and YAML document
values, and write command scripts. The input format is taken from the file
extension, or from the content when the extension is not recognized.

Each output file is written next to its input, or into --out-dir, with the
extension of the target format.`,
		Example: `  cadcodec convert plan.dxf --to script
  cadcodec convert *.json --to dxf --out-dir build`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			logger := config.Logger(ctx)

			target, err := cfg.TargetFormat()
			if err != nil {
				return err
			}

			outputs := make([]string, len(args))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(cfg.Concurrency)
			for i, input := range args {
				i, input := i, input
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					out, err := convertFile(logger, cfg, input, target)
					if err != nil {
						return err
					}
					outputs[i] = out
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, out := range outputs {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	AddTargetFlags(cmd)
	return cmd
}

// converter builds the conversion chain for input from the settings.
func converter(cfg *config.Config, input string) *cadcodec.Converter {
	c := cadcodec.Open(input).
		CodePage(cfg.CodePage).
		CodeWarnings(cfg.CodeWarnings)
	if cfg.PassThrough {
		c = c.PassThrough()
	}
	return c
}

// outputPath returns where the conversion of input to target is written.
func outputPath(outDir, input string, target format.Format) string {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+target.Extension())
}

// convertFile converts one input file and returns the path written.
func convertFile(logger *zap.Logger, cfg *config.Config, input string, target format.Format) (string, error) {
	out := outputPath(cfg.OutputDir, input, target)
	if sameFile(input, out) {
		return "", fmt.Errorf("%s: output would overwrite the input", input)
	}

	data, warnings, err := converter(cfg, input).To(target)
	if err != nil {
		return "", fmt.Errorf("%s: %w", input, err)
	}
	logging.Warnings(logger, input, warnings)

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o750); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}

	logger.Info("converted",
		zap.String("file", input),
		zap.String("output", out),
		zap.String("target", target.String()),
		zap.Int("warnings", len(warnings)),
		zap.Int("skipped", len(model.FilterWarnings(warnings, model.WarnUnsupportedKind))),
	)
	return out, nil
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
