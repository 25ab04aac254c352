// Package logging builds the structured logger used by the command-line
// tool. The codec packages never log; they return warnings, and the tool
// reports them here.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/cadcodec/model"
)

// New returns a production zap logger writing JSON lines to stderr. Debug
// messages are enabled when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Warnings logs each codec warning for file at warn level.
func Warnings(logger *zap.Logger, file string, warnings []model.Warning) {
	for _, w := range warnings {
		fields := []zap.Field{
			zap.String("file", file),
			zap.String("kind", w.Kind.String()),
		}
		if w.Entity >= 0 {
			fields = append(fields, zap.Int("entity", w.Entity))
		}
		if w.Field != "" {
			fields = append(fields, zap.String("field", w.Field))
		}
		logger.Warn(w.Message, fields...)
	}
}
