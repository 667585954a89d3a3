package logger

import (
	"go.uber.org/zap"
)

// Log is a no-op until Initialize is called, so packages can log
// unconditionally.
var Log = zap.NewNop()

// Initialize replaces Log with a production logger at the given level.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = zl
	return nil
}
