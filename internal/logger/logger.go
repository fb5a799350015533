package logger

import (
	"go.uber.org/zap"

	"github.com/abhisek/triviaz/internal/config"
)

// New builds a logger for command-line use. Production environments get
// JSON output, everything else the human-readable development encoder.
// When cfg.LogFile is set, output goes there instead of stderr.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.LogFile != "" {
		zcfg.OutputPaths = []string{cfg.LogFile}
		zcfg.ErrorOutputPaths = []string{cfg.LogFile}
	}

	return zcfg.Build()
}

// NewTUI builds a logger for the interactive UI. Writing to the terminal
// would corrupt the alt screen, so without a log file it is a no-op logger.
func NewTUI(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	return New(cfg)
}
