package logging

import (
	"go.uber.org/zap"
)

// Logger is the process-wide logger. Init must run before use; the
// zero value panics on purpose so a missed Init is caught immediately.
var Logger *zap.SugaredLogger

// Init configures the global logger. Verbose switches to the
// development encoder with debug level; otherwise only warnings and
// errors reach stderr so CLI output stays clean for piping.
func Init(verbose bool) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("initializing logger: " + err.Error())
	}
	Logger = logger.Sugar()
}
