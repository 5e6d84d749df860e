package core

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// LogEnvVar names the environment variable that turns on double logging.
// Its value is a level understood by log.ParseLevel ("debug", "info", ...).
const LogEnvVar = "IMPSTUB_LOG"

// Option configures a Double at construction.
type Option func(*config)

// WithLogger routes the double's diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithName names the double in errors and log lines.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithPolicy starts the double with an externally owned policy instead of a
// DefaultPolicy of its own.
func WithPolicy(policy Policy) Option {
	return func(c *config) {
		c.policy = policy
	}
}

type config struct {
	name   string
	policy Policy
	logger *log.Logger
}

// unexported variables.
var (
	//nolint:gochecknoglobals // built once from the environment
	baseLoggerOnce sync.Once
	//nolint:gochecknoglobals // built once from the environment
	baseLogger *log.Logger
)

func defaultLogger() *log.Logger {
	baseLoggerOnce.Do(func() {
		baseLogger = loggerFromEnv(os.Getenv)
	})

	return baseLogger
}

// loggerFromEnv builds a stderr logger at the level named by IMPSTUB_LOG, or a
// silent one when the variable is unset or unparsable.
func loggerFromEnv(getEnv func(string) string) *log.Logger {
	value := getEnv(LogEnvVar)
	if value == "" {
		return log.New(io.Discard)
	}

	level, err := log.ParseLevel(value)
	if err != nil {
		return log.New(io.Discard)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "impstub",
		ReportTimestamp: false,
	})
}

func newConfig(opts []Option) config {
	var cfg config

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = defaultLogger()
	}

	if cfg.name != "" {
		cfg.logger = cfg.logger.With("double", cfg.name)
	}

	return cfg
}
