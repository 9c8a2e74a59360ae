// Package logging builds the hclog loggers used across vrmsort.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Environment variables read by the CLI, never by library code.
const (
	EnvLogLevel = "VRMSORT_LOG_LEVEL"
	EnvJSONLog  = "VRMSORT_JSON_LOG"
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(EnvJSONLog) == "1"

	if !jsonFormat {
		output = NewPrefixWriter("🗂️ ", output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel picks the flag value, then the environment, then "warn".
func GetLogLevel(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		return level
	}
	return "warn"
}
