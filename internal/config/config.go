// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's sentinel errors.
package config

// Default upload cap in bytes.
const defaultMaxUploadBytes = 16 << 20

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8501".
	Addr string `koanf:"addr"`

	// ScoresPath is the default workbook read when no file is uploaded,
	// resolved against the working directory.
	ScoresPath string `koanf:"scores_path"`

	// MaxUploadBytes caps the size of uploaded workbooks.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// SpotlightSize is the number of spotlight cards, at most 3.
	SpotlightSize int `koanf:"spotlight_size"`

	// TopFloor raises the minimum selectable top-N to min(TopFloor, rowCount).
	TopFloor int `koanf:"top_floor"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8501",
		ScoresPath:     "scores.xlsx",
		MaxUploadBytes: defaultMaxUploadBytes,
		SpotlightSize:  3,
		TopFloor:       3,
	}
}
