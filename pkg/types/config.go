package types

import "errors"

// Config holds backend selection and engine parameters for Session.Attach.
type Config struct {
	Backend     string `json:"backend" yaml:"backend"`
	ExportDir   string `json:"export_dir" yaml:"export_dir"`
	ExportFile  string `json:"export_file" yaml:"export_file"`
	SampleSteps int    `json:"sample_steps" yaml:"sample_steps"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Defaults applied when a Config field is left zero.
const (
	DefaultExportFile  = "animations.json"
	DefaultSampleSteps = 60
)

// Config validation errors.
var (
	ErrBackendEmpty       = errors.New("backend must not be empty")
	ErrBackendUnknown     = errors.New("unknown backend")
	ErrInvalidSampleSteps = errors.New("sample steps must be positive")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. A zero SampleSteps is valid and means
// DefaultSampleSteps.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.SampleSteps < 0 {
		return ErrInvalidSampleSteps
	}
	return nil
}

// Steps returns the configured sample step count, or DefaultSampleSteps.
func (c Config) Steps() int {
	if c.SampleSteps == 0 {
		return DefaultSampleSteps
	}
	return c.SampleSteps
}

// ExportName returns the configured export file name, or DefaultExportFile.
func (c Config) ExportName() string {
	if c.ExportFile == "" {
		return DefaultExportFile
	}
	return c.ExportFile
}
