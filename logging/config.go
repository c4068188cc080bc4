package logging

// Config is the optional `logging` section of bootstrap.yml.
type Config struct {
	// Level is the minimum level to output ("debug", "info", "warn",
	// "error"). BOOTSTRAP_LOG_LEVEL overrides it.
	Level string `yaml:"level"`

	// ReportCaller includes file, line and function in each entry.
	// BOOTSTRAP_LOG_CALLER=true enables it.
	ReportCaller bool `yaml:"report_caller"`

	// File configures the file sink.
	File FileSinkConfig `yaml:"file"`

	// Format controls the appearance of structured output.
	Format FormatConfig `yaml:"format"`
}

// FileSinkConfig configures logging to a file.
type FileSinkConfig struct {
	Enabled bool `yaml:"enabled"`

	// Path is the log file location. Empty means the per-component default
	// under the XDG state directory.
	Path string `yaml:"path"`
}

// FormatConfig controls the structured output format.
type FormatConfig struct {
	// Preset selects "default" (rich text), "simple" (minimal text) or
	// "json".
	Preset string `yaml:"preset"`

	DisableTimestamp bool `yaml:"disable_timestamp"`
	DisableComponent bool `yaml:"disable_component"`

	// StructuredToStderr is "auto" (only in debug mode or when stderr is
	// not a terminal), "always" or "never".
	StructuredToStderr string `yaml:"structured_to_stderr"`
}
