package config

const (
	// DefaultReportDir is the report tree root, relative to the working directory.
	DefaultReportDir = "report"

	// DefaultOutput is the manifest path, relative to the working directory.
	DefaultOutput = "output.json"
)

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		ReportDir: DefaultReportDir,
		Output:    DefaultOutput,
		Logging:   DefaultLoggingConfig(),
	}
}
