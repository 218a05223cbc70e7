package config

import "fmt"

// Config represents the application configuration
type Config struct {
	Inputs  InputsConfig  `mapstructure:"inputs" yaml:"inputs"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// InputsConfig locates the listfiles the extractor reads. RootList and
// TestList are relative to Root.
type InputsConfig struct {
	Root        string `mapstructure:"root" yaml:"root"`
	RootList    string `mapstructure:"root_list" yaml:"root_list"`
	TestList    string `mapstructure:"test_list" yaml:"test_list"`
	ProjectFile string `mapstructure:"project_file" yaml:"project_file"`
}

// OutputConfig controls where and which artifacts are written
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Format    string `mapstructure:"format" yaml:"format"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and fills empty fields with defaults
func (c *Config) Validate() error {
	if c.Inputs.Root == "" {
		c.Inputs.Root = DefaultRoot
	}
	if c.Inputs.RootList == "" {
		c.Inputs.RootList = DefaultRootList
	}
	if c.Inputs.TestList == "" {
		c.Inputs.TestList = DefaultTestList
	}
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	switch c.Output.Format {
	case FormatJSON, FormatTOML, FormatAll:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
