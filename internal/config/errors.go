package config

import "errors"

// Sentinel errors for the config package
var (
	// ErrInvalidFormat indicates an unrecognized output format selector
	ErrInvalidFormat = errors.New(`output format must be "json", "toml", or "all"`)

	// ErrProjectFileNotFound indicates the project override file does not exist
	ErrProjectFileNotFound = errors.New("project file not found")

	// ErrInvalidProjectFile indicates the project file is not valid YAML or JSON
	ErrInvalidProjectFile = errors.New("project file must be valid YAML or JSON")

	// ErrUnsupportedExt indicates an unsupported project file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")
)
