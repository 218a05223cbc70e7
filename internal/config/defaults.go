package config

import "github.com/JeongHan-Bae/manifestgen/internal/manifest"

// Format selectors for the manifest renderings
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatAll  = "all"
)

// Default values
const (
	// Input defaults
	DefaultRoot     = "."
	DefaultRootList = "CMakeLists.txt"
	DefaultTestList = "tests/CMakeLists.txt"

	// Output defaults
	DefaultOutputDir = "."
	DefaultFormat    = FormatAll

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// defaultPlatforms is the supported desktop triple shared by the project
// identity, the baseline and every fetched dependency.
var defaultPlatforms = []string{"Ubuntu", "macOS", "Windows"}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Inputs: InputsConfig{
			Root:     DefaultRoot,
			RootList: DefaultRootList,
			TestList: DefaultTestList,
		},
		Output: OutputConfig{
			Directory: DefaultOutputDir,
			Format:    DefaultFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// DefaultIdentity returns the project identity stamped into the manifest
// when no override file is given.
func DefaultIdentity() manifest.Identity {
	return manifest.Identity{
		Name:        "JH-Toolkit",
		Description: "A cross-platform C++20 toolkit library",
		Platforms:   platforms(),
		Repository:  "https://github.com/JeongHan-Bae/JH-Toolkit",
		Download:    "git clone https://github.com/JeongHan-Bae/JH-Toolkit.git",
	}
}

// DefaultBaseline returns the always-present toolchain requirement that
// leads every dependency listing.
func DefaultBaseline() manifest.Dependency {
	return manifest.Dependency{
		Name:      "C++20 Standard Library",
		Platforms: platforms(),
		Install:   "Already included in modern compilers (g++-10+, clang++-10+, MSVC 19.28+)",
		Version:   "C++20",
	}
}

// DefaultBadgeStyle returns the fixed styling of the version badge.
func DefaultBadgeStyle() manifest.BadgeStyle {
	return manifest.BadgeStyle{
		Label:      "JH-Toolkit",
		LabelColor: "2b2d42",
		NamedLogo:  "cplusplus",
		Color:      "8d99ae",
		Style:      "flat",
	}
}

// JSONFetchTemplate returns the fixed strings of a fetched dependency in the
// JSON rendering.
func JSONFetchTemplate() manifest.FetchTemplate {
	return manifest.FetchTemplate{
		Platforms:   platforms(),
		Install:     "Debug mode only, automatically fetched via CMake FetchContent",
		Condition:   "CMAKE_BUILD_TYPE=Debug",
		FetchMethod: "FetchContent from GitHub",
	}
}

// TOMLFetchTemplate returns the fixed strings of a fetched dependency in the
// TOML rendering. The condition is multi-line and exercises the
// literal-block encoding.
func TOMLFetchTemplate() manifest.FetchTemplate {
	return manifest.FetchTemplate{
		Platforms: platforms(),
		Install:   "Debug mode only, automatically fetched via CMake FetchContent",
		Condition: "CMAKE_BUILD_TYPE=Debug\n" +
			"Release builds on Ubuntu, macOS and Windows do not fetch this dependency.",
		FetchMethod: "FetchContent from GitHub",
	}
}

func platforms() []string {
	out := make([]string, len(defaultPlatforms))
	copy(out, defaultPlatforms)
	return out
}
