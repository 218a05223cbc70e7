package manifest

// Project identifies the library the manifest describes. Field order is the
// key order of both renderings.
type Project struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Version     string   `json:"version" yaml:"version" toml:"version"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Platforms   []string `json:"platforms" yaml:"platforms" toml:"platforms"`
	Source      Source   `json:"source" yaml:"source" toml:"source"`
}

// Source locates the project's repository and how to obtain it.
type Source struct {
	Repository string `json:"repository" yaml:"repository" toml:"repository"`
	Download   string `json:"download" yaml:"download" toml:"download"`
}

// Dependency is one entry in the manifest's dependency listing. The platform
// baseline entry carries only the first four fields; fetched entries carry
// all seven.
type Dependency struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Platforms   []string `json:"platforms" yaml:"platforms" toml:"platforms"`
	Install     string   `json:"install" yaml:"install" toml:"install"`
	Version     string   `json:"version" yaml:"version" toml:"version"`
	Condition   string   `json:"condition,omitempty" yaml:"condition,omitempty" toml:"condition,omitempty"`
	FetchMethod string   `json:"fetch_method,omitempty" yaml:"fetch_method,omitempty" toml:"fetch_method,omitempty"`
	Repository  string   `json:"repository,omitempty" yaml:"repository,omitempty" toml:"repository,omitempty"`
}

// Manifest is the complete artifact model: project identity, then the
// dependency listing with the platform baseline always in front and fetched
// dependencies in usage order.
type Manifest struct {
	Project      Project      `json:"project" yaml:"project" toml:"project"`
	Dependencies []Dependency `json:"dependencies" yaml:"dependencies" toml:"dependencies"`
}

// Identity is the hand-authored project description. The resolved version is
// stamped in during assembly; everything else is fixed per project.
type Identity struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Platforms   []string `json:"platforms" yaml:"platforms"`
	Repository  string   `json:"repository" yaml:"repository"`
	Download    string   `json:"download" yaml:"download"`
}

// FetchTemplate carries the fixed strings stamped onto every fetched
// dependency for one output variant. The TOML variant uses a multi-line
// condition; the JSON variant a single-line one.
type FetchTemplate struct {
	Platforms   []string
	Install     string
	Condition   string
	FetchMethod string
}

// Record renders one fetched dependency from a correlated usage.
func (t FetchTemplate) Record(name, repository, version string) Dependency {
	return Dependency{
		Name:        name,
		Platforms:   t.Platforms,
		Install:     t.Install,
		Version:     version,
		Condition:   t.Condition,
		FetchMethod: t.FetchMethod,
		Repository:  repository,
	}
}
