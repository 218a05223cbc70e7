package manifest

// Assemble combines the resolved version, the project identity, the platform
// baseline and the already-rendered dependency records into one Manifest.
// The baseline leads the dependency listing and the record order is
// preserved as given. All fixed data arrives as arguments; the package holds
// no project-specific state.
func Assemble(version string, id Identity, baseline Dependency, deps []Dependency) *Manifest {
	all := make([]Dependency, 0, len(deps)+1)
	all = append(all, baseline)
	all = append(all, deps...)

	return &Manifest{
		Project: Project{
			Name:        id.Name,
			Version:     version,
			Description: id.Description,
			Platforms:   id.Platforms,
			Source: Source{
				Repository: id.Repository,
				Download:   id.Download,
			},
		},
		Dependencies: all,
	}
}
