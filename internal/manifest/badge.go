package manifest

// Badge is a shields.io endpoint descriptor whose message is the resolved
// project version. It shares nothing else with the manifest.
type Badge struct {
	SchemaVersion int    `json:"schemaVersion"`
	Label         string `json:"label"`
	Message       string `json:"message"`
	LabelColor    string `json:"labelColor"`
	NamedLogo     string `json:"namedLogo"`
	Color         string `json:"color"`
	Style         string `json:"style"`
}

// BadgeStyle is the fixed display styling wrapped around the version
// message.
type BadgeStyle struct {
	Label      string `json:"label" yaml:"label"`
	LabelColor string `json:"label_color" yaml:"label_color"`
	NamedLogo  string `json:"named_logo" yaml:"named_logo"`
	Color      string `json:"color" yaml:"color"`
	Style      string `json:"style" yaml:"style"`
}

// Render stamps the resolved version into a badge descriptor.
func (s BadgeStyle) Render(version string) Badge {
	return Badge{
		SchemaVersion: 1,
		Label:         s.Label,
		Message:       version,
		LabelColor:    s.LabelColor,
		NamedLogo:     s.NamedLogo,
		Color:         s.Color,
		Style:         s.Style,
	}
}
