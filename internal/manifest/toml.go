package manifest

import (
	"fmt"
	"strconv"
	"strings"
)

// blockDelim delimits multi-line literal strings. The format defines no
// escape for it, so any value containing it is rejected outright.
const blockDelim = "'''"

// EncodeTOML renders the manifest as TOML: a [project] table, a
// [project.source] table, then one [[dependencies]] entry per record in
// listing order. Within a table, fields keep their declaration order.
// List values render as a bracketed list of quoted scalars; string values
// containing a line break render as triple-quoted literal blocks; all other
// strings render as a single quoted scalar. Empty optional fields are
// omitted, so the baseline entry stays as lean as in the JSON rendering.
func EncodeTOML(m *Manifest) ([]byte, error) {
	var b strings.Builder

	b.WriteString("[project]\n")
	fields := []struct {
		key string
		val string
	}{
		{"name", m.Project.Name},
		{"version", m.Project.Version},
		{"description", m.Project.Description},
	}
	for _, f := range fields {
		if err := writeString(&b, f.key, f.val); err != nil {
			return nil, err
		}
	}
	writeList(&b, "platforms", m.Project.Platforms)

	b.WriteString("\n[project.source]\n")
	if err := writeString(&b, "repository", m.Project.Source.Repository); err != nil {
		return nil, err
	}
	if err := writeString(&b, "download", m.Project.Source.Download); err != nil {
		return nil, err
	}

	for _, d := range m.Dependencies {
		b.WriteString("\n[[dependencies]]\n")
		if err := writeDependency(&b, d); err != nil {
			return nil, err
		}
	}

	return []byte(b.String()), nil
}

func writeDependency(b *strings.Builder, d Dependency) error {
	if err := writeString(b, "name", d.Name); err != nil {
		return err
	}
	writeList(b, "platforms", d.Platforms)
	if err := writeString(b, "install", d.Install); err != nil {
		return err
	}
	if err := writeString(b, "version", d.Version); err != nil {
		return err
	}
	// Optional fields; empty on the platform baseline.
	for _, f := range []struct {
		key string
		val string
	}{
		{"condition", d.Condition},
		{"fetch_method", d.FetchMethod},
		{"repository", d.Repository},
	} {
		if f.val == "" {
			continue
		}
		if err := writeString(b, f.key, f.val); err != nil {
			return err
		}
	}
	return nil
}

// writeString emits one string field. A value with an embedded line break
// becomes a literal block; the closing delimiter sits on the last content
// line so the value round-trips without a trailing newline.
func writeString(b *strings.Builder, key, val string) error {
	if strings.Contains(val, blockDelim) {
		return fmt.Errorf("%w: field %q", ErrDelimiterInValue, key)
	}
	if strings.Contains(val, "\n") {
		fmt.Fprintf(b, "%s = %s\n%s%s\n", key, blockDelim, val, blockDelim)
		return nil
	}
	fmt.Fprintf(b, "%s = %s\n", key, strconv.Quote(val))
	return nil
}

func writeList(b *strings.Builder, key string, vals []string) {
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = strconv.Quote(v)
	}
	fmt.Fprintf(b, "%s = [%s]\n", key, strings.Join(quoted, ", "))
}
