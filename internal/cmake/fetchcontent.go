package cmake

import "strings"

// Declaration binds a FetchContent name to its source repository and pinned
// revision, extracted from a FetchContent_Declare statement.
type Declaration struct {
	Repository string
	Tag        string
}

// Usage is one dependency actually requested by a
// FetchContent_MakeAvailable statement, with repository and tag resolved
// from the matching declaration or Unknown when none exists.
type Usage struct {
	Name       string
	Repository string
	Tag        string
}

// CorrelateFetchContent pairs every FetchContent_MakeAvailable argument with
// its FetchContent_Declare entry. Declarations are collected over the whole
// source first, so a declaration textually after a usage still applies, and
// a name declared twice keeps the later declaration. Usages keep their
// textual order and are not deduplicated.
func CorrelateFetchContent(src string) []Usage {
	stmts := Scan(src)

	decls := make(map[string]Declaration)
	for _, st := range stmts {
		if st.Command != "fetchcontent_declare" {
			continue
		}
		if name, d, ok := parseDeclaration(st.Args); ok {
			decls[name] = d
		}
	}

	var usages []Usage
	for _, st := range stmts {
		if st.Command != "fetchcontent_makeavailable" {
			continue
		}
		for _, name := range st.Args {
			u := Usage{Name: name, Repository: Unknown, Tag: Unknown}
			if d, ok := decls[name]; ok {
				u.Repository = d.Repository
				u.Tag = d.Tag
			}
			usages = append(usages, u)
		}
	}
	return usages
}

// parseDeclaration reads the name and the GIT_REPOSITORY / GIT_TAG keyword
// values out of a FetchContent_Declare argument list. A declaration missing
// either keyword is ignored, matching the behavior of treating the name as
// never declared.
func parseDeclaration(args []string) (string, Declaration, bool) {
	if len(args) == 0 {
		return "", Declaration{}, false
	}
	var d Declaration
	for i := 1; i+1 < len(args); i++ {
		switch {
		case strings.EqualFold(args[i], "GIT_REPOSITORY"):
			d.Repository = args[i+1]
		case strings.EqualFold(args[i], "GIT_TAG"):
			d.Tag = args[i+1]
		}
	}
	if d.Repository == "" || d.Tag == "" {
		return "", Declaration{}, false
	}
	return args[0], d, true
}
