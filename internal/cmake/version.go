package cmake

import "strings"

// Unknown is the sentinel substituted for anything the listfiles do not
// provide: the project version, or the repository and tag of an undeclared
// dependency.
const Unknown = "unknown"

// ResolveVersion returns the token of the first set(PROJECT_VERSION x.y.z)
// statement in src, or Unknown when none exists. Command and variable name
// are matched case-insensitively and the token is returned verbatim,
// trailing zero components included.
func ResolveVersion(src string) string {
	for _, st := range Scan(src) {
		if st.Command != "set" || len(st.Args) < 2 {
			continue
		}
		if !strings.EqualFold(st.Args[0], "PROJECT_VERSION") {
			continue
		}
		if isVersionToken(st.Args[1]) {
			return st.Args[1]
		}
	}
	return Unknown
}

// isVersionToken reports whether s is a dotted numeric token.
func isVersionToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '.' && (s[i] < '0' || s[i] > '9') {
			return false
		}
	}
	return true
}
