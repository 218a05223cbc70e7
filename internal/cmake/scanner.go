package cmake

import "strings"

// Statement is one command invocation in a listfile: an identifier followed
// by a parenthesized argument list.
type Statement struct {
	Command string // lowercased command identifier
	Args    []string
}

// Scan extracts every command statement from src, in textual order.
// Arguments are split on whitespace and may span multiple lines; quoted
// arguments keep their inner whitespace; `#` comments run to end of line.
// An identifier without a following argument list, and an argument list that
// never closes, are both skipped.
func Scan(src string) []Statement {
	var stmts []Statement
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case c == '#':
			i = skipComment(src, i)
		case isIdentStart(c):
			start := i
			for i < n && isIdentChar(src[i]) {
				i++
			}
			name := src[start:i]
			j := i
			for j < n && isSpace(src[j]) {
				j++
			}
			if j >= n || src[j] != '(' {
				continue
			}
			args, end, ok := scanArgs(src, j+1)
			if !ok {
				return stmts
			}
			stmts = append(stmts, Statement{Command: strings.ToLower(name), Args: args})
			i = end
		default:
			i++
		}
	}
	return stmts
}

// scanArgs consumes arguments starting just after an opening paren and
// returns them together with the index past the closing paren. Nested parens
// inside an unquoted argument stay part of that argument.
func scanArgs(src string, i int) ([]string, int, bool) {
	args := []string{}
	var cur strings.Builder
	depth := 0

	flush := func() {
		if cur.Len() > 0 {
			args = append(args, cur.String())
			cur.Reset()
		}
	}

	for i < len(src) {
		c := src[i]
		switch {
		case c == '"':
			i++
			for i < len(src) && src[i] != '"' {
				if src[i] == '\\' && i+1 < len(src) {
					i++
				}
				cur.WriteByte(src[i])
				i++
			}
			if i >= len(src) {
				return nil, i, false
			}
			i++
			flush()
		case c == '#':
			i = skipComment(src, i)
		case c == '(':
			depth++
			cur.WriteByte(c)
			i++
		case c == ')':
			if depth == 0 {
				flush()
				return args, i + 1, true
			}
			depth--
			cur.WriteByte(c)
			i++
		case isSpace(c):
			flush()
			i++
		default:
			cur.WriteByte(c)
			i++
		}
	}
	return nil, i, false
}

func skipComment(src string, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
