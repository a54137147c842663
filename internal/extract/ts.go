package extract

import (
	"regexp"
	"strings"
)

var (
	// declPattern locates the exported dictionary literal. The literal is
	// assumed to be the last top-level construct in the file, so the match
	// runs greedily to the final semicolon-terminated close brace.
	declPattern = regexp.MustCompile(`(?s)export\s+const\s+\w+\s*:\s*\w+\s*=\s*(\{.*\});`)

	// keyLine matches "identifier: remainder". Quoted or computed keys do
	// not match and are skipped.
	keyLine = regexp.MustCompile(`^\s*(\w+):\s*(.*)$`)
)

// ParseTS extracts the dotted leaf key paths defined by the dictionary
// literal in a TypeScript locale file. Only leaf assignments contribute;
// object-valued keys become path segments. A file without a recognizable
// literal yields an empty set, never an error.
//
// The parser is a line-oriented heuristic, not a TypeScript parser: it
// tracks nesting by counting close braces per line. A key that opens and
// closes an object on the same line cancels its own nesting, so keys
// defined entirely within one line are not extracted. Locale files keep
// one key per line, which is the convention this relies on.
func ParseTS(content string) Set {
	keys := make(Set)

	m := declPattern.FindStringSubmatch(content)
	if m == nil {
		return keys
	}

	var path []string
	for _, line := range strings.Split(m[1], "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		if km := keyLine.FindStringSubmatch(line); km != nil {
			name := km[1]
			value := strings.TrimSpace(km[2])
			if strings.HasPrefix(value, "{") {
				path = append(path, name)
			} else {
				full := name
				if len(path) > 0 {
					full = strings.Join(path, ".") + "." + name
				}
				keys.Add(full)
			}
		}

		// Close braces anywhere on the line pop one level each. Underflow
		// at the outermost brace is ignored.
		for i := 0; i < strings.Count(line, "}"); i++ {
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}

	return keys
}
