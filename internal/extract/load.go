package extract

import (
	"os"
	"path/filepath"
)

// Load reads a locale file and returns its key set, dispatching on the
// file extension. A missing file, unreadable file, or content with no
// recognizable dictionary all yield an empty set: extraction failures
// surface downstream as maximal missingness, never as a run abort.
func Load(path string) Set {
	data, err := os.ReadFile(path)
	if err != nil {
		return make(Set)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		keys, err := ParseYAML(data)
		if err != nil {
			return make(Set)
		}
		return keys
	default:
		return ParseTS(string(data))
	}
}
