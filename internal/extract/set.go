// Package extract turns locale files into flat sets of dotted key paths.
//
// The primary input format is a TypeScript module exporting one nested
// dictionary literal; nested YAML locale files are also supported. Either
// way the output is the set of leaf key paths, e.g. "settings.general.title".
package extract

import "sort"

// Set is a set of dotted key paths extracted from one locale file.
type Set map[string]struct{}

func (s Set) Add(key string) {
	s[key] = struct{}{}
}

func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the keys in lexical order.
func (s Set) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
