// Package diff compares locale key sets against a reference set.
package diff

import "github.com/i18n-tools/i18n-check/internal/extract"

// Result holds the two directions of a key-set comparison, sorted.
type Result struct {
	// Missing keys are present in the reference but absent from the candidate.
	Missing []string
	// Extra keys are present in the candidate but absent from the reference.
	Extra []string
}

// Compare diffs a candidate key set against the reference set.
func Compare(reference, candidate extract.Set) Result {
	var res Result
	for _, k := range reference.Sorted() {
		if !candidate.Has(k) {
			res.Missing = append(res.Missing, k)
		}
	}
	for _, k := range candidate.Sorted() {
		if !reference.Has(k) {
			res.Extra = append(res.Extra, k)
		}
	}
	return res
}

// Clean reports whether the candidate matches the reference exactly.
func (r Result) Clean() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}
