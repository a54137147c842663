// Package report renders translation consistency reports.
//
// One collection and diff pass drives both presentation modes: Strict
// flags missing and extra keys with truncated listings, Exhaustive lists
// every missing key with an index plus a summary table. Both return the
// mode's pass/fail result; the caller maps that to the process exit code.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/i18n-tools/i18n-check/internal/config"
	"github.com/i18n-tools/i18n-check/internal/diff"
	"github.com/i18n-tools/i18n-check/internal/extract"
)

const lineWidth = 80

var (
	banner = strings.Repeat("=", lineWidth)
	rule   = strings.Repeat("-", lineWidth)
)

// Checker runs consistency checks over the configured languages and
// writes the report to out.
type Checker struct {
	cfg *config.Config
	out io.Writer
}

func New(cfg *config.Config, out io.Writer) *Checker {
	return &Checker{cfg: cfg, out: out}
}

type localeKeys struct {
	lang config.Language
	keys extract.Set
}

// collect loads every configured language's key set in order, printing a
// count line per language. An absent file prints a not-found notice and
// contributes an empty set; the run always continues. countSuffix covers
// the wording difference between the two modes ("N keys found" vs "N keys").
func (c *Checker) collect(countSuffix string) []localeKeys {
	sets := make([]localeKeys, 0, len(c.cfg.Languages))
	for _, lang := range c.cfg.Languages {
		path := c.cfg.FilePath(lang.Code)
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(c.out, "❌ %s (%s): File not found!\n", lang.Name, lang.Code)
			sets = append(sets, localeKeys{lang, make(extract.Set)})
			continue
		}
		keys := extract.Load(path)
		fmt.Fprintf(c.out, "%s (%s): %d keys%s\n", lang.Name, lang.Code, keys.Len(), countSuffix)
		sets = append(sets, localeKeys{lang, keys})
	}
	return sets
}

func (c *Checker) reference(sets []localeKeys) extract.Set {
	for _, lk := range sets {
		if lk.lang.Code == c.cfg.Reference {
			return lk.keys
		}
	}
	return make(extract.Set)
}

// Strict renders the inconsistency report: per-language missing and extra
// keys, truncated at the configured cap. Returns true when every
// non-reference language matches the reference exactly.
func (c *Checker) Strict() bool {
	refName := c.cfg.ReferenceName()

	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out, "Translation Consistency Check")
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out)

	sets := c.collect(" found")
	fmt.Fprintln(c.out)

	ref := c.reference(sets)
	fmt.Fprintf(c.out, "Using %s as reference with %d keys\n\n", refName, ref.Len())

	ok := true
	for _, lk := range sets {
		if lk.lang.Code == c.cfg.Reference {
			continue
		}

		res := diff.Compare(ref, lk.keys)
		if res.Clean() {
			fmt.Fprintf(c.out, "✅ %s (%s): All keys match %s reference!\n", lk.lang.Name, lk.lang.Code, refName)
			continue
		}

		ok = false
		fmt.Fprintln(c.out, rule)
		fmt.Fprintf(c.out, "%s (%s) - INCONSISTENCIES FOUND\n", lk.lang.Name, lk.lang.Code)
		fmt.Fprintln(c.out, rule)

		if len(res.Missing) > 0 {
			fmt.Fprintf(c.out, "\n❌ MISSING %d keys in %s:\n", len(res.Missing), lk.lang.Name)
			c.printCapped(res.Missing, "-")
		}
		if len(res.Extra) > 0 {
			fmt.Fprintf(c.out, "\n➕ EXTRA %d keys in %s (not in %s):\n", len(res.Extra), lk.lang.Name, refName)
			c.printCapped(res.Extra, "+")
		}
		fmt.Fprintln(c.out)
	}

	fmt.Fprintln(c.out, banner)
	if ok {
		fmt.Fprintln(c.out, "✅ SUCCESS: All languages are consistent!")
	} else {
		fmt.Fprintln(c.out, "❌ FAILURE: Inconsistencies found!")
		fmt.Fprintln(c.out, "\nRecommendation: Please add missing keys to incomplete language files.")
	}
	return ok
}

func (c *Checker) printCapped(keys []string, marker string) {
	limit := c.cfg.Truncate
	for i, k := range keys {
		if i == limit {
			fmt.Fprintf(c.out, "  ... and %d more\n", len(keys)-limit)
			return
		}
		fmt.Fprintf(c.out, "  %s %s\n", marker, k)
	}
}

// Exhaustive renders the detailed report: every missing key per language
// with a 1-based index, then a summary table of missing-key counts. Extra
// keys are ignored. Returns true when no language is missing any key.
func (c *Checker) Exhaustive() bool {
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out, "DETAILED Translation Consistency Report")
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out)

	sets := c.collect("")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out)

	ref := c.reference(sets)

	type langCount struct {
		lang    config.Language
		missing int
	}
	var counts []langCount
	totalMissing := 0

	for _, lk := range sets {
		if lk.lang.Code == c.cfg.Reference {
			continue
		}

		missing := diff.Compare(ref, lk.keys).Missing

		fmt.Fprintf(c.out, "%s (%s):\n", lk.lang.Name, lk.lang.Code)
		fmt.Fprintln(c.out, rule)
		if len(missing) > 0 {
			fmt.Fprintf(c.out, "❌ MISSING %d keys:\n\n", len(missing))
			for i, k := range missing {
				fmt.Fprintf(c.out, "%3d. %s\n", i+1, k)
			}
		} else {
			fmt.Fprintln(c.out, "✅ All keys present!")
		}
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, banner)
		fmt.Fprintln(c.out)

		counts = append(counts, langCount{lk.lang, len(missing)})
		totalMissing += len(missing)
	}

	fmt.Fprintln(c.out, "SUMMARY:")
	fmt.Fprintln(c.out, rule)
	for _, lc := range counts {
		status := "✅"
		if lc.missing > 0 {
			status = "❌"
		}
		fmt.Fprintf(c.out, "%s %-15s (%s): %3d missing keys\n", status, lc.lang.Name, lc.lang.Code, lc.missing)
	}
	fmt.Fprintln(c.out)

	if totalMissing == 0 {
		fmt.Fprintln(c.out, "✅ All languages are complete and consistent!")
		return true
	}
	fmt.Fprintf(c.out, "❌ Total missing keys across all languages: %d\n", totalMissing)
	return false
}
