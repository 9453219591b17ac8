// Package slug derives URL-safe identifiers from display names and titles.
// Slugs are lower-case, hyphen-delimited and unique within their entity type
// (user profile slugs, project slugs).
package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// Make converts a display name or title into its base slug: lower-cased,
// stripped of everything that is not a letter, digit, underscore, whitespace
// or hyphen, with runs of whitespace and hyphens collapsed into a single
// hyphen and leading/trailing hyphens trimmed.
//
// Make can return an empty string (e.g. for a name made entirely of
// punctuation). Callers must supply their own fallback seed in that case,
// such as an external id.
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsSpace(r) || r == '-':
			pendingHyphen = true
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			// punctuation and symbols are dropped without breaking the word
		}
	}

	return b.String()
}

// Unique returns the first slug derived from base that exists reports as
// free. It probes the base candidate itself, then base-1, base-2, and so on
// until exists returns false.
//
// The check-then-claim sequence is not safe under concurrent callers with
// the same base: two racing generations can both observe a candidate as
// free. Callers either run serialized (the batch scripts do) or wrap
// generation and insertion in a single transaction guarded by the store's
// unique constraint.
func Unique(base string, exists func(string) bool) string {
	if !exists(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !exists(candidate) {
			return candidate
		}
	}
}
