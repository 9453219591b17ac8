// Package supervisor links legacy free-text supervisor names on projects to
// faculty accounts. Matching is exact first, then case-insensitive; items
// that match nobody are reported, never guessed.
package supervisor

import (
	"sort"
	"strings"

	"github.com/selorm/scholarbase/internal/roster"
)

// NameIndex maps supervisor name variants to account ids.
type NameIndex map[string]int64

// BuildNameIndex builds the name→account mapping from the roster. For every
// entry except the "others" sentinel it looks up an account by the entry's
// email and, when found, inserts the name verbatim plus its lower- and
// upper-cased variants. The variants give O(1) hits for the two casing
// conventions common in legacy data; arbitrary casings fall back to the
// linear scan in Match. Entries whose email matches no account are skipped
// silently: that is expected when accounts are created after the roster is
// defined.
func BuildNameIndex(entries []roster.Entry, lookup func(email string) (int64, bool)) NameIndex {
	index := make(NameIndex)
	for _, e := range entries {
		if e.ID == roster.OthersID {
			continue
		}
		id, ok := lookup(e.Email)
		if !ok {
			continue
		}
		index[e.Name] = id
		index[strings.ToLower(e.Name)] = id
		index[strings.ToUpper(e.Name)] = id
	}
	return index
}

// Match resolves a raw supervisor string against the index. The name is
// trimmed, looked up exactly, and on a miss compared case-insensitively
// against every key. The fallback scans keys in sorted order so that two
// keys folding to the same name always resolve to the same account. The
// scan is O(n log n) per unmatched item, which is immaterial for a roster
// of tens of entries.
func Match(raw string, index NameIndex) (int64, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return 0, false
	}
	if id, ok := index[name]; ok {
		return id, true
	}
	keys := make([]string, 0, len(index))
	for key := range index {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.EqualFold(key, name) {
			return index[key], true
		}
	}
	return 0, false
}

// PendingItem is a project still carrying an unlinked free-text supervisor.
type PendingItem struct {
	ID      int64
	Title   string
	RawName string
}

// Assignment records a matched item.
type Assignment struct {
	ItemID    int64
	AccountID int64
}

// Unresolved records an item that matched no account. Title is truncated
// for reporting.
type Unresolved struct {
	ItemID  int64  `json:"itemId"`
	Title   string `json:"title"`
	RawName string `json:"rawName"`
}

// Outcome is the result of resolving a batch of pending items.
type Outcome struct {
	Assignments []Assignment
	Unresolved  []Unresolved
}

const reportTitleLen = 50

// ResolvePending matches each pending item against the index, in the order
// given. Every item is examined exactly once; items that already carry a
// reference must not be passed in (the store query filters on a NULL
// reference, which also makes repeated runs idempotent).
func ResolvePending(items []PendingItem, index NameIndex) Outcome {
	var out Outcome
	for _, item := range items {
		if id, ok := Match(item.RawName, index); ok {
			out.Assignments = append(out.Assignments, Assignment{ItemID: item.ID, AccountID: id})
			continue
		}
		out.Unresolved = append(out.Unresolved, Unresolved{
			ItemID:  item.ID,
			Title:   truncate(item.Title, reportTitleLen),
			RawName: strings.TrimSpace(item.RawName),
		})
	}
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
