package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/selorm/scholarbase/internal/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "John Smith", "john-smith"},
		{"title with punctuation", "Dr. Mercy Klugar", "dr-mercy-klugar"},
		{"mixed case and symbols", "Malaria & Anaemia: A Study!", "malaria-anaemia-a-study"},
		{"collapses whitespace runs", "A   B\t C", "a-b-c"},
		{"collapses hyphen runs", "already--hyphen - ated", "already-hyphen-ated"},
		{"trims edge hyphens", "  -Hello World- ", "hello-world"},
		{"keeps underscores and digits", "sample_data 2024", "sample_data-2024"},
		{"empty input", "", ""},
		{"punctuation only", "!!! ...", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.in))
		})
	}
}

func TestMakeOutputAlphabet(t *testing.T) {
	inputs := []string{
		"Dr. Jane Doe", "A  --  B", "Étude Générale", "x__y", "(untitled)",
	}
	for _, in := range inputs {
		got := slug.Make(in)
		assert.NotContains(t, got, "--", "no hyphen runs for %q", in)
		if got != "" {
			assert.NotEqual(t, byte('-'), got[0], "no leading hyphen for %q", in)
			assert.NotEqual(t, byte('-'), got[len(got)-1], "no trailing hyphen for %q", in)
		}
		for _, r := range got {
			assert.True(t, r == '-' || r == '_' ||
				(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || r > 127,
				"unexpected rune %q in slug for %q", r, in)
		}
	}
}

func TestUnique(t *testing.T) {
	existsIn := func(taken ...string) func(string) bool {
		set := make(map[string]bool, len(taken))
		for _, s := range taken {
			set[s] = true
		}
		return func(candidate string) bool { return set[candidate] }
	}

	t.Run("base free", func(t *testing.T) {
		assert.Equal(t, "john-smith", slug.Unique("john-smith", existsIn()))
	})

	t.Run("first suffix wins", func(t *testing.T) {
		assert.Equal(t, "john-smith-1", slug.Unique("john-smith", existsIn("john-smith")))
	})

	t.Run("probes until free", func(t *testing.T) {
		exists := existsIn("john-smith", "john-smith-1", "john-smith-2")
		assert.Equal(t, "john-smith-3", slug.Unique("john-smith", exists))
	})

	t.Run("gap in suffixes is taken", func(t *testing.T) {
		exists := existsIn("john-smith", "john-smith-2")
		assert.Equal(t, "john-smith-1", slug.Unique("john-smith", exists))
	})

	t.Run("deterministic for same inputs", func(t *testing.T) {
		exists := existsIn("a-b", "a-b-1")
		first := slug.Unique("a-b", exists)
		second := slug.Unique("a-b", exists)
		assert.Equal(t, first, second)
	})
}

func TestSequentialGeneration(t *testing.T) {
	// Two accounts asking for the same base name, one after the other.
	taken := map[string]bool{}
	exists := func(c string) bool { return taken[c] }

	first := slug.Unique(slug.Make("John Smith"), exists)
	taken[first] = true
	second := slug.Unique(slug.Make("John Smith"), exists)

	assert.Equal(t, "john-smith", first)
	assert.Equal(t, "john-smith-1", second)
}
