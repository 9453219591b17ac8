package supervisor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selorm/scholarbase/internal/roster"
	"github.com/selorm/scholarbase/internal/supervisor"
)

func lookupFrom(accounts map[string]int64) func(string) (int64, bool) {
	return func(email string) (int64, bool) {
		id, ok := accounts[email]
		return id, ok
	}
}

func TestBuildNameIndex(t *testing.T) {
	entries := []roster.Entry{
		{ID: "a.b", Name: "A B", Email: "a@x.com"},
		{ID: "c.d", Name: "Dr. C D", Email: "c@x.com"},
		{ID: roster.OthersID, Name: "Others (Please specify in supervisor field)"},
	}

	t.Run("inserts three case variants per matched entry", func(t *testing.T) {
		index := supervisor.BuildNameIndex(entries, lookupFrom(map[string]int64{"a@x.com": 7}))

		assert.Equal(t, int64(7), index["A B"])
		assert.Equal(t, int64(7), index["a b"])
		assert.Len(t, index, 2) // "A B" upper-cases to itself
	})

	t.Run("entry without account is excluded, not an error", func(t *testing.T) {
		index := supervisor.BuildNameIndex(entries, lookupFrom(map[string]int64{"c@x.com": 3}))

		_, ok := index["A B"]
		assert.False(t, ok)
		assert.Equal(t, int64(3), index["Dr. C D"])
		assert.Equal(t, int64(3), index["dr. c d"])
		assert.Equal(t, int64(3), index["DR. C D"])
	})

	t.Run("sentinel never enters the index", func(t *testing.T) {
		accounts := map[string]int64{"a@x.com": 1, "c@x.com": 2, "": 99}
		index := supervisor.BuildNameIndex(entries, lookupFrom(accounts))

		for key := range index {
			assert.NotContains(t, key, "Others")
		}
	})
}

func TestMatch(t *testing.T) {
	index := supervisor.NameIndex{
		"Dr. Jane Doe": 11,
		"dr. jane doe": 11,
		"DR. JANE DOE": 11,
	}

	t.Run("exact hit", func(t *testing.T) {
		id, ok := supervisor.Match("Dr. Jane Doe", index)
		require.True(t, ok)
		assert.Equal(t, int64(11), id)
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		id, ok := supervisor.Match("  Dr. Jane Doe \n", index)
		require.True(t, ok)
		assert.Equal(t, int64(11), id)
	})

	t.Run("mixed casing resolves via scan", func(t *testing.T) {
		id, ok := supervisor.Match("dR. jAnE dOe", index)
		require.True(t, ok)
		assert.Equal(t, int64(11), id)
	})

	t.Run("fold-equal keys resolve to a stable winner", func(t *testing.T) {
		// Two distinct keys fold to the same name; the sorted scan must
		// pick the same one on every call.
		ambiguous := supervisor.NameIndex{
			"Dr. Jane Doe": 11,
			"dr. jane doe": 22,
		}
		for i := 0; i < 50; i++ {
			id, ok := supervisor.Match("DR. JANE DOE", ambiguous)
			require.True(t, ok)
			assert.Equal(t, int64(11), id) // "D" sorts before "d"
		}
	})

	t.Run("unknown name misses", func(t *testing.T) {
		_, ok := supervisor.Match("Unknown Person", index)
		assert.False(t, ok)
	})

	t.Run("empty and blank names miss", func(t *testing.T) {
		_, ok := supervisor.Match("", index)
		assert.False(t, ok)
		_, ok = supervisor.Match("   ", index)
		assert.False(t, ok)
	})
}

func TestResolvePending(t *testing.T) {
	entries := []roster.Entry{{ID: "a.b", Name: "A B", Email: "a@x.com"}}
	index := supervisor.BuildNameIndex(entries, lookupFrom(map[string]int64{"a@x.com": 42}))

	t.Run("lower-case legacy text resolves case-insensitively", func(t *testing.T) {
		out := supervisor.ResolvePending([]supervisor.PendingItem{
			{ID: 1, Title: "Anaemia in Pregnancy", RawName: "a b"},
		}, index)

		require.Len(t, out.Assignments, 1)
		assert.Equal(t, supervisor.Assignment{ItemID: 1, AccountID: 42}, out.Assignments[0])
		assert.Empty(t, out.Unresolved)
	})

	t.Run("unmatched item is reported with truncated title", func(t *testing.T) {
		longTitle := "A Comparative Study of Community Health Outcomes in the Volta Region of Ghana"
		out := supervisor.ResolvePending([]supervisor.PendingItem{
			{ID: 2, Title: longTitle, RawName: "Unknown Person"},
		}, index)

		assert.Empty(t, out.Assignments)
		require.Len(t, out.Unresolved, 1)
		u := out.Unresolved[0]
		assert.Equal(t, int64(2), u.ItemID)
		assert.Equal(t, "Unknown Person", u.RawName)
		assert.Less(t, len(u.Title), len(longTitle))
		assert.Contains(t, u.Title, "A Comparative Study")
	})

	t.Run("each item examined exactly once, order preserved", func(t *testing.T) {
		out := supervisor.ResolvePending([]supervisor.PendingItem{
			{ID: 1, RawName: "A B"},
			{ID: 2, RawName: "nobody"},
			{ID: 3, RawName: " a b "},
		}, index)

		require.Len(t, out.Assignments, 2)
		assert.Equal(t, int64(1), out.Assignments[0].ItemID)
		assert.Equal(t, int64(3), out.Assignments[1].ItemID)
		require.Len(t, out.Unresolved, 1)
		assert.Equal(t, int64(2), out.Unresolved[0].ItemID)
	})

	t.Run("second pass over remaining items resolves nothing new", func(t *testing.T) {
		first := supervisor.ResolvePending([]supervisor.PendingItem{
			{ID: 1, RawName: "A B"},
			{ID: 2, RawName: "Unknown Person"},
		}, index)
		require.Len(t, first.Unresolved, 1)

		// Resolved items drop out of the pending set (supervisor_id is no
		// longer NULL); only the unresolved remainder is seen again.
		var remaining []supervisor.PendingItem
		for _, u := range first.Unresolved {
			remaining = append(remaining, supervisor.PendingItem{ID: u.ItemID, RawName: u.RawName})
		}
		second := supervisor.ResolvePending(remaining, index)

		assert.Empty(t, second.Assignments)
		assert.Equal(t, first.Unresolved, second.Unresolved)
	})
}

func TestRosterSentinelPresent(t *testing.T) {
	entry, ok := roster.ByID(roster.OthersID)
	require.True(t, ok)
	assert.Empty(t, entry.Email)

	index := supervisor.BuildNameIndex(roster.Supervisors, func(string) (int64, bool) { return 1, true })
	_, found := supervisor.Match(entry.Name, index)
	assert.False(t, found)
}
