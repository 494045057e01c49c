package neotags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{":", []string{""}},
		{"foo", []string{"foo"}},
		{"foo:", []string{"foo"}},
		{"foo:bar:", []string{"foo", "bar"}},
		{"foo:bar", []string{"foo", "bar"}},
		{"foo::bar:", []string{"foo", "", "bar"}},
		{`C:C\+\+:`, []string{"C", `C\+\+`}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SplitList(tc.in), "SplitList(%q)", tc.in)
	}
}

func TestSplitList_NoFixedCapacity(t *testing.T) {
	t.Parallel()

	long := make([]byte, 0, 20000)
	for i := 0; i < 10000; i++ {
		long = append(long, 'x', ':')
	}

	assert.Len(t, SplitList(string(long)), 10000)
}

func TestParseEquivalence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EquivalenceTable{{From: "C", To: "C++"}, {From: "Lua", To: "Vim"}},
		ParseEquivalence([]string{"C", "C++", "Lua", "Vim"}))
	assert.Equal(t, EquivalenceTable{{From: "C", To: "C++"}},
		ParseEquivalence([]string{"C", "C++", "dangling"}))
	assert.Empty(t, ParseEquivalence(nil))
}

func TestParseCount(t *testing.T) {
	t.Parallel()

	n, err := ParseCount("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = ParseCount(" 0 ")
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, bad := range []string{"", "abc", "12x", "-3", "1.5"} {
		_, err := ParseCount(bad)
		require.Error(t, err, bad)
		assert.Equal(t, ExitInvalidInt, ExitCode(err), bad)
	}
}

func TestOrderSpecAndSkipList(t *testing.T) {
	t.Parallel()

	o := OrderSpec("fcm")
	assert.True(t, o.Has('f'))
	assert.True(t, o.Has('m'))
	assert.False(t, o.Has('F'))
	assert.False(t, OrderSpec("").Has('f'))

	s := NewSkipList([]string{"foo", "", "Bar"})
	assert.True(t, s.Has("foo"))
	assert.True(t, s.Has("Bar"))
	assert.False(t, s.Has("bar"))
	assert.False(t, s.Has(""))
}

func TestOptionsNormalized(t *testing.T) {
	t.Parallel()

	o := Options{Limit: -5}.normalized()
	assert.NotNil(t, o.Logger)
	assert.Zero(t, o.Limit)
}
