package neotags

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(name, kind, lang string) string {
	return name + "\tsrc/" + name + ".c\t/^int " + name + "(void)$/;\"\t" + kind + "\tlanguage:" + lang
}

func TestBuildPattern_Groups(t *testing.T) {
	t.Parallel()

	re, err := BuildPattern("Go", nil)
	require.NoError(t, err)

	m := re.FindStringSubmatch(line("Marshal", "f", "Go") + "\ttyperef:func")
	require.Len(t, m, 4)
	assert.Equal(t, "Marshal", m[1])
	assert.Equal(t, "f", m[2])
	assert.Equal(t, "Go", m[3])
}

func TestBuildPattern_Matching(t *testing.T) {
	t.Parallel()

	cases := []struct {
		lang   string
		record string
		want   string // captured language, "" = no match
	}{
		{"C", line("foo", "f", "C"), "C"},
		{"C", line("foo", "f", "C++"), "C++"},
		{"C++", line("foo", "f", "C"), "C"},
		{`C\+\+`, line("foo", "f", "C++"), "C++"},
		{"c", line("foo", "f", "C"), "C"},
		{"C", line("foo", "f", "c++"), "c++"},
		{"Python", line("foo", "f", "python"), "python"},

		// the language group ends at a tab or end of line
		{"C", line("foo", "f", "CSS"), ""},
		{"Java", line("foo", "f", "JavaScript"), ""},
		{"C", line("foo", "f", "Python"), ""},

		// malformed records
		{"C", "foo\tf.c\t42;\"\tf\tlanguage:C", ""},
		{"C", "foo\tf.c\t/^int foo/;\"\tfn\tlanguage:C", ""},
		{"C", "foo\t/^int foo/;\"\tf\tlanguage:C", ""},
		{"C", "", ""},
	}

	for _, tc := range cases {
		re, err := BuildPattern(tc.lang, nil)
		require.NoError(t, err, tc.lang)

		m := re.FindStringSubmatch(tc.record)
		if tc.want == "" {
			assert.Nil(t, m, "lang=%q record=%q", tc.lang, tc.record)
			continue
		}

		require.NotNil(t, m, "lang=%q record=%q", tc.lang, tc.record)
		assert.Equal(t, tc.want, m[3], "lang=%q record=%q", tc.lang, tc.record)
	}
}

func TestBuildPattern_EquivalenceClass(t *testing.T) {
	t.Parallel()

	rec := line("render", "f", "TypeScript")

	re, err := BuildPattern("JavaScript", nil)
	require.NoError(t, err)
	assert.False(t, re.MatchString(rec), "alias must not match without a table")

	equiv := EquivalenceTable{{From: "TypeScript", To: "javascript"}, {From: "Go", To: "Rust"}}
	re, err = BuildPattern("JavaScript", equiv)
	require.NoError(t, err)

	m := re.FindStringSubmatch(rec)
	require.NotNil(t, m)
	assert.Equal(t, "TypeScript", m[3])
	assert.False(t, re.MatchString(line("main", "f", "Go")))
}

func TestBuildPattern_AliasIsLiteral(t *testing.T) {
	t.Parallel()

	re, err := BuildPattern("C#", EquivalenceTable{{From: "F.", To: "C#"}})
	require.NoError(t, err)

	assert.True(t, re.MatchString(line("x", "f", "F.")))
	assert.False(t, re.MatchString(line("x", "f", "FS")))
}

func TestBuildPattern_CompileError(t *testing.T) {
	t.Parallel()

	_, err := BuildPattern("C(", nil)
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindPattern, e.Kind)
	assert.Equal(t, ExitPattern, ExitCode(err))
	assert.Contains(t, err.Error(), `"C("`)
}

func TestBuildPattern_GroupLayout(t *testing.T) {
	t.Parallel()

	for _, lang := range []string{`Go)|(x`, `(Go)`, `Go)(x`} {
		_, err := BuildPattern(lang, nil)
		require.Error(t, err, lang)
		assert.Equal(t, ExitPattern, ExitCode(err), lang)
		assert.Contains(t, err.Error(), "want 3", lang)
	}

	_, err := Select([]string{"junk x"}, "junk", Options{Lang: `Go)|(x`, Order: "f"})
	require.Error(t, err)
	assert.Equal(t, ExitPattern, ExitCode(err))
}

func TestLangFragment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cFamily, langFragment("C", nil))
	assert.Equal(t, cFamily, langFragment(`c\+\+`, EquivalenceTable{{From: "C", To: "C++"}}))
	assert.Equal(t, "Go", langFragment("Go", EquivalenceTable{{From: "go", To: "Go"}}))
	assert.Equal(t, `(?:Vim|Lua|C\+\+)`, langFragment("Vim", EquivalenceTable{
		{From: "Lua", To: "vim"},
		{From: "lua", To: "Vim"},
		{From: "C++", To: "Vim"},
	}))
}

func TestCanonLang(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "C++", canonLang(`C\+\+`))
	assert.Equal(t, "C#", canonLang(`C\#`))
	assert.Equal(t, "Go", canonLang("Go"))
}
