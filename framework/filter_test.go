package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testID(path ...string) TestID {
	return TestID{Path: path}
}

func makeFilters(t *testing.T, run, skip []string) RegexFilters {
	var f RegexFilters
	for _, p := range run {
		require.NoError(t, f.MustMatch.Set(p))
	}
	for _, p := range skip {
		require.NoError(t, f.MustNotMatch.Set(p))
	}
	return f
}

func TestEmptyFiltersAllowEverything(t *testing.T) {
	f := makeFilters(t, nil, nil)
	assert.True(t, f.AsFilter(testID("basic")))
	assert.True(t, f.AsFilter(testID("amount", "count matches requested amount")))
}

func TestRunPatternMatchesElementByElement(t *testing.T) {
	f := makeFilters(t, []string{"amount/count"}, nil)

	assert.True(t, f.AsFilter(testID("amount")), "parent must run so that its children can")
	assert.True(t, f.AsFilter(testID("amount", "count matches requested amount")))
	assert.True(t, f.AsFilter(testID("amount", "count matches requested amount", "child")))
	assert.False(t, f.AsFilter(testID("amount", "names are unique")))
	assert.False(t, f.AsFilter(testID("basic")))
}

func TestSkipPatternOnlyExcludesFullMatches(t *testing.T) {
	f := makeFilters(t, nil, []string{"validation/region"})

	assert.True(t, f.AsFilter(testID("validation")))
	assert.True(t, f.AsFilter(testID("validation", "invalid gender")))
	assert.False(t, f.AsFilter(testID("validation", "invalid region")))
}

func TestMultiplePatternsAreAlternatives(t *testing.T) {
	f := makeFilters(t, []string{"^basic$", "^validation$"}, nil)

	assert.True(t, f.AsFilter(testID("basic", "no parameters")))
	assert.True(t, f.AsFilter(testID("validation", "invalid gender")))
	assert.False(t, f.AsFilter(testID("amount")))
}

func TestInvalidRegexIsRejected(t *testing.T) {
	var r RegexList
	assert.Error(t, r.Set("basic/(unclosed"))
	assert.False(t, r.IsDefined())
}

func TestRunPatternSelectsExactlyOneTest(t *testing.T) {
	id := testID("amount", "names are unique")
	f := makeFilters(t, []string{RunPattern(id)}, nil)

	assert.Equal(t, "^amount$/^names are unique$", RunPattern(id))
	assert.True(t, f.AsFilter(id))
	assert.False(t, f.AsFilter(testID("amount", "names are unique too")))
	assert.False(t, f.AsFilter(testID("amounts")))
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, makeFilters(t, []string{"basic"}, []string{"amount"}), true)
	assert.Contains(t, buf.String(), `skip any not matching "basic"`)
	assert.Contains(t, buf.String(), `skip any matching "amount"`)
	assert.NotContains(t, buf.String(), "Strict value checks")

	buf.Reset()
	PrintFilterDescription(&buf, RegexFilters{}, false)
	assert.Contains(t, buf.String(), "Strict value checks are disabled")
}

func TestSourcesReturnsPatternsAsGiven(t *testing.T) {
	var r RegexList
	require.NoError(t, r.Set("a/b c"))
	require.NoError(t, r.Set("^x$"))

	assert.Equal(t, []string{"a/b c", "^x$"}, r.Sources())
}
