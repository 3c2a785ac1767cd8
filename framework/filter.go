package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter applies the filters. A parent test is allowed to run as long as its path is a
// prefix of something a MustMatch pattern could select; only a complete match against a
// MustNotMatch pattern excludes a test.
func (r RegexFilters) AsFilter(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.anyMatch(id, true)) &&
		!r.MustNotMatch.anyMatch(id, false)
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

// RegexList is a list of test path patterns. As with "go test -run", each pattern is split
// on "/" and every element is matched against the test name at the same depth.
type RegexList struct {
	patterns []pathPattern
}

type pathPattern struct {
	source   string
	elements []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.source+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	p := pathPattern{source: value}
	for _, elem := range strings.Split(value, "/") {
		rx, err := regexp.Compile(elem)
		if err != nil {
			return fmt.Errorf("invalid regex %q: %w", elem, err)
		}
		p.elements = append(p.elements, rx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

// Sources returns the patterns as they were given.
func (r RegexList) Sources() []string {
	ret := make([]string, 0, len(r.patterns))
	for _, p := range r.patterns {
		ret = append(ret, p.source)
	}
	return ret
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) anyMatch(id TestID, allowPartial bool) bool {
	for _, p := range r.patterns {
		if p.match(id, allowPartial) {
			return true
		}
	}
	return false
}

func (p pathPattern) match(id TestID, allowPartial bool) bool {
	if len(id.Path) < len(p.elements) && !allowPartial {
		return false
	}
	for i, rx := range p.elements {
		if i >= len(id.Path) {
			return true
		}
		if !rx.MatchString(id.Path[i]) {
			return false
		}
	}
	return true
}

// PrintFilterDescription tells the user which tests may be skipped in this run and why.
func PrintFilterDescription(w io.Writer, filters RegexFilters, strictChecks bool) {
	if filters.IsDefined() {
		fmt.Fprintln(w, "Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Fprintf(w, "  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Fprintf(w, "  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Fprintln(w)
	}
	if !strictChecks {
		fmt.Fprintln(w, "Strict value checks are disabled; tests that compare returned values with the requested ones will be skipped (use -strict to enable).")
		fmt.Fprintln(w)
	}
}

// RunPattern builds a -run pattern that selects exactly the given test.
func RunPattern(id TestID) string {
	parts := make([]string, 0, len(id.Path))
	for _, p := range id.Path {
		parts = append(parts, "^"+regexp.QuoteMeta(p)+"$")
	}
	return strings.Join(parts, "/")
}
