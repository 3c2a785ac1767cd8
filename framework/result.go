package framework

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID     TestID
	Errors     []error
	Skipped    bool
	SkipReason string
	Duration   time.Duration
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of passed, failed, and skipped tests.
func (r Results) Counts() (passed, failed, skipped int) {
	failed = len(r.Failures)
	for _, t := range r.Tests {
		if t.Skipped {
			skipped++
		}
	}
	passed = len(r.Tests) - failed - skipped
	return
}

type TestID struct {
	Path []string
}

// Plus returns the ID of a subtest of this test.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a summary table of every test that ran, followed by the errors of
// each failed test.
func PrintResults(w io.Writer, results Results) {
	width := 0
	for _, t := range results.Tests {
		if n := runewidth.StringWidth(t.TestID.String()); n > width {
			width = n
		}
	}

	failed := make(map[string]bool, len(results.Failures))
	for _, f := range results.Failures {
		failed[f.TestID.String()] = true
	}

	for _, t := range results.Tests {
		name := t.TestID.String()
		status := "PASS"
		switch {
		case failed[name]:
			status = "FAIL"
		case t.Skipped:
			status = "SKIP"
		}
		fmt.Fprintf(w, "  %s %s  %s\n", runewidth.FillRight(name, width), status, t.Duration.Round(time.Millisecond))
	}

	passed, failures, skipped := results.Counts()
	fmt.Fprintf(w, "\n%d passed, %d failed, %d skipped\n", passed, failures, skipped)

	if len(results.Failures) > 0 {
		fmt.Fprintln(w, "\nFailures:")
		for _, f := range results.Failures {
			fmt.Fprintf(w, "[%s]\n", f.TestID)
			for _, err := range f.Errors {
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintf(w, "  %s\n", line)
				}
			}
		}
	}
}
