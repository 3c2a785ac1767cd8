package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the framework-level state of one test or subtest. It is similar to testing.T,
// but runs outside of the Go test runner.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run executes the root of a test tree and returns the accumulated results. The root itself
// is not reported as a test; only the subtests started with Context.Run are.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				c.record(started)
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		c.record(started)
	}()

	action(c)
}

func (c *Context) record(started time.Time) {
	if len(c.id.Path) == 0 {
		return
	}
	result := TestResult{
		TestID:     c.id,
		Errors:     c.errors,
		Skipped:    c.skipped,
		SkipReason: c.skipReason,
		Duration:   time.Since(started),
	}
	c.env.results.Tests = append(c.env.results.Tests, result)
	if c.failed {
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run starts a subtest. The subtest is reported as skipped without being executed if the
// filter excludes it.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := reformatError(fmt.Errorf(format, args...))
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError strips the "Error Trace" block from testify failure messages. The trace
// only ever points into the assertion helpers, so it is noise in the report.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	var kept []string
	inTrace := false
	for _, line := range lines {
		if strings.HasPrefix(line, "\t") && len(line) > 1 && line[1] != ' ' {
			inTrace = strings.HasPrefix(line, "\tError Trace:")
		}
		if inTrace {
			continue
		}
		line = strings.TrimPrefix(line, "\t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) == len(lines) {
		return err
	}
	return errors.New(strings.Join(kept, "\n"))
}
