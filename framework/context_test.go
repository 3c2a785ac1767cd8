package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	started  []string
	finished []string
	failed   []string
	skipped  map[string]string
	errors   []string
}

func newRecordingTestLogger() *recordingTestLogger {
	return &recordingTestLogger{skipped: make(map[string]string)}
}

func (r *recordingTestLogger) TestStarted(id TestID) { r.started = append(r.started, id.String()) }

func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.errors = append(r.errors, err.Error())
}

func (r *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	r.finished = append(r.finished, id.String())
	if failed {
		r.failed = append(r.failed, id.String())
	}
}

func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.skipped[id.String()] = reason
}

func resultNames(results []TestResult) []string {
	var ret []string
	for _, r := range results {
		ret = append(ret, r.TestID.String())
	}
	return ret
}

func TestRunRecordsSubtestsButNotRoot(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Run("b", func(c *Context) {})
		})
	})
	assert.Equal(t, []string{"a/b", "a"}, resultNames(results.Tests))
	assert.True(t, results.OK())
}

func TestErrorfFailsTestButContinues(t *testing.T) {
	reachedEnd := false
	logger := newRecordingTestLogger()
	results := Run(nil, logger, func(c *Context) {
		c.Run("failing", func(c *Context) {
			c.Errorf("first problem: %d", 1)
			c.Errorf("second problem")
			reachedEnd = true
		})
		c.Run("passing", func(c *Context) {})
	})

	assert.True(t, reachedEnd)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "failing", results.Failures[0].TestID.String())
	assert.Len(t, results.Failures[0].Errors, 2)
	assert.Equal(t, []string{"first problem: 1", "second problem"}, logger.errors)
	assert.Equal(t, []string{"failing"}, logger.failed)
}

func TestFailNowStopsOnlyCurrentTest(t *testing.T) {
	reachedEnd, ranNext := false, false
	results := Run(nil, nil, func(c *Context) {
		c.Run("stops", func(c *Context) {
			c.Errorf("fatal")
			c.FailNow()
			reachedEnd = true
		})
		c.Run("next", func(c *Context) { ranNext = true })
	})

	assert.False(t, reachedEnd)
	assert.True(t, ranNext)
	assert.Equal(t, []string{"stops"}, resultNames(results.Failures))
}

func TestFailNowWithoutMessageAddsOne(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("silent", func(c *Context) { c.FailNow() })
	})
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, "test failed with no failure message", results.Failures[0].Errors[0].Error())
}

func TestUnexpectedPanicIsReportedAsFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) { panic(errors.New("boom")) })
	})
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: boom")
}

func TestSkipWithReason(t *testing.T) {
	logger := newRecordingTestLogger()
	results := Run(nil, logger, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not today")
			c.Errorf("should not get here")
		})
	})

	assert.True(t, results.OK())
	require.Len(t, results.Tests, 1)
	assert.True(t, results.Tests[0].Skipped)
	assert.Equal(t, "not today", results.Tests[0].SkipReason)
	assert.Equal(t, "not today", logger.skipped["skipped"])
	assert.Empty(t, logger.finished)
}

func TestFilterExcludesTest(t *testing.T) {
	ran := false
	logger := newRecordingTestLogger()
	filter := func(id TestID) bool { return id.String() != "excluded" }
	results := Run(filter, logger, func(c *Context) {
		c.Run("excluded", func(c *Context) { ran = true })
		c.Run("included", func(c *Context) {})
	})

	assert.False(t, ran)
	assert.Equal(t, []string{"included"}, resultNames(results.Tests))
	assert.Equal(t, "excluded by filter parameters", logger.skipped["excluded"])
	assert.Equal(t, []string{"excluded", "included"}, logger.started)
}

func TestDebugOutputIsPassedToTestLogger(t *testing.T) {
	var captured CapturedOutput
	logger := &capturingTestLogger{onFinished: func(out CapturedOutput) { captured = out }}
	Run(nil, logger, func(c *Context) {
		c.Run("debug", func(c *Context) {
			c.Debug("hello %s", "world")
			c.DebugLogger().Printf("second")
		})
	})
	require.Len(t, captured, 2)
	assert.Equal(t, "hello world", captured[0].Message)
	assert.Equal(t, "second", captured[1].Message)
}

type capturingTestLogger struct {
	nullTestLogger
	onFinished func(CapturedOutput)
}

func (c *capturingTestLogger) TestFinished(id TestID, failed bool, out CapturedOutput) {
	c.onFinished(out)
}

func TestReformatErrorRemovesTestifyTrace(t *testing.T) {
	err := errors.New("\n\tError Trace:\t/some/file.go:12\n\t            \t/other/file.go:34\n" +
		"\tError:      \tNot equal: \n\t            \texpected: 200\n\t            \tactual  : 400\n" +
		"\tMessages:   \tunexpected status\n")
	assert.Equal(t,
		"Error:      \tNot equal: \n            \texpected: 200\n            \tactual  : 400\nMessages:   \tunexpected status",
		reformatError(err).Error())
}

func TestReformatErrorLeavesPlainMessageAlone(t *testing.T) {
	err := errors.New("field \"name\" was null or missing")
	assert.Equal(t, err, reformatError(err))
}
