package namestests

import (
	"context"
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uinames/names-contract-tests/client"
	"github.com/uinames/names-contract-tests/framework"
)

// ContentTypeJSON is the exact Content-Type the service documents for every JSON response.
const ContentTypeJSON = "application/json; charset=utf-8"

const mediaTypeJSON = "application/json"

// Options are settings that apply to the whole test run.
type Options struct {
	// StrictChecks enables tests that compare returned values with the requested ones. The
	// service documents that behavior, but it was never part of the checked contract, so
	// those tests are skipped unless this is set.
	StrictChecks bool
}

type environment struct {
	harness *framework.TestHarness
	options Options
}

// T represents a test or subtest in the names service test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, and with some extra features such as debug logging that are convenient for
// our use case. Those features are provided by our lower-level framework package.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it were
// a *testing.T. The Require methods below fail the test and exit immediately if the response does not
// even have the expected shape, since nothing after that point could be checked meaningfully.
type T struct {
	context *framework.Context
	env     *environment
	client  *client.Client
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{
		context: context,
		env:     env,
		client:  client.New(env.harness.ServiceURL(), env.harness.HTTPClient(), context.DebugLogger()),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// ID returns the full path of the current test.
func (t *T) ID() framework.TestID {
	return t.context.ID()
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// RequireStrictChecks skips this test unless strict value checks were enabled for the run.
func (t *T) RequireStrictChecks() {
	if !t.env.options.StrictChecks {
		t.context.SkipWithReason("strict value checks are not enabled")
	}
}

// Get sends one request to the service. A network error fails the test immediately; there is
// no retry.
func (t *T) Get(params client.Params) *client.Response {
	resp, err := t.client.Get(context.Background(), params)
	require.NoError(t, err, "request with %s did not get a response", params)
	return resp
}

// RequireStatus fails the test immediately if the status code is not the expected one.
func (t *T) RequireStatus(resp *client.Response, expected int) {
	if resp.StatusCode != expected {
		require.Fail(t, "unexpected status code",
			"expected %d but got %q; body: %s", expected, resp.StatusLine(), string(resp.Body))
	}
}

// AssertStatusLine checks that the status line contains the expected text.
func (t *T) AssertStatusLine(resp *client.Response, expectedText string) bool {
	return assert.Contains(t, resp.StatusLine(), expectedText, "status line did not contain %q", expectedText)
}

// AssertExactContentType checks the whole Content-Type header, parameters included.
func (t *T) AssertExactContentType(resp *client.Response) bool {
	return assert.Equal(t, ContentTypeJSON, resp.ContentType(), "incorrect Content-Type header")
}

// AssertJSONContentType checks only that the media type is JSON, ignoring parameters such as
// the charset.
func (t *T) AssertJSONContentType(resp *client.Response) bool {
	return assert.Equal(t, mediaTypeJSON, resp.MediaType(), "Content-Type %q is not JSON", resp.ContentType())
}

func (t *T) requireResult(resp *client.Response, kind client.ResultKind) client.Result {
	result, err := resp.Result()
	require.NoError(t, err)
	if result.Kind != kind {
		require.Fail(t, "response body had the wrong shape",
			"expected a %s but got a %s: %s", kind, result.Kind, result)
	}
	return result
}

// RequireRecord parses the body as a single person record.
func (t *T) RequireRecord(resp *client.Response) client.Person {
	return t.requireResult(resp, client.KindRecord).Record
}

// RequireRecordList parses the body as a list of person records.
func (t *T) RequireRecordList(resp *client.Response) client.Persons {
	return t.requireResult(resp, client.KindRecordList).Records
}

// RequireAPIError parses the body as an error object and returns the error message.
func (t *T) RequireAPIError(resp *client.Response) string {
	return t.requireResult(resp, client.KindAPIError).Error
}

// AssertFieldsPresent checks that each of the named fields is a non-null string.
func (t *T) AssertFieldsPresent(p client.Person, fields ...string) bool {
	ok := true
	for _, f := range fields {
		if !p.Field(f).IsDefined() {
			t.Errorf("field %q was null or missing", f)
			ok = false
		}
	}
	return ok
}

// AssertAllRecordsComplete checks every record of a list for missing fields.
func (t *T) AssertAllRecordsComplete(ps client.Persons) bool {
	var problems []string
	for i, p := range ps {
		if missing := p.MissingFields(); len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("record %d is missing %s", i, strings.Join(missing, ", ")))
		}
	}
	if len(problems) > 0 {
		t.Errorf("%s", strings.Join(problems, "\n"))
		return false
	}
	return true
}
