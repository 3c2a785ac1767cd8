package namestests

import (
	"github.com/uinames/names-contract-tests/framework"
)

func RunTestSuite(
	harness *framework.TestHarness,
	options Options,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{harness: harness, options: options}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, env)

		t.Run("basic", DoBasicTests)
		t.Run("parameters", DoParameterTests)
		t.Run("validation", DoValidationTests)
		t.Run("amount", DoAmountTests)
	})
}
