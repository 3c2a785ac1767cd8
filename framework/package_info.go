// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to the service being tested.
//
// The general model is:
//
// 1. The test harness talks to a remote service whose base URL is fixed for the whole run.
// TestHarness holds that URL and the HTTP client, and checks at startup that the service
// is reachable.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// The domain-specific code that knows what is being tested is responsible for building
// the requests and providing a domain-specific test API on top of the test context.
package framework
