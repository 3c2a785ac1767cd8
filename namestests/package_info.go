// Package namestests contains the names service contract tests themselves and their
// supporting API.
//
// Test harness infrastructure that is not specific to this service, such as the test
// context, filtering, and result reporting, is in the lower-level framework package. The
// code that actually talks to the service is in the client package.
package namestests
