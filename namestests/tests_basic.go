package namestests

import (
	"net/http"

	"github.com/uinames/names-contract-tests/client"
)

func DoBasicTests(t *T) {
	t.Run("no parameters", func(t *T) {
		requireCompleteSingleRecord(t)
	})

	// Names are random, so a repeated request is only expected to satisfy the same
	// contract, not to return the same person.
	t.Run("repeated request", func(t *T) {
		first := requireCompleteSingleRecord(t)
		second := requireCompleteSingleRecord(t)
		t.Debug("first: %s, second: %s", first.FullName(), second.FullName())
	})
}

func requireCompleteSingleRecord(t *T) client.Person {
	resp := t.Get(client.Params{})
	t.RequireStatus(resp, http.StatusOK)
	t.AssertExactContentType(resp)
	person := t.RequireRecord(resp)
	t.AssertFieldsPresent(person, client.AllFields...)
	return person
}
