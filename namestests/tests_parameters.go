package namestests

import (
	"net/http"

	"github.com/stretchr/testify/assert"

	"github.com/uinames/names-contract-tests/client"
)

const (
	validGender = "male"
	validRegion = "Romania"
)

func DoParameterTests(t *T) {
	t.Run("gender", func(t *T) {
		params := client.Params{}.WithGender(validGender)

		resp := t.Get(params)
		t.RequireStatus(resp, http.StatusOK)
		t.AssertJSONContentType(resp)
		person := t.RequireRecord(resp)
		t.AssertFieldsPresent(person, client.FieldGender)

		t.Run("matches requested value", func(t *T) {
			t.RequireStrictChecks()
			assert.Equal(t, validGender, person.Gender.StringValue(), "gender was not the requested one")
		})
	})

	t.Run("region and gender", func(t *T) {
		params := client.Params{}.WithRegion(validRegion).WithGender(validGender)

		resp := t.Get(params)
		t.RequireStatus(resp, http.StatusOK)
		t.AssertExactContentType(resp)
		person := t.RequireRecord(resp)
		t.AssertFieldsPresent(person, client.FieldGender, client.FieldRegion)

		t.Run("match requested values", func(t *T) {
			t.RequireStrictChecks()
			assert.Equal(t, validGender, person.Gender.StringValue(), "gender was not the requested one")
			assert.Equal(t, validRegion, person.Region.StringValue(), "region was not the requested one")
		})
	})
}
