package namestests

import (
	"net/http"

	"github.com/stretchr/testify/assert"

	"github.com/uinames/names-contract-tests/client"
)

const invalidValue = "hello"

func DoValidationTests(t *T) {
	t.Run("invalid gender", func(t *T) {
		resp := t.Get(client.Params{}.WithGender(invalidValue))
		t.RequireStatus(resp, http.StatusBadRequest)
		t.AssertStatusLine(resp, "Bad Request")
		assert.Equal(t, "Invalid gender", t.RequireAPIError(resp), "incorrect error message")
	})

	t.Run("invalid region", func(t *T) {
		resp := t.Get(client.Params{}.WithRegion(invalidValue))
		t.RequireStatus(resp, http.StatusBadRequest)
		t.AssertJSONContentType(resp)
		assert.Equal(t, "Region or language not found", t.RequireAPIError(resp), "incorrect error message")
	})
}
