package namestests

import (
	"net/http"

	"github.com/stretchr/testify/assert"

	"github.com/uinames/names-contract-tests/client"
)

// The service only documents amounts greater than 1; smaller or non-integer amounts are not
// tested.
const (
	requestedAmount = 5
	amountRegion    = "United States"
)

func DoAmountTests(t *T) {
	t.Run("names are unique", func(t *T) {
		params := client.Params{}.WithRegion(amountRegion).WithAmount(requestedAmount)
		people := requireRecordList(t, params)

		assert.Len(t, people, requestedAmount, "wrong number of records")
		assert.Empty(t, people.DuplicateFullNames(), "some name+surname combinations were repeated")
	})

	t.Run("region and gender are homogeneous", func(t *T) {
		params := client.Params{}.WithRegion(amountRegion).WithGender(validGender).WithAmount(requestedAmount)
		people := requireRecordList(t, params)

		assert.Len(t, people.DistinctRegions(), 1, "records had different regions: %v", people.DistinctRegions())
		assert.Len(t, people.DistinctGenders(), 1, "records had different genders: %v", people.DistinctGenders())

		t.Run("match requested values", func(t *T) {
			t.RequireStrictChecks()
			assert.Equal(t, []string{amountRegion}, people.DistinctRegions(), "region was not the requested one")
			assert.Equal(t, []string{validGender}, people.DistinctGenders(), "gender was not the requested one")
		})
	})

	t.Run("count matches requested amount", func(t *T) {
		people := requireRecordList(t, client.Params{}.WithAmount(requestedAmount))

		assert.Len(t, people, requestedAmount, "wrong number of records")
	})
}

func requireRecordList(t *T, params client.Params) client.Persons {
	resp := t.Get(params)
	t.RequireStatus(resp, http.StatusOK)
	t.AssertExactContentType(resp)
	people := t.RequireRecordList(resp)
	t.AssertAllRecordsComplete(people)
	return people
}
