package client

import (
	"net/url"
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	paramGender = "gender"
	paramRegion = "region"
	paramAmount = "amount"
)

// Params contains the optional query parameters of a request. Parameters that are not
// defined are left out of the query string. Values are not validated; the service is the
// authority on what is valid.
type Params struct {
	Gender ldvalue.OptionalString
	Region ldvalue.OptionalString
	Amount ldvalue.OptionalInt
}

// Query returns the parameters in query string form.
func (p Params) Query() url.Values {
	q := make(url.Values)
	if gender, ok := p.Gender.Get(); ok {
		q.Set(paramGender, gender)
	}
	if region, ok := p.Region.Get(); ok {
		q.Set(paramRegion, region)
	}
	if amount, ok := p.Amount.Get(); ok {
		q.Set(paramAmount, strconv.Itoa(amount))
	}
	return q
}

func (p Params) String() string {
	if s := p.Query().Encode(); s != "" {
		return s
	}
	return "(no parameters)"
}

// WithGender returns a copy of the parameters with gender set.
func (p Params) WithGender(gender string) Params {
	p.Gender = ldvalue.NewOptionalString(gender)
	return p
}

// WithRegion returns a copy of the parameters with region set.
func (p Params) WithRegion(region string) Params {
	p.Region = ldvalue.NewOptionalString(region)
	return p
}

// WithAmount returns a copy of the parameters with amount set.
func (p Params) WithAmount(amount int) Params {
	p.Amount = ldvalue.NewOptionalInt(amount)
	return p
}
