package client

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ResultKind identifies which shape a response body had.
type ResultKind string

const (
	// KindRecord is a single JSON object describing one person.
	KindRecord ResultKind = "record"
	// KindRecordList is a JSON array of person objects.
	KindRecordList ResultKind = "record list"
	// KindAPIError is a JSON object with an "error" property.
	KindAPIError ResultKind = "error"
)

const errorProperty = "error"

// Result is a parsed response body. Only the field that matches Kind is set.
type Result struct {
	Kind    ResultKind
	Record  Person
	Records Persons
	Error   string

	raw ldvalue.Value
}

func (r Result) String() string { return r.raw.JSONString() }

// Raw returns the body as a generic JSON value.
func (r Result) Raw() ldvalue.Value { return r.raw }

// ParseResult decides which shape the body has by looking at it: an array is a record list,
// an object with an "error" property is an error, and any other object is a single record.
func ParseResult(data []byte) (Result, error) {
	var value ldvalue.Value
	if err := json.Unmarshal(data, &value); err != nil {
		return Result{}, fmt.Errorf("malformed JSON in response body: %q", truncate(string(data)))
	}
	result := Result{raw: value}

	switch value.Type() {
	case ldvalue.ArrayType:
		result.Kind = KindRecordList
		result.Records = make(Persons, 0, value.Count())
		for i := 0; i < value.Count(); i++ {
			item := value.GetByIndex(i)
			if item.Type() != ldvalue.ObjectType {
				return Result{}, fmt.Errorf("element %d of response array is not an object: %s", i, item.JSONString())
			}
			result.Records = append(result.Records, personFromValue(item))
		}
	case ldvalue.ObjectType:
		if e := value.GetByKey(errorProperty); e.Type() != ldvalue.NullType {
			result.Kind = KindAPIError
			result.Error = e.StringValue()
		} else {
			result.Kind = KindRecord
			result.Record = personFromValue(value)
		}
	default:
		return Result{}, fmt.Errorf("response body is neither an object nor an array: %s", value.JSONString())
	}
	return result, nil
}

func truncate(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	end := max
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end] + "..."
}
