package client

import (
	"sort"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Field names of a person record.
const (
	FieldName    = "name"
	FieldSurname = "surname"
	FieldGender  = "gender"
	FieldRegion  = "region"
)

// AllFields lists every field of a person record, in the order the service documents them.
var AllFields = []string{FieldName, FieldSurname, FieldGender, FieldRegion}

// Person is one generated person. A field that was null, missing, or not a string in the
// JSON is undefined.
type Person struct {
	Name    ldvalue.OptionalString
	Surname ldvalue.OptionalString
	Gender  ldvalue.OptionalString
	Region  ldvalue.OptionalString
}

func personFromValue(v ldvalue.Value) Person {
	return Person{
		Name:    optionalStringProperty(v, FieldName),
		Surname: optionalStringProperty(v, FieldSurname),
		Gender:  optionalStringProperty(v, FieldGender),
		Region:  optionalStringProperty(v, FieldRegion),
	}
}

func optionalStringProperty(v ldvalue.Value, key string) ldvalue.OptionalString {
	p := v.GetByKey(key)
	if p.Type() != ldvalue.StringType {
		return ldvalue.OptionalString{}
	}
	return ldvalue.NewOptionalString(p.StringValue())
}

// Field returns the named field, or an undefined value for an unknown name.
func (p Person) Field(name string) ldvalue.OptionalString {
	switch name {
	case FieldName:
		return p.Name
	case FieldSurname:
		return p.Surname
	case FieldGender:
		return p.Gender
	case FieldRegion:
		return p.Region
	default:
		return ldvalue.OptionalString{}
	}
}

// MissingFields returns the names of the fields that are undefined.
func (p Person) MissingFields() []string {
	var ret []string
	for _, f := range AllFields {
		if !p.Field(f).IsDefined() {
			ret = append(ret, f)
		}
	}
	return ret
}

func (p Person) FullName() string {
	return p.Name.StringValue() + " " + p.Surname.StringValue()
}

// Persons is the list of records from a single response.
type Persons []Person

func (ps Persons) FullNames() []string {
	ret := make([]string, 0, len(ps))
	for _, p := range ps {
		ret = append(ret, p.FullName())
	}
	return ret
}

// DuplicateFullNames returns every full name that occurs more than once, sorted.
func (ps Persons) DuplicateFullNames() []string {
	counts := make(map[string]int)
	for _, name := range ps.FullNames() {
		counts[name]++
	}
	var ret []string
	for name, n := range counts {
		if n > 1 {
			ret = append(ret, name)
		}
	}
	sort.Strings(ret)
	return ret
}

// DistinctRegions returns the set of region values, sorted. An undefined region counts as "".
func (ps Persons) DistinctRegions() []string {
	return ps.distinct(FieldRegion)
}

// DistinctGenders returns the set of gender values, sorted. An undefined gender counts as "".
func (ps Persons) DistinctGenders() []string {
	return ps.distinct(FieldGender)
}

func (ps Persons) distinct(field string) []string {
	seen := make(map[string]struct{})
	for _, p := range ps {
		seen[p.Field(field).StringValue()] = struct{}{}
	}
	ret := make([]string, 0, len(seen))
	for v := range seen {
		ret = append(ret, v)
	}
	sort.Strings(ret)
	return ret
}
