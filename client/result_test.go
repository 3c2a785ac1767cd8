package client

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleRecord(t *testing.T) {
	r, err := ParseResult([]byte(`{"name":"Ana","surname":"Pop","gender":"female","region":"Romania"}`))
	require.NoError(t, err)

	assert.Equal(t, KindRecord, r.Kind)
	assert.Equal(t, "Ana", r.Record.Name.StringValue())
	assert.Equal(t, "Pop", r.Record.Surname.StringValue())
	assert.Equal(t, "female", r.Record.Gender.StringValue())
	assert.Equal(t, "Romania", r.Record.Region.StringValue())
	assert.Empty(t, r.Record.MissingFields())
	assert.Nil(t, r.Records)
}

func TestParseRecordWithNullAndMissingFields(t *testing.T) {
	r, err := ParseResult([]byte(`{"name":"Ana","surname":null,"gender":7}`))
	require.NoError(t, err)

	assert.Equal(t, KindRecord, r.Kind)
	assert.Equal(t, []string{FieldSurname, FieldGender, FieldRegion}, r.Record.MissingFields())
}

func TestParseRecordList(t *testing.T) {
	r, err := ParseResult([]byte(`[{"name":"A","surname":"B","gender":"male","region":"Germany"},` +
		`{"name":"C","surname":"D","gender":"male","region":"Germany"}]`))
	require.NoError(t, err)

	assert.Equal(t, KindRecordList, r.Kind)
	require.Len(t, r.Records, 2)
	assert.Equal(t, []string{"A B", "C D"}, r.Records.FullNames())
}

func TestParseEmptyRecordList(t *testing.T) {
	r, err := ParseResult([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, KindRecordList, r.Kind)
	assert.Len(t, r.Records, 0)
}

func TestParseAPIError(t *testing.T) {
	r, err := ParseResult([]byte(`{"error":"Invalid gender"}`))
	require.NoError(t, err)

	assert.Equal(t, KindAPIError, r.Kind)
	assert.Equal(t, "Invalid gender", r.Error)
	assert.Equal(t, `{"error":"Invalid gender"}`, r.String())
}

func TestParseRejectsOtherShapes(t *testing.T) {
	for _, body := range []string{`"just a string"`, `42`, `null`, `not json`, `[1, 2]`, ``} {
		t.Run(body, func(t *testing.T) {
			_, err := ParseResult([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestParseArrayOfRecordsReadsEveryElement(t *testing.T) {
	r, err := ParseResult([]byte(`[{"name":"A","surname":"X","gender":"male","region":"Germany"},` +
		`{"name":"B","surname":"Y","gender":"female","region":"Germany"}]`))
	require.NoError(t, err)

	require.Len(t, r.Records, 2)
	assert.Equal(t, "A", r.Records[0].Name.StringValue())
	assert.Equal(t, "B", r.Records[1].Name.StringValue())
	assert.Equal(t, []string{"female", "male"}, r.Records.DistinctGenders())
}

func TestMalformedBodyIsTruncatedOnRuneBoundary(t *testing.T) {
	body := strings.Repeat("a", 199) + strings.Repeat("ț", 10)
	_, err := ParseResult([]byte(body))
	require.Error(t, err)

	assert.True(t, utf8.ValidString(err.Error()), "error message was not valid UTF-8: %q", err.Error())
	assert.Contains(t, err.Error(), strings.Repeat("a", 199)+`..."`)
}

func TestTruncateKeepsShortStrings(t *testing.T) {
	assert.Equal(t, "ț", truncate("ț"))
	assert.Equal(t, strings.Repeat("ț", 100)+"...", truncate(strings.Repeat("ț", 150)))
}
