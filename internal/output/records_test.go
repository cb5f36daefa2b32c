package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"leakjar-cli/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRecords = []api.LeakedRecord{
	{Email: "alice@Example.com", Username: "alice", Domain: "example.com", DateCollected: "2024-03-02", HasPassword: true, Source: "stealer-b"},
	{Email: "bob@corp.example.com", Username: "", Domain: "example.com", DateCollected: "2024-01-15T08:30:00Z", HasPassword: false, Source: "stealer-a"},
	{Email: "", Username: "carol", Domain: "mail.example.com", DateCollected: "2024-02-10 12:00:00", HasPassword: true, Source: "stealer-a"},
	{Email: "alice@example.com", Username: "alice", Domain: "example.com", DateCollected: "not a date", HasPassword: false},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{"CSV", FormatCSV, false},
		{" text ", FormatText, false},
		{"", FormatJSON, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWriteRecords_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, sampleRecords[:2], FormatJSON))

	var decoded []api.LeakedRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleRecords[:2], decoded)
}

func TestWriteRecords_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteRecords_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, sampleRecords[:2], FormatCSV))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"email", "username", "domain", "date_collected", "has_password"}, rows[0])
	assert.Equal(t, []string{"alice@Example.com", "alice", "example.com", "2024-03-02", "true"}, rows[1])
	assert.Equal(t, []string{"bob@corp.example.com", "", "example.com", "2024-01-15T08:30:00Z", "false"}, rows[2])
}

func TestWriteRecords_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, sampleRecords[:1], FormatText))
	assert.Equal(t, "alice@Example.com\talice\texample.com\t2024-03-02\tyes\n", buf.String())
}

func TestColumnValues(t *testing.T) {
	tests := []struct {
		column   string
		expected []string
	}{
		{"email", []string{"alice@Example.com", "alice@example.com", "bob@corp.example.com"}},
		{"username", []string{"alice", "carol"}},
		{"DOMAIN", []string{"example.com", "mail.example.com"}},
		{"email_domain", []string{"corp.example.com", "example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			values, err := ColumnValues(sampleRecords, tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, values)
		})
	}
}

func TestColumnValues_Unknown(t *testing.T) {
	_, err := ColumnValues(sampleRecords, "password")
	assert.Error(t, err)
}

func TestWriteColumn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteColumn(&buf, []string{"a", "b"}, FormatText))
	assert.Equal(t, "a\nb\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteColumn(&buf, []string{"a"}, FormatJSON))
	assert.JSONEq(t, `["a"]`, buf.String())
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords)

	assert.Equal(t, 3, s.RecordsWithEmails)
	assert.Equal(t, 3, s.RecordsWithUsernames)
	assert.Equal(t, 2, s.RecordsWithPasswords)
	assert.Equal(t, []string{"stealer-a", "stealer-b"}, s.UniqueSources)
	assert.Equal(t, []string{"example.com", "mail.example.com"}, s.UniqueDomains)
	require.NotNil(t, s.DateRange)
	assert.Equal(t, "2024-01-15", s.DateRange.Earliest)
	assert.Equal(t, "2024-03-02", s.DateRange.Latest)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.RecordsWithEmails)
	assert.Empty(t, s.UniqueSources)
	assert.Nil(t, s.DateRange)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), `"unique_sources":[]`))
	assert.True(t, strings.Contains(string(out), `"date_range":null`))
}
