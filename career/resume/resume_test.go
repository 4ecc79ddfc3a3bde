package resume

import (
	"encoding/json"
	"testing"

	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmptyData(t *testing.T) {
	tests := map[string]bool{
		``:                  true,
		`   `:               true,
		`null`:              true,
		`{}`:                true,
		`[]`:                true,
		`""`:                true,
		`false`:             true,
		`0`:                 true,
		`{"summary":"x"}`:   false,
		`["x"]`:             false,
		`"text"`:            false,
		`{"summary": null}`: false,
	}
	for raw, want := range tests {
		assert.Equal(t, want, IsEmptyData(json.RawMessage(raw)), "raw %q", raw)
	}
}

func TestNewDefaultsTitle(t *testing.T) {
	r := New(1, "", json.RawMessage(`{"a":1}`))
	assert.Equal(t, DefaultTitle, r.Title)
	assert.EqualValues(t, 1, r.UserID)
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)
}

func TestApplyUpdate(t *testing.T) {
	original := json.RawMessage(`{"a":1}`)
	r := New(1, "Title", original)
	before := r.UpdatedAt

	assert.False(t, r.ApplyUpdate(UpdateResumeRequest{Data: json.RawMessage(`{}`)}))
	assert.Equal(t, before, r.UpdatedAt)

	assert.True(t, r.ApplyUpdate(UpdateResumeRequest{Title: "Renamed"}))
	assert.Equal(t, "Renamed", r.Title)
	assert.Equal(t, original, r.Data)
}

func TestParseDocument(t *testing.T) {
	raw := json.RawMessage(`{
		"personalInfo": {"fullName": "Ada Lovelace", "email": "ada@example.com", "linkedin": "ada"},
		"summary": "Analyst",
		"workExperience": [
			{"title": "Engineer", "company": "Engines", "startDate": "1842", "endDate": "1843", "description": ["Wrote notes", "Designed loops"]},
			{"title": "Writer", "company": "Self", "startDate": "1840", "endDate": "1841", "description": "One line"}
		],
		"education": [{"degree": "Maths", "institution": "Home", "graduationDate": "1835"}],
		"skills": ["Maths", "Writing"],
		"unknown": true
	}`)

	doc, err := ParseDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", doc.PersonalInfo.FullName)
	assert.Equal(t, "ada", doc.PersonalInfo.LinkedIn)
	require.Len(t, doc.WorkExperience, 2)
	assert.Equal(t, Lines{"Wrote notes", "Designed loops"}, doc.WorkExperience[0].Description)
	assert.Equal(t, Lines{"One line"}, doc.WorkExperience[1].Description)
	assert.Equal(t, "Home", doc.Education[0].Institution)
	assert.Equal(t, []string{"Maths", "Writing"}, doc.Skills)
}

func TestParseDocumentEmptyAndInvalid(t *testing.T) {
	doc, err := ParseDocument(nil)
	require.NoError(t, err)
	assert.Equal(t, Document{}, doc)

	_, err = ParseDocument(json.RawMessage(`{"skills": "not a list"}`))
	assert.True(t, errx.IsCode(err, CodeInvalidResumeData))

	_, err = ParseDocument(json.RawMessage(`{"workExperience": [{"description": 3}]}`))
	assert.True(t, errx.IsCode(err, CodeInvalidResumeData))
}
