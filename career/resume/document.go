package resume

import (
	"encoding/json"
	"fmt"
)

// Document is the typed view of a resume's data. Unknown keys are ignored and
// missing keys decode to zero values.
type Document struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
	Achievements   []string         `json:"achievements,omitempty"`
}

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type WorkExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description Lines  `json:"description"`
	IsPresent   bool   `json:"isPresent,omitempty"`
}

type Education struct {
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	Location       string   `json:"location,omitempty"`
	GraduationDate string   `json:"graduationDate"`
	GPA            string   `json:"gpa,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
}

// Lines is a list of text lines that also accepts a single JSON string.
type Lines []string

func (l *Lines) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = Lines{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("description must be a string or a list of strings: %w", err)
	}
	*l = many
	return nil
}

// ParseDocument decodes a resume's raw data.
func ParseDocument(raw json.RawMessage) (Document, error) {
	var doc Document
	if IsEmptyData(raw) {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, ErrInvalidResumeData().WithDetail("reason", err.Error())
	}
	return doc, nil
}
