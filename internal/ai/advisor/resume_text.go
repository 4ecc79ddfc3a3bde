package advisor

import (
	"fmt"
	"strings"

	"github.com/1dhruvsingh/ResumeAI/career/resume"
)

type resumePromptData struct {
	FullName   string
	Email      string
	Phone      string
	Location   string
	Summary    string
	Experience string
	Education  string
	Skills     string
}

// RenderResume produces the plain-text view of a resume that prompts embed.
func RenderResume(doc resume.Document) (string, error) {
	jobs := make([]string, 0, len(doc.WorkExperience))
	for _, job := range doc.WorkExperience {
		jobs = append(jobs, fmt.Sprintf("%s at %s, %s - %s: %s",
			job.Title, job.Company, job.StartDate, job.EndDate, strings.Join(job.Description, " ")))
	}

	schools := make([]string, 0, len(doc.Education))
	for _, edu := range doc.Education {
		schools = append(schools, fmt.Sprintf("%s from %s, %s", edu.Degree, edu.Institution, edu.GraduationDate))
	}

	return render(resumeTemplate, resumePromptData{
		FullName:   doc.PersonalInfo.FullName,
		Email:      doc.PersonalInfo.Email,
		Phone:      doc.PersonalInfo.Phone,
		Location:   doc.PersonalInfo.Location,
		Summary:    doc.Summary,
		Experience: strings.Join(jobs, " "),
		Education:  strings.Join(schools, " "),
		Skills:     strings.Join(doc.Skills, ", "),
	})
}
