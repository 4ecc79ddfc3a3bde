package advisor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/1dhruvsingh/ResumeAI/career/resume"
	"github.com/1dhruvsingh/ResumeAI/internal/ai/advisor"
	"github.com/1dhruvsingh/ResumeAI/internal/ai/llm"
	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (g *recordingGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func sampleDocument() resume.Document {
	return resume.Document{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "555-0100",
			Location: "London",
		},
		Summary: "Analyst.",
		WorkExperience: []resume.WorkExperience{
			{
				Title:       "Engineer",
				Company:     "Analytical Engines",
				StartDate:   "1842",
				EndDate:     "1843",
				Description: resume.Lines{"Wrote notes", "Designed algorithm"},
			},
			{Title: "Tutor", Company: "Self", StartDate: "1840", EndDate: "1842"},
		},
		Education: []resume.Education{
			{Degree: "Mathematics", Institution: "Home", GraduationDate: "1835"},
		},
		Skills: []string{"Math", "Poetry"},
	}
}

const sampleResumeText = "\n" +
	"    # Ada Lovelace\n" +
	"    Email: ada@example.com\n" +
	"    Phone: 555-0100\n" +
	"    Location: London\n" +
	"    \n" +
	"    ## Summary\n" +
	"    Analyst.\n" +
	"    \n" +
	"    ## Experience\n" +
	"    Engineer at Analytical Engines, 1842 - 1843: Wrote notes Designed algorithm Tutor at Self, 1840 - 1842: \n" +
	"    \n" +
	"    ## Education\n" +
	"    Mathematics from Home, 1835\n" +
	"    \n" +
	"    ## Skills\n" +
	"    Math, Poetry\n" +
	"    "

func TestRenderResume(t *testing.T) {
	text, err := advisor.RenderResume(sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, sampleResumeText, text)
}

func TestExtractKeywords_Prompt(t *testing.T) {
	gen := &recordingGenerator{reply: `["Go", "Kubernetes"]`}
	a := advisor.New(gen)

	keywords, err := a.ExtractKeywords(context.Background(), "Go dev")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes"}, keywords)

	require.Len(t, gen.prompts, 1)
	assert.Equal(t, "\n"+
		"    Extract the top 10 most important keywords from this job description. \n"+
		"    Focus on skills, qualifications, and technologies.\n"+
		"    Return only a JSON array of strings.\n"+
		"    \n"+
		"    Job Description:\n"+
		"    Go dev\n"+
		"    ", gen.prompts[0])
}

func TestExtractKeywords_ProviderFailure(t *testing.T) {
	a := advisor.New(&recordingGenerator{err: errors.New("connection refused")})

	_, err := a.ExtractKeywords(context.Background(), "Go dev")
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, advisor.CodeProviderFailed))
}

func TestAnalyzeResume_WithJobDescription(t *testing.T) {
	gen := &recordingGenerator{reply: `{
		"score": {"overall": 82, "content": 80, "keywords": 75, "format": 90},
		"analysis": {"atsCompatibility": ["ok"], "grammarIssues": [], "sentimentFeedback": ["confident"]},
		"keywords": {"found": ["Go"], "missing": ["Kubernetes"]},
		"suggestions": ["Add metrics"]
	}`}
	a := advisor.New(gen)

	report, err := a.AnalyzeResume(context.Background(), sampleDocument(), "Senior Go engineer")
	require.NoError(t, err)

	assert.Equal(t, advisor.Points(82), report.Score.Overall)
	assert.Equal(t, advisor.Points(90), report.Score.Format)
	require.NotNil(t, report.Keywords)
	assert.Equal(t, []string{"Go"}, report.Keywords.Found)
	assert.Equal(t, []string{"Kubernetes"}, report.Keywords.Missing)
	assert.Equal(t, []string{}, report.Analysis.GrammarIssues)
	assert.Equal(t, []string{"Add metrics"}, report.Suggestions)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Analyze this resume against the job description.")
	assert.Contains(t, prompt, "        Resume:\n        "+sampleResumeText+"\n")
	assert.Contains(t, prompt, "        Job Description:\n        Senior Go engineer\n        ")
	assert.Contains(t, prompt, `"missing": [<important keywords from job description missing in resume>]`)
}

func TestAnalyzeResume_WithoutJobDescription(t *testing.T) {
	gen := &recordingGenerator{reply: "not json at all"}
	a := advisor.New(gen)

	report, err := a.AnalyzeResume(context.Background(), sampleDocument(), "")
	require.NoError(t, err)
	assert.Equal(t, advisor.FallbackReport(), report)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Analyze this resume and provide detailed feedback")
	assert.NotContains(t, gen.prompts[0], "Job Description:")
	assert.NotContains(t, gen.prompts[0], `"found"`)
}

func TestAnalyzeResume_ProviderFailure(t *testing.T) {
	a := advisor.New(&recordingGenerator{err: errors.New("quota exceeded")})

	_, err := a.AnalyzeResume(context.Background(), sampleDocument(), "")
	assert.True(t, errx.IsCode(err, advisor.CodeProviderFailed))
}

func TestChat(t *testing.T) {
	gen := &recordingGenerator{reply: "  Quantify your impact.\n"}
	a := advisor.New(gen)

	history := []advisor.ChatMessage{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	reply, err := a.Chat(context.Background(), "How do I improve my summary?", sampleDocument(), history)
	require.NoError(t, err)
	assert.Equal(t, "  Quantify your impact.\n", reply)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "    User's Resume:\n    "+sampleResumeText+"\n")
	assert.Contains(t, prompt, "    Previous conversation:\n    User: hi\nAI: hello\n")
	assert.Contains(t, prompt, "    User's latest message: How do I improve my summary?\n")
}

func TestAdvisorAcceptsGeneratorFunc(t *testing.T) {
	a := advisor.New(llm.GeneratorFunc(func(context.Context, string) (string, error) {
		return "Go, Docker", nil
	}))

	keywords, err := a.ExtractKeywords(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Docker"}, keywords)
}
