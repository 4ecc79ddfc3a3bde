package advisor

import (
	_ "embed"
	"strings"
	"text/template"
)

var (
	//go:embed prompts/keywords.tmpl
	keywordsPromptRaw string

	//go:embed prompts/resume.tmpl
	resumePromptRaw string

	//go:embed prompts/analyze.tmpl
	analyzePromptRaw string

	//go:embed prompts/analyze_job.tmpl
	analyzeJobPromptRaw string

	//go:embed prompts/chat.tmpl
	chatPromptRaw string
)

// Parsed once at package init.
var (
	keywordsTemplate   = template.Must(template.New("keywords").Parse(keywordsPromptRaw))
	resumeTemplate     = template.Must(template.New("resume").Parse(resumePromptRaw))
	analyzeTemplate    = template.Must(template.New("analyze").Parse(analyzePromptRaw))
	analyzeJobTemplate = template.Must(template.New("analyze_job").Parse(analyzeJobPromptRaw))
	chatTemplate       = template.Must(template.New("chat").Parse(chatPromptRaw))
)

type keywordsPromptData struct {
	Text string
}

type analyzePromptData struct {
	Resume         string
	JobDescription string
}

type chatPromptData struct {
	Resume  string
	History string
	Message string
}

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
