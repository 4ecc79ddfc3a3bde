package advisor

import (
	"context"

	"github.com/1dhruvsingh/ResumeAI/career/resume"
	"github.com/1dhruvsingh/ResumeAI/internal/ai/llm"
	"github.com/1dhruvsingh/ResumeAI/pkg/logx"
)

// Advisor builds prompts for resume tasks and interprets the model's replies.
type Advisor struct {
	generator llm.Generator
}

// New creates a new advisor backed by generator
func New(generator llm.Generator) *Advisor {
	return &Advisor{generator: generator}
}

// ExtractKeywords asks the model for the top keywords of a job description.
func (a *Advisor) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	prompt, err := render(keywordsTemplate, keywordsPromptData{Text: text})
	if err != nil {
		return nil, ErrPromptFailed(err)
	}

	reply, err := a.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseKeywords(reply), nil
}

// AnalyzeResume scores a resume, optionally against a job description.
func (a *Advisor) AnalyzeResume(ctx context.Context, doc resume.Document, jobText string) (*Report, error) {
	resumeText, err := RenderResume(doc)
	if err != nil {
		return nil, ErrPromptFailed(err)
	}

	tmpl := analyzeTemplate
	if jobText != "" {
		tmpl = analyzeJobTemplate
	}
	prompt, err := render(tmpl, analyzePromptData{Resume: resumeText, JobDescription: jobText})
	if err != nil {
		return nil, ErrPromptFailed(err)
	}

	reply, err := a.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseReport(reply), nil
}

// Chat answers a user's message in the context of their resume.
func (a *Advisor) Chat(ctx context.Context, message string, doc resume.Document, history []ChatMessage) (string, error) {
	resumeText, err := RenderResume(doc)
	if err != nil {
		return "", ErrPromptFailed(err)
	}

	prompt, err := render(chatTemplate, chatPromptData{
		Resume:  resumeText,
		History: Transcript(history),
		Message: message,
	})
	if err != nil {
		return "", ErrPromptFailed(err)
	}

	return a.generate(ctx, prompt)
}

func (a *Advisor) generate(ctx context.Context, prompt string) (string, error) {
	reply, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		logx.Errorf("AI provider call failed: %v", err)
		return "", ErrProviderFailed(err)
	}
	return reply, nil
}
