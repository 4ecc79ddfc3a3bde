package assistantsrv_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/1dhruvsingh/ResumeAI/career/assistant"
	"github.com/1dhruvsingh/ResumeAI/career/assistant/assistantsrv"
	"github.com/1dhruvsingh/ResumeAI/career/careertest"
	"github.com/1dhruvsingh/ResumeAI/career/jobdescription"
	"github.com/1dhruvsingh/ResumeAI/career/resume"
	"github.com/1dhruvsingh/ResumeAI/internal/ai/advisor"
	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	owner    kernel.UserID = 1
	intruder kernel.UserID = 2
)

type spyAdvisor struct {
	jobText string
	doc     resume.Document
	message string
	history []advisor.ChatMessage
}

func (s *spyAdvisor) AnalyzeResume(_ context.Context, doc resume.Document, jobText string) (*advisor.Report, error) {
	s.doc = doc
	s.jobText = jobText
	return advisor.FallbackReport(), nil
}

func (s *spyAdvisor) Chat(_ context.Context, message string, doc resume.Document, history []advisor.ChatMessage) (string, error) {
	s.doc = doc
	s.message = message
	s.history = history
	return "Add numbers to your bullets.", nil
}

type fixture struct {
	svc      *assistantsrv.Service
	spy      *spyAdvisor
	resumeID kernel.ResumeID
	jobID    kernel.JobDescriptionID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	resumes := careertest.NewResumeRepo()
	r := resume.New(owner, "Mine", json.RawMessage(`{"personalInfo":{"fullName":"Ada"},"skills":["Go"]}`))
	require.NoError(t, resumes.Create(ctx, r))

	jobs := careertest.NewJobDescriptionRepo()
	jd := jobdescription.New(owner, "Backend", "Go and Postgres", []string{"Go"})
	require.NoError(t, jobs.Create(ctx, jd))

	spy := &spyAdvisor{}
	return fixture{
		svc:      assistantsrv.NewService(resumes, jobs, spy),
		spy:      spy,
		resumeID: r.ID,
		jobID:    jd.ID,
	}
}

func TestAnalyzeResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	report, err := f.svc.AnalyzeResume(ctx, owner, f.resumeID, assistant.AnalyzeRequest{})
	require.NoError(t, err)
	assert.Equal(t, advisor.FallbackReport(), report)
	assert.Equal(t, "", f.spy.jobText)
	assert.Equal(t, "Ada", f.spy.doc.PersonalInfo.FullName)

	_, err = f.svc.AnalyzeResume(ctx, owner, f.resumeID, assistant.AnalyzeRequest{JobDescriptionID: f.jobID.String()})
	require.NoError(t, err)
	assert.Equal(t, "Go and Postgres", f.spy.jobText)
}

func TestAnalyzeResumeNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AnalyzeResume(ctx, intruder, f.resumeID, assistant.AnalyzeRequest{})
	assert.True(t, errx.IsCode(err, resume.CodeResumeNotFound))

	_, err = f.svc.AnalyzeResume(ctx, owner, f.resumeID, assistant.AnalyzeRequest{JobDescriptionID: "missing"})
	assert.True(t, errx.IsCode(err, jobdescription.CodeJobDescriptionNotFound))
}

func TestChat(t *testing.T) {
	f := newFixture(t)
	history := []advisor.ChatMessage{{Role: "user", Content: "hi"}}

	resp, err := f.svc.Chat(context.Background(), owner, assistant.ChatRequest{
		Message:             "Help",
		ResumeID:            f.resumeID.String(),
		ConversationHistory: history,
	})
	require.NoError(t, err)
	assert.Equal(t, "Add numbers to your bullets.", resp.Response)
	assert.Equal(t, "Help", f.spy.message)
	assert.Equal(t, history, f.spy.history)
	assert.Equal(t, []string{"Go"}, f.spy.doc.Skills)
}

func TestChatValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Chat(ctx, owner, assistant.ChatRequest{ResumeID: f.resumeID.String()})
	assert.True(t, errx.IsCode(err, assistant.CodeChatFieldsRequired))

	_, err = f.svc.Chat(ctx, owner, assistant.ChatRequest{Message: "Help"})
	assert.True(t, errx.IsCode(err, assistant.CodeChatFieldsRequired))

	_, err = f.svc.Chat(ctx, intruder, assistant.ChatRequest{Message: "Help", ResumeID: f.resumeID.String()})
	assert.True(t, errx.IsCode(err, resume.CodeResumeNotFound))
}
