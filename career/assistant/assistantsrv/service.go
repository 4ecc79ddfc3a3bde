package assistantsrv

import (
	"context"

	"github.com/1dhruvsingh/ResumeAI/career/assistant"
	"github.com/1dhruvsingh/ResumeAI/career/jobdescription"
	"github.com/1dhruvsingh/ResumeAI/career/resume"
	"github.com/1dhruvsingh/ResumeAI/internal/ai/advisor"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/1dhruvsingh/ResumeAI/pkg/logx"
	"github.com/1dhruvsingh/ResumeAI/pkg/validatex"
)

type Service struct {
	resumes         resume.Repository
	jobDescriptions jobdescription.Repository
	advisor         assistant.ResumeAdvisor
}

// NewService creates a new assistant service
func NewService(
	resumes resume.Repository,
	jobDescriptions jobdescription.Repository,
	resumeAdvisor assistant.ResumeAdvisor,
) *Service {
	return &Service{
		resumes:         resumes,
		jobDescriptions: jobDescriptions,
		advisor:         resumeAdvisor,
	}
}

// AnalyzeResume scores one of the user's resumes, against one of their job
// descriptions when an id is given.
func (s *Service) AnalyzeResume(ctx context.Context, userID kernel.UserID, resumeID kernel.ResumeID, req assistant.AnalyzeRequest) (*advisor.Report, error) {
	doc, err := s.loadDocument(ctx, userID, resumeID)
	if err != nil {
		return nil, err
	}

	var jobText string
	if req.JobDescriptionID != "" {
		jd, err := s.jobDescriptions.GetByID(ctx, kernel.NewJobDescriptionID(req.JobDescriptionID), userID)
		if err != nil {
			return nil, err
		}
		jobText = jd.Text
	}

	report, err := s.advisor.AnalyzeResume(ctx, doc, jobText)
	if err != nil {
		return nil, err
	}

	logx.Debugf("Analyzed resume %s for user %d", resumeID, userID)
	return report, nil
}

// Chat answers a message about one of the user's resumes.
func (s *Service) Chat(ctx context.Context, userID kernel.UserID, req assistant.ChatRequest) (*assistant.ChatResponse, error) {
	if fields := validatex.Fields(req); fields != nil {
		return nil, assistant.ErrChatFieldsRequired().WithDetail("fields", fields)
	}

	doc, err := s.loadDocument(ctx, userID, kernel.NewResumeID(req.ResumeID))
	if err != nil {
		return nil, err
	}

	reply, err := s.advisor.Chat(ctx, req.Message, doc, req.ConversationHistory)
	if err != nil {
		return nil, err
	}

	return &assistant.ChatResponse{Response: reply}, nil
}

func (s *Service) loadDocument(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (resume.Document, error) {
	r, err := s.resumes.GetByID(ctx, id, userID)
	if err != nil {
		return resume.Document{}, err
	}
	return r.Document()
}
