package jobdescriptionsrv

import (
	"context"

	"github.com/1dhruvsingh/ResumeAI/career/jobdescription"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/1dhruvsingh/ResumeAI/pkg/logx"
	"github.com/1dhruvsingh/ResumeAI/pkg/validatex"
)

type Service struct {
	repo      jobdescription.Repository
	extractor jobdescription.KeywordExtractor
}

// NewService creates a new job description service
func NewService(repo jobdescription.Repository, extractor jobdescription.KeywordExtractor) *Service {
	return &Service{
		repo:      repo,
		extractor: extractor,
	}
}

func (s *Service) ListJobDescriptions(ctx context.Context, userID kernel.UserID) ([]*jobdescription.JobDescriptionResponse, error) {
	jds, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return jobdescription.ToJobDescriptionResponses(jds), nil
}

// CreateJobDescription extracts keywords from the text and stores the result.
func (s *Service) CreateJobDescription(ctx context.Context, userID kernel.UserID, req jobdescription.CreateJobDescriptionRequest) (*jobdescription.JobDescriptionResponse, error) {
	if fields := validatex.Fields(req); fields != nil {
		return nil, jobdescription.ErrTextRequired().WithDetail("fields", fields)
	}

	keywords, err := s.extractor.ExtractKeywords(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	j := jobdescription.New(userID, req.Title, req.Text, keywords)
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}

	logx.Infof("Job description %s created for user %d with %d keywords", j.ID, userID, len(keywords))
	return jobdescription.ToJobDescriptionResponse(j), nil
}

func (s *Service) GetJobDescription(ctx context.Context, userID kernel.UserID, id kernel.JobDescriptionID) (*jobdescription.JobDescriptionResponse, error) {
	j, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return jobdescription.ToJobDescriptionResponse(j), nil
}

func (s *Service) DeleteJobDescription(ctx context.Context, userID kernel.UserID, id kernel.JobDescriptionID) error {
	return s.repo.Delete(ctx, id, userID)
}
