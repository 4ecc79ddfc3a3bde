package resumesrv

import (
	"context"

	"github.com/1dhruvsingh/ResumeAI/career/resume"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/1dhruvsingh/ResumeAI/pkg/logx"
)

type Service struct {
	repo resume.Repository
}

// NewService creates a new resume service
func NewService(repo resume.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListResumes(ctx context.Context, userID kernel.UserID) ([]*resume.ResumeResponse, error) {
	resumes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return resume.ToResumeResponses(resumes), nil
}

func (s *Service) CreateResume(ctx context.Context, userID kernel.UserID, req resume.CreateResumeRequest) (*resume.ResumeResponse, error) {
	if resume.IsEmptyData(req.Data) {
		return nil, resume.ErrResumeDataRequired()
	}

	r := resume.New(userID, req.Title, req.Data)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	logx.Infof("Resume %s created for user %d", r.ID, userID)
	return resume.ToResumeResponse(r), nil
}

func (s *Service) GetResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (*resume.ResumeResponse, error) {
	r, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return resume.ToResumeResponse(r), nil
}

// UpdateResume replaces the title and/or data present in req. A request with
// neither returns the resume unchanged.
func (s *Service) UpdateResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID, req resume.UpdateResumeRequest) (*resume.ResumeResponse, error) {
	r, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !r.ApplyUpdate(req) {
		return resume.ToResumeResponse(r), nil
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return resume.ToResumeResponse(r), nil
}

func (s *Service) DeleteResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	logx.Infof("Resume %s deleted by user %d", id, userID)
	return nil
}
