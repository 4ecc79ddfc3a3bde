package jobdescriptionsrv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/1dhruvsingh/ResumeAI/career/careertest"
	"github.com/1dhruvsingh/ResumeAI/career/jobdescription"
	"github.com/1dhruvsingh/ResumeAI/career/jobdescription/jobdescriptionsrv"
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

type stubExtractor struct {
	keywords []string
	err      error
	calls    int
}

func (s *stubExtractor) ExtractKeywords(_ context.Context, _ string) ([]string, error) {
	s.calls++
	return s.keywords, s.err
}

func TestCreateJobDescription(t *testing.T) {
	extractor := &stubExtractor{keywords: []string{"Go", "Kubernetes"}}
	svc := jobdescriptionsrv.NewService(careertest.NewJobDescriptionRepo(), extractor)
	ctx := context.Background()

	created, err := svc.CreateJobDescription(ctx, owner, jobdescription.CreateJobDescriptionRequest{
		Text: "Looking for a Go developer with Kubernetes experience",
	})
	require.NoError(t, err)
	assert.Equal(t, jobdescription.DefaultTitle, created.Title)
	assert.Equal(t, []string{"Go", "Kubernetes"}, created.Keywords)
	assert.Equal(t, 1, extractor.calls)

	got, err := svc.GetJobDescription(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Keywords, got.Keywords)
	assert.Equal(t, 1, extractor.calls)
}

func TestCreateJobDescriptionRequiresText(t *testing.T) {
	extractor := &stubExtractor{}
	svc := jobdescriptionsrv.NewService(careertest.NewJobDescriptionRepo(), extractor)

	_, err := svc.CreateJobDescription(context.Background(), owner, jobdescription.CreateJobDescriptionRequest{Title: "Backend"})
	assert.True(t, errx.IsCode(err, jobdescription.CodeTextRequired))
	assert.Zero(t, extractor.calls)
}

func TestCreateJobDescriptionProviderFailure(t *testing.T) {
	repo := careertest.NewJobDescriptionRepo()
	extractor := &stubExtractor{err: advisor.ErrProviderFailed(errors.New("timeout"))}
	svc := jobdescriptionsrv.NewService(repo, extractor)
	ctx := context.Background()

	_, err := svc.CreateJobDescription(ctx, owner, jobdescription.CreateJobDescriptionRequest{Text: "Go"})
	assert.True(t, errx.IsCode(err, advisor.CodeProviderFailed))

	list, err := svc.ListJobDescriptions(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestJobDescriptionOwnership(t *testing.T) {
	svc := jobdescriptionsrv.NewService(careertest.NewJobDescriptionRepo(), &stubExtractor{})
	ctx := context.Background()

	created, err := svc.CreateJobDescription(ctx, owner, jobdescription.CreateJobDescriptionRequest{Title: "SRE", Text: "On-call"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, created.Keywords)

	_, err = svc.GetJobDescription(ctx, intruder, created.ID)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))

	err = svc.DeleteJobDescription(ctx, intruder, created.ID)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))

	list, err := svc.ListJobDescriptions(ctx, intruder)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, svc.DeleteJobDescription(ctx, owner, created.ID))
	_, err = svc.GetJobDescription(ctx, owner, created.ID)
	assert.True(t, errx.IsCode(err, jobdescription.CodeJobDescriptionNotFound))
}
