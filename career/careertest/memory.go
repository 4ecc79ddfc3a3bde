// Package careertest provides in-memory repositories and auth stubs for tests
// of the career packages.
package careertest

import (
	"context"
	"sort"
	"sync"

	"github.com/1dhruvsingh/ResumeAI/career/jobdescription"
	"github.com/1dhruvsingh/ResumeAI/career/resume"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

type ResumeRepo struct {
	mu      sync.Mutex
	resumes map[kernel.ResumeID]resume.Resume
}

// NewResumeRepo creates an empty in-memory resume repository
func NewResumeRepo() *ResumeRepo {
	return &ResumeRepo{resumes: make(map[kernel.ResumeID]resume.Resume)}
}

func (m *ResumeRepo) Create(_ context.Context, r *resume.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumes[r.ID] = *r
	return nil
}

func (m *ResumeRepo) Update(_ context.Context, r *resume.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.resumes[r.ID]
	if !ok || stored.UserID != r.UserID {
		return resume.ErrResumeNotFound()
	}
	m.resumes[r.ID] = *r
	return nil
}

func (m *ResumeRepo) GetByID(_ context.Context, id kernel.ResumeID, userID kernel.UserID) (*resume.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok || r.UserID != userID {
		return nil, resume.ErrResumeNotFound()
	}
	return &r, nil
}

func (m *ResumeRepo) ListByUser(_ context.Context, userID kernel.UserID) ([]*resume.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*resume.Resume{}
	for _, r := range m.resumes {
		if r.UserID == userID {
			r := r
			out = append(out, &r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (m *ResumeRepo) Delete(_ context.Context, id kernel.ResumeID, userID kernel.UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok || r.UserID != userID {
		return resume.ErrResumeNotFound()
	}
	delete(m.resumes, id)
	return nil
}

type JobDescriptionRepo struct {
	mu   sync.Mutex
	jobs map[kernel.JobDescriptionID]jobdescription.JobDescription
}

// NewJobDescriptionRepo creates an empty in-memory job description repository
func NewJobDescriptionRepo() *JobDescriptionRepo {
	return &JobDescriptionRepo{jobs: make(map[kernel.JobDescriptionID]jobdescription.JobDescription)}
}

func (m *JobDescriptionRepo) Create(_ context.Context, j *jobdescription.JobDescription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *j
	stored.Keywords = append([]string(nil), j.Keywords...)
	m.jobs[j.ID] = stored
	return nil
}

func (m *JobDescriptionRepo) GetByID(_ context.Context, id kernel.JobDescriptionID, userID kernel.UserID) (*jobdescription.JobDescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok || j.UserID != userID {
		return nil, jobdescription.ErrJobDescriptionNotFound()
	}
	return &j, nil
}

func (m *JobDescriptionRepo) ListByUser(_ context.Context, userID kernel.UserID) ([]*jobdescription.JobDescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*jobdescription.JobDescription{}
	for _, j := range m.jobs {
		if j.UserID == userID {
			j := j
			out = append(out, &j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

func (m *JobDescriptionRepo) Delete(_ context.Context, id kernel.JobDescriptionID, userID kernel.UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok || j.UserID != userID {
		return jobdescription.ErrJobDescriptionNotFound()
	}
	delete(m.jobs, id)
	return nil
}
