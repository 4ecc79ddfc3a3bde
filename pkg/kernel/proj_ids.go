package kernel

import "github.com/google/uuid"

type ResumeID string

func NewResumeID(id string) ResumeID { return ResumeID(id) }
func GenerateResumeID() ResumeID     { return ResumeID(uuid.NewString()) }
func (r ResumeID) String() string    { return string(r) }
func (r ResumeID) IsEmpty() bool     { return string(r) == "" }

type JobDescriptionID string

func NewJobDescriptionID(id string) JobDescriptionID { return JobDescriptionID(id) }
func GenerateJobDescriptionID() JobDescriptionID     { return JobDescriptionID(uuid.NewString()) }
func (j JobDescriptionID) String() string            { return string(j) }
func (j JobDescriptionID) IsEmpty() bool             { return string(j) == "" }
