package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/legworkmedia/rnotes/api/internal/automation"
	"github.com/legworkmedia/rnotes/api/internal/contact"
)

// ErrMissingJobNumber is returned when the scrape produced no job number.
var ErrMissingJobNumber = errors.New("job number not found")

// JobResult is the outcome of a folder creation request.
type JobResult struct {
	FolderLink string   `json:"folder_link"`
	Warnings   []string `json:"warnings,omitempty"`
}

// JobService forwards scraped jobs to the folder automation endpoint.
type JobService struct {
	creator automation.JobCreator
	checker *FieldChecker
}

// NewJobService wires the automation client and field checker. A nil checker
// skips field warnings.
func NewJobService(creator automation.JobCreator, checker *FieldChecker) *JobService {
	return &JobService{creator: creator, checker: checker}
}

// Create posts the job and returns the created folder link.
func (s *JobService) Create(ctx context.Context, fields contact.SourceFields, requestID string) (JobResult, error) {
	if strings.TrimSpace(fields.JobNumber) == "" {
		return JobResult{}, ErrMissingJobNumber
	}

	var warnings []string
	if s.checker != nil {
		warnings = s.checker.Check(ctx, fields)
	}

	result, err := s.creator.CreateJob(ctx, automation.NewPayload(fields), requestID)
	if err != nil {
		log.Printf("request_id=%s event=job_failed job=%q error=%q", requestID, fields.JobNumber, err.Error())
		return JobResult{Warnings: warnings}, err
	}

	log.Printf("request_id=%s event=job_created job=%q folder=%s", requestID, fields.JobNumber, result.FolderLink)
	return JobResult{FolderLink: result.FolderLink, Warnings: warnings}, nil
}
