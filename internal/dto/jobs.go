package dto

import "github.com/legworkmedia/rnotes/api/internal/contact"

// CreateJobRequest is the scraped job forwarded to the folder automation.
type CreateJobRequest struct {
	contact.SourceFields
}
