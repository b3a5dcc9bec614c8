package registration

import "formlab/internal/core/domain/registration"

type SubmissionChecker interface {
	CheckSubmission(submission *registration.Submission) error
}
