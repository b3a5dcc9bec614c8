package ports

import (
	"context"
	"formlab/internal/core/domain/registration"
	"formlab/internal/platform/validator"
)

type SubmissionRepository interface {
	Save(ctx context.Context, submission *registration.Submission) error
	GetByID(ctx context.Context, id string) (*registration.Submission, error)
	List(ctx context.Context) ([]*registration.Submission, error)
}

// FormValidator is one way of producing an error report for registration values.
type FormValidator interface {
	Approach() string
	ValidateForm(values validator.Values) (validator.Errors, error)
}

type ValidationRecorder interface {
	RecordValidation(ctx context.Context, approach string, errs validator.Errors)
}
