package forms

import (
	"context"
	"formlab/internal/platform/validator"

	"formlab/internal/core/domain/registration"
	registrationUseCase "formlab/internal/core/usecase/registration"
)

type Manager interface {
	Approaches() []string
	DefaultApproach() string
	Validate(ctx context.Context, in registrationUseCase.ValidateInput) (*registrationUseCase.ValidationResult, error)
	Submit(ctx context.Context, approach string, values validator.Values) (*registration.Submission, error)
	GetSubmission(ctx context.Context, id string) (*registration.Submission, error)
	ListSubmissions(ctx context.Context) ([]*registration.Submission, error)
}
