package memory

import (
	"context"
	"errors"
	memoryPlatform "formlab/internal/platform/repository/memory"

	"formlab/internal/core/domain/registration"
)

type Repository struct {
	*memoryPlatform.Repository[*registration.Submission]
}

func NewRepository() *Repository {
	return &Repository{
		Repository: memoryPlatform.New[*registration.Submission](),
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*registration.Submission, error) {
	submission, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrNotFound) {
			return nil, registration.ErrSubmissionNotFound
		}
		return nil, err
	}
	return submission, nil
}

func (r *Repository) Save(ctx context.Context, submission *registration.Submission) error {
	err := r.Repository.Save(ctx, submission)
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrAlreadyExists) {
			return &registration.AlreadyExistsError{ID: submission.ID}
		}
		return err
	}
	return nil
}
