package registration

import (
	"errors"
	"fmt"
	"formlab/internal/platform/validator"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidSubmissionID = errors.New("submission ID cannot be empty")
	ErrInvalidAge          = errors.New("age must be a whole number")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrUnknownApproach     = errors.New("unknown validation approach")
)

type AlreadyExistsError struct {
	ID string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("submission with id '%s' already exists", e.ID)
}

// RejectedError blocks a submission whose values failed validation.
type RejectedError struct {
	Approach string
	Errors   validator.Errors
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("submission rejected by %s validation: %s", e.Approach, strings.Join(e.Errors.Fields(), ", "))
}

type Submission struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Age          int       `json:"age"`
	Website      string    `json:"website,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Submission) GetID() string {
	return s.ID
}

// NewSubmission builds a submission from already validated values.
func NewSubmission(id string, values validator.Values, passwordHash string, now time.Time) (*Submission, error) {
	if id == "" {
		return nil, ErrInvalidSubmissionID
	}
	age, err := strconv.Atoi(strings.TrimSpace(values.Get(FieldAge)))
	if err != nil {
		return nil, ErrInvalidAge
	}
	return &Submission{
		ID:           id,
		Name:         norm.NFC.String(strings.TrimSpace(values.Get(FieldName))),
		Email:        strings.ToLower(strings.TrimSpace(values.Get(FieldEmail))),
		Age:          age,
		Website:      strings.TrimSpace(values.Get(FieldWebsite)),
		PasswordHash: passwordHash,
		CreatedAt:    now.UTC(),
	}, nil
}
