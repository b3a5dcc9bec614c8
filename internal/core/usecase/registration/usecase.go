package registration

import (
	"context"
	"errors"
	"fmt"
	"formlab/internal/platform/logger"
	"formlab/internal/platform/validator"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"formlab/internal/core/domain/registration"
	"formlab/internal/core/ports"
)

type Config struct {
	DefaultApproach string
	BcryptCost      int
}

type Usecase struct {
	cfg        Config
	repo       ports.SubmissionRepository
	checker    SubmissionChecker
	recorder   ports.ValidationRecorder
	validators map[string]ports.FormValidator

	newID func() string
	now   func() time.Time
}

func NewUsecase(cfg Config, repo ports.SubmissionRepository, checker SubmissionChecker, recorder ports.ValidationRecorder, validators ...ports.FormValidator) *Usecase {
	byApproach := make(map[string]ports.FormValidator, len(validators))
	for _, v := range validators {
		byApproach[v.Approach()] = v
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &Usecase{
		cfg:        cfg,
		repo:       repo,
		checker:    checker,
		recorder:   recorder,
		validators: byApproach,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

type ValidateInput struct {
	Approach string
	Values   validator.Values
	// Touched names the fields whose errors may be shown.
	Touched []string
	// All shows every error, as on a submit attempt.
	All bool
}

type ValidationResult struct {
	Approach string           `json:"approach"`
	Valid    bool             `json:"valid"`
	Errors   validator.Errors `json:"errors"`
}

// Approaches returns the registered approach names, sorted.
func (uc *Usecase) Approaches() []string {
	names := make([]string, 0, len(uc.validators))
	for name := range uc.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (uc *Usecase) DefaultApproach() string {
	return uc.cfg.DefaultApproach
}

// Validate reports overall validity and the errors of the touched fields only.
func (uc *Usecase) Validate(ctx context.Context, in ValidateInput) (*ValidationResult, error) {
	approach, errs, err := uc.run(ctx, in.Approach, in.Values)
	if err != nil {
		return nil, err
	}

	visible := errs
	if !in.All {
		touched := make(map[string]bool, len(in.Touched))
		for _, field := range in.Touched {
			touched[field] = true
		}
		visible = errs.Filter(func(field string) bool { return touched[field] })
	}

	return &ValidationResult{
		Approach: approach,
		Valid:    errs.Valid(),
		Errors:   visible,
	}, nil
}

// Submit validates every field and stores the submission when the report is empty.
func (uc *Usecase) Submit(ctx context.Context, approach string, values validator.Values) (*registration.Submission, error) {
	log := logger.FromContext(ctx)

	approach, errs, err := uc.run(ctx, approach, values)
	if err != nil {
		return nil, err
	}
	if !errs.Valid() {
		log.Info("Submission blocked by validation",
			logger.String("approach", approach),
			logger.Strings("fields", errs.Fields()))
		return nil, &registration.RejectedError{Approach: approach, Errors: errs}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(values.Get(registration.FieldPassword)), uc.cfg.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, &registration.RejectedError{
			Approach: approach,
			Errors:   validator.Errors{registration.FieldPassword: "Password is too long"},
		}
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	submission, err := registration.NewSubmission(uc.newID(), values, string(hash), uc.now())
	if err != nil {
		log.Warn("Invalid submission data", logger.Error(err))
		return nil, err
	}

	if err := uc.checker.CheckSubmission(submission); err != nil {
		log.Warn("Submission check failed", logger.String("submission_id", submission.ID), logger.Error(err))
		return nil, err
	}

	if err := uc.repo.Save(ctx, submission); err != nil {
		return nil, err
	}

	log.Info("Submission accepted", logger.String("submission_id", submission.ID), logger.String("approach", approach))
	return submission, nil
}

func (uc *Usecase) GetSubmission(ctx context.Context, id string) (*registration.Submission, error) {
	log := logger.FromContext(ctx)
	log.Debug("Getting submission", logger.String("submission_id", id))

	return uc.repo.GetByID(ctx, id)
}

func (uc *Usecase) ListSubmissions(ctx context.Context) ([]*registration.Submission, error) {
	return uc.repo.List(ctx)
}

func (uc *Usecase) run(ctx context.Context, approach string, values validator.Values) (string, validator.Errors, error) {
	if approach == "" {
		approach = uc.cfg.DefaultApproach
	}
	v, ok := uc.validators[approach]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", registration.ErrUnknownApproach, approach)
	}

	errs, err := v.ValidateForm(values)
	if err != nil {
		return "", nil, fmt.Errorf("%s validation: %w", approach, err)
	}

	uc.recorder.RecordValidation(ctx, approach, errs)
	logger.FromContext(ctx).Debug("Form validated",
		logger.String("approach", approach),
		logger.Int("error_count", len(errs)))

	return approach, errs, nil
}
