package forms

import (
	"encoding/json"
	"errors"
	httpErrors "formlab/internal/platform/http"
	"formlab/internal/platform/logger"
	"formlab/internal/platform/validator"
	"net/http"

	"github.com/go-chi/chi/v5"

	"formlab/internal/adapters/http/response"
	"formlab/internal/core/domain/registration"
	registrationUseCase "formlab/internal/core/usecase/registration"
)

type Handler struct {
	manager  Manager
	validate validator.Validator
}

func NewHandler(manager Manager, validate validator.Validator) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
	}
}

func (h *Handler) mapDomainError(err error) error {
	switch {
	case errors.Is(err, registration.ErrSubmissionNotFound):
		return httpErrors.NewNotFound("Submission not found", err)
	case errors.Is(err, registration.ErrUnknownApproach):
		return httpErrors.NewBadRequest("Unknown validation approach", err)
	case errors.Is(err, registration.ErrReservedName):
		return httpErrors.NewBadRequest("Name is reserved", err)
	case errors.Is(err, registration.ErrInvalidAge):
		return httpErrors.NewBadRequest("Invalid age", err)
	}

	var rejectedErr *registration.RejectedError
	if errors.As(err, &rejectedErr) {
		return httpErrors.NewUnprocessableEntity("Validation failed", rejectedErr.Errors, err)
	}
	var alreadyExistsErr *registration.AlreadyExistsError
	if errors.As(err, &alreadyExistsErr) {
		return httpErrors.NewConflict("Submission already exists", err)
	}
	return err
}

// decode reads and checks the request envelope; it reports false after writing a 400.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	contextLogger := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		response.RespondError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return false
	}

	if err := h.validate.Validate(req); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Request validation failed", logger.Error(err))
			response.RespondValidationError(w, http.StatusBadRequest, errors.New("invalid request data"), validationErr.Report())
		} else {
			contextLogger.Error("Unexpected validation error", logger.Error(err))
			response.RespondError(w, http.StatusBadRequest, errors.New("invalid request data"))
		}
		return false
	}
	return true
}

type ValidateRequest struct {
	Approach string            `json:"approach"`
	Values   map[string]string `json:"values" validate:"required"`
	Touched  []string          `json:"touched"`
	All      bool              `json:"all"`
}

// Validate reports field errors without storing anything; invalid forms still answer 200.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) error {
	var req ValidateRequest
	if !h.decode(w, r, &req) {
		return nil
	}

	result, err := h.manager.Validate(r.Context(), registrationUseCase.ValidateInput{
		Approach: req.Approach,
		Values:   req.Values,
		Touched:  req.Touched,
		All:      req.All,
	})
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, result)
	return nil
}

type SubmitRequest struct {
	Approach string            `json:"approach"`
	Values   map[string]string `json:"values" validate:"required"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) error {
	var req SubmitRequest
	if !h.decode(w, r, &req) {
		return nil
	}

	submission, err := h.manager.Submit(r.Context(), req.Approach, req.Values)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusCreated, submission)
	return nil
}

func (h *Handler) GetSubmission(w http.ResponseWriter, r *http.Request) error {
	submissionID := chi.URLParam(r, "id")

	submission, err := h.manager.GetSubmission(r.Context(), submissionID)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, submission)
	return nil
}

type ListSubmissionsResponse struct {
	Submissions []*registration.Submission `json:"submissions"`
	Count       int                        `json:"count"`
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) error {
	submissions, err := h.manager.ListSubmissions(r.Context())
	if err != nil {
		return h.mapDomainError(err)
	}
	if submissions == nil {
		submissions = []*registration.Submission{}
	}

	response.RespondJSON(w, http.StatusOK, ListSubmissionsResponse{
		Submissions: submissions,
		Count:       len(submissions),
	})
	return nil
}

type ApproachesResponse struct {
	Approaches []string `json:"approaches"`
	Default    string   `json:"default"`
}

func (h *Handler) Approaches(w http.ResponseWriter, _ *http.Request) error {
	response.RespondJSON(w, http.StatusOK, ApproachesResponse{
		Approaches: h.manager.Approaches(),
		Default:    h.manager.DefaultApproach(),
	})
	return nil
}
