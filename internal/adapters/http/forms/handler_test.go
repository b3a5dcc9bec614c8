package forms

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"formlab/internal/adapters/http/forms/mocks"
	"formlab/internal/adapters/http/response"
	validatorAdapter "formlab/internal/adapters/validator"
	"formlab/internal/core/domain/registration"
	registrationUseCase "formlab/internal/core/usecase/registration"
	httpErrors "formlab/internal/platform/http"
	"formlab/internal/platform/logger"
	"formlab/internal/platform/validator"
)

// errorHandler mirrors the router's error translation.
func errorHandler(next func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}
		var httpErr *httpErrors.Error
		if !errors.As(err, &httpErr) {
			response.RespondError(w, http.StatusInternalServerError, errors.New("internal server error"))
			return
		}
		if httpErr.StatusCode == http.StatusUnprocessableEntity {
			response.RespondValidationError(w, httpErr.StatusCode, httpErr, httpErr.Fields)
			return
		}
		response.RespondError(w, httpErr.StatusCode, httpErr)
	}
}

type HandlerTestSuite struct {
	suite.Suite
	mockManager *mocks.MockManager
	handler     *Handler
	router      *chi.Mux
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.mockManager = mocks.NewMockManager(suite.T())
	suite.handler = NewHandler(suite.mockManager, validatorAdapter.NewPlaygroundAdapter())

	suite.router = chi.NewRouter()
	suite.router.Post("/validate", errorHandler(suite.handler.Validate))
	suite.router.Post("/submissions", errorHandler(suite.handler.Submit))
	suite.router.Get("/submissions", errorHandler(suite.handler.ListSubmissions))
	suite.router.Get("/submissions/{id}", errorHandler(suite.handler.GetSubmission))
	suite.router.Get("/approaches", errorHandler(suite.handler.Approaches))
}

func (suite *HandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(suite.T(), json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req = req.WithContext(logger.WithLogger(req.Context(), logger.NewNop()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestValidate_ReturnsResult() {
	values := map[string]string{registration.FieldName: "A"}
	suite.mockManager.EXPECT().
		Validate(mock.Anything, registrationUseCase.ValidateInput{
			Approach: "rules",
			Values:   validator.Values(values),
			Touched:  []string{registration.FieldName},
		}).
		Return(&registrationUseCase.ValidationResult{
			Approach: "rules",
			Valid:    false,
			Errors:   validator.Errors{registration.FieldName: "Name must be at least 2 characters"},
		}, nil).
		Once()

	w := suite.do(http.MethodPost, "/validate", ValidateRequest{
		Approach: "rules",
		Values:   values,
		Touched:  []string{registration.FieldName},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(),
		`{"approach":"rules","valid":false,"errors":{"name":"Name must be at least 2 characters"}}`,
		w.Body.String())
}

func (suite *HandlerTestSuite) TestValidate_UnknownApproach() {
	suite.mockManager.EXPECT().
		Validate(mock.Anything, mock.Anything).
		Return(nil, registration.ErrUnknownApproach).
		Once()

	w := suite.do(http.MethodPost, "/validate", ValidateRequest{Approach: "zod", Values: map[string]string{}})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Unknown validation approach"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestValidate_InvalidJSON() {
	w := suite.do(http.MethodPost, "/validate", "invalid json")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error":"invalid request payload"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestValidate_MissingValues() {
	w := suite.do(http.MethodPost, "/validate", `{"approach":"rules"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var body response.ValidationErrorResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "invalid request data", body.Error)
	assert.Equal(suite.T(), "This field is required", body.Errors["values"])
}

func (suite *HandlerTestSuite) TestSubmit_Created() {
	values := map[string]string{registration.FieldName: "Alice"}
	created := &registration.Submission{
		ID:           "sub-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		Age:          30,
		PasswordHash: "$2a$04$secret",
		CreatedAt:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	suite.mockManager.EXPECT().
		Submit(mock.Anything, "tags", validator.Values(values)).
		Return(created, nil).
		Once()

	w := suite.do(http.MethodPost, "/submissions", SubmitRequest{Approach: "tags", Values: values})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.NotContains(suite.T(), w.Body.String(), "secret")

	var got registration.Submission
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "sub-1", got.ID)
	assert.Equal(suite.T(), 30, got.Age)
}

func (suite *HandlerTestSuite) TestSubmit_Rejected() {
	suite.mockManager.EXPECT().
		Submit(mock.Anything, "", mock.Anything).
		Return(nil, &registration.RejectedError{
			Approach: "rules",
			Errors:   validator.Errors{registration.FieldAge: "You must be at least 18 years old"},
		}).
		Once()

	w := suite.do(http.MethodPost, "/submissions", SubmitRequest{Values: map[string]string{registration.FieldAge: "15"}})

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(suite.T(),
		`{"error":"Validation failed","errors":{"age":"You must be at least 18 years old"}}`,
		w.Body.String())
}

func (suite *HandlerTestSuite) TestSubmit_Conflict() {
	suite.mockManager.EXPECT().
		Submit(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &registration.AlreadyExistsError{ID: "sub-1"}).
		Once()

	w := suite.do(http.MethodPost, "/submissions", SubmitRequest{Values: map[string]string{}})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Submission already exists"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestSubmit_UnexpectedError() {
	suite.mockManager.EXPECT().
		Submit(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("disk full")).
		Once()

	w := suite.do(http.MethodPost, "/submissions", SubmitRequest{Values: map[string]string{}})

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.JSONEq(suite.T(), `{"error":"internal server error"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetSubmission() {
	suite.mockManager.EXPECT().
		GetSubmission(mock.Anything, "sub-1").
		Return(&registration.Submission{ID: "sub-1", Name: "Alice"}, nil).
		Once()

	w := suite.do(http.MethodGet, "/submissions/sub-1", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"id":"sub-1"`)
}

func (suite *HandlerTestSuite) TestGetSubmission_NotFound() {
	suite.mockManager.EXPECT().
		GetSubmission(mock.Anything, "missing").
		Return(nil, registration.ErrSubmissionNotFound).
		Once()

	w := suite.do(http.MethodGet, "/submissions/missing", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Submission not found"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestListSubmissions() {
	suite.mockManager.EXPECT().
		ListSubmissions(mock.Anything).
		Return([]*registration.Submission{{ID: "a"}, {ID: "b"}}, nil).
		Once()

	w := suite.do(http.MethodGet, "/submissions", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body ListSubmissionsResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), 2, body.Count)
	assert.Equal(suite.T(), "a", body.Submissions[0].ID)
}

func (suite *HandlerTestSuite) TestListSubmissions_EmptyIsArray() {
	suite.mockManager.EXPECT().
		ListSubmissions(mock.Anything).
		Return(nil, nil).
		Once()

	w := suite.do(http.MethodGet, "/submissions", nil)

	assert.JSONEq(suite.T(), `{"submissions":[],"count":0}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestApproaches() {
	suite.mockManager.EXPECT().Approaches().Return([]string{"rules", "tags"}).Once()
	suite.mockManager.EXPECT().DefaultApproach().Return("rules").Once()

	w := suite.do(http.MethodGet, "/approaches", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"approaches":["rules","tags"],"default":"rules"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestMapDomainError() {
	tests := []struct {
		name           string
		inputError     error
		expectedStatus int
		expectedMsg    string
	}{
		{"not found", registration.ErrSubmissionNotFound, http.StatusNotFound, "Submission not found"},
		{"unknown approach", registration.ErrUnknownApproach, http.StatusBadRequest, "Unknown validation approach"},
		{"reserved name", registration.ErrReservedName, http.StatusBadRequest, "Name is reserved"},
		{"invalid age", registration.ErrInvalidAge, http.StatusBadRequest, "Invalid age"},
		{"rejected", &registration.RejectedError{Approach: "rules", Errors: validator.Errors{"name": "Name is required"}}, http.StatusUnprocessableEntity, "Validation failed"},
		{"already exists", &registration.AlreadyExistsError{ID: "x"}, http.StatusConflict, "Submission already exists"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			result := suite.handler.mapDomainError(tt.inputError)

			var httpErr *httpErrors.Error
			require.True(suite.T(), errors.As(result, &httpErr), "Expected HTTP error but got %T", result)
			assert.Equal(suite.T(), tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(suite.T(), tt.expectedMsg, httpErr.Message)
		})
	}
}

func (suite *HandlerTestSuite) TestMapDomainError_UnknownError() {
	unknownErr := errors.New("unknown error")

	assert.Equal(suite.T(), unknownErr, suite.handler.mapDomainError(unknownErr))
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
