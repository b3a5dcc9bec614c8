package validator

import (
	"errors"
	"formlab/internal/core/domain/registration"
	validatorPlatform "formlab/internal/platform/validator"
)

type RuleApproach struct {
	schema validatorPlatform.Schema
}

func NewRuleApproach() *RuleApproach {
	return &RuleApproach{schema: registration.Schema()}
}

func (a *RuleApproach) Approach() string {
	return registration.ApproachRules
}

func (a *RuleApproach) ValidateForm(values validatorPlatform.Values) (validatorPlatform.Errors, error) {
	return a.schema.Validate(values), nil
}

type TagApproach struct {
	validate validatorPlatform.Validator
}

func NewTagApproach(validate validatorPlatform.Validator) *TagApproach {
	return &TagApproach{validate: validate}
}

func (a *TagApproach) Approach() string {
	return registration.ApproachTags
}

func (a *TagApproach) ValidateForm(values validatorPlatform.Values) (validatorPlatform.Errors, error) {
	err := a.validate.Validate(registration.FormFromValues(values))
	if err == nil {
		return validatorPlatform.Errors{}, nil
	}
	var validationErr validatorPlatform.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Report(), nil
	}
	return nil, err
}
