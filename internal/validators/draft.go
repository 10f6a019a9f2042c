// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-exam-drafts/models"
)

const (
	FieldExamID    = "exam_id"
	FieldProblemID = "problem_id"
	FieldLanguage  = "language"
	FieldCode      = "code"
)

var requiredFieldErrors = map[string]error{
	FieldExamID:    ErrEmptyExamID,
	FieldProblemID: ErrEmptyProblemID,
	FieldLanguage:  ErrEmptyLanguage,
	FieldCode:      ErrEmptyCode,
}

// DraftValidator validates [models.DraftRecord] and [models.LoadDraftRequest].
type DraftValidator struct {
	validate *validator.Validate
}

func NewDraftValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so errors match what the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		// only fails on an empty tag or nil func
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}

	return &DraftValidator{validate: v}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate checks every tagged field of obj.
func (v *DraftValidator) Validate(ctx context.Context, obj any) error {
	var userID string

	switch value := obj.(type) {
	case models.DraftRecord:
		userID = value.UserID
	case *models.DraftRecord:
		userID = value.UserID
		obj = *value
	case models.LoadDraftRequest:
		userID = value.UserID
	case *models.LoadDraftRequest:
		userID = value.UserID
		obj = *value
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	if strings.TrimSpace(userID) == "" {
		return ErrInvalidUserID
	}

	return translate(v.validate.StructCtx(ctx, obj))
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) || len(invalid) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDraftData, err)
	}

	// first failure decides the sentinel, the rest are listed for the log
	first := invalid[0]
	sentinel := ErrInvalidDraftData
	switch first.Tag() {
	case "notblank", "required":
		if e, ok := requiredFieldErrors[first.Field()]; ok {
			sentinel = e
		}
	case "max":
		sentinel = ErrFieldTooLong
	}

	names := make([]string, 0, len(invalid))
	for _, fe := range invalid {
		names = append(names, fe.Field()+":"+fe.Tag())
	}

	return fmt.Errorf("%w (%s)", sentinel, strings.Join(names, ", "))
}
