package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrEmptyExamID      = errors.New("exam_id is required")
	ErrEmptyProblemID   = errors.New("problem_id is required")
	ErrEmptyLanguage    = errors.New("language is required")
	ErrEmptyCode        = errors.New("code is required")
	ErrFieldTooLong     = errors.New("field is too long")
	ErrInvalidDraftData = errors.New("invalid draft data")
)
