package entity

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrTranslationNotFound = errors.New("translation not found")

	ErrInvalidQuestionNum  = errors.New("invalid question number")
	ErrInvalidSolution     = errors.New("invalid solution code")
	ErrInvalidLanguage     = errors.New("invalid language code")
	ErrInvalidFederalState = errors.New("invalid federal state code")
)
