package apperror

import "errors"

type Code string

const (
	CodeValidation Code = "validation"
	CodeDuplicate  Code = "duplicate"
	CodeAuth       Code = "auth"
	CodeForbidden  Code = "forbidden"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewValidation(message string) *Error {
	return New(CodeValidation, message)
}

func NewDuplicate(message string) *Error {
	return New(CodeDuplicate, message)
}

func NewAuth(message string) *Error {
	return New(CodeAuth, message)
}

func NewForbidden(message string) *Error {
	return New(CodeForbidden, message)
}

func NewNotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}
