package pkg

import "fmt"

// AppError is the error envelope returned by the HTTP handlers.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body rendered for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError hides wrapped internal errors from 5xx responses.
func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code, Message: e.Message}
	if e.Err != nil && e.HTTPStatus < 500 {
		out.Details = e.Err.Error()
	}
	return out
}
