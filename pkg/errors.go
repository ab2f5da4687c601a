package pkg

import "fmt"

// AppError is the domain error envelope returned by the HTTP layer. Code is a
// stable machine-readable identifier; Message is safe to show to a client.
// Err, when set, carries the internal cause and is never serialized.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
	HTTPStatus int    `json:"-"`
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

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body sent to clients on failure.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
