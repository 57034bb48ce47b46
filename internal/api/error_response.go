package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	// NonFieldErrorsKey collects errors not tied to a single input field.
	NonFieldErrorsKey = "non_field_errors"

	CodeInvalid        = "invalid"
	CodeAuthentication = "authentication"
)

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// message 錯誤描述
	Message string `json:"message" example:"invalid input"`
	// code 機器可讀的錯誤類型
	Code string `json:"code,omitempty" example:"invalid"`
	// errors 依欄位列出的錯誤訊息
	Errors map[string][]string `json:"errors,omitempty"`
}

// FieldError builds a 400 body carrying one message for one field.
func FieldError(field, msg string) ErrorResponse {
	return ErrorResponse{
		Message: msg,
		Code:    CodeInvalid,
		Errors:  map[string][]string{field: {msg}},
	}
}

// ValidationError converts a validator error into a field-keyed body. Errors
// of any other type are reported as a plain message.
func ValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrorResponse{Message: err.Error(), Code: CodeInvalid}
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return ErrorResponse{Message: "invalid input", Code: CodeInvalid, Errors: fields}
}

// AuthenticationError is the body returned when credentials do not match.
func AuthenticationError() ErrorResponse {
	const msg = "Unable to authenticate with provided credentials"
	return ErrorResponse{
		Message: msg,
		Code:    CodeAuthentication,
		Errors:  map[string][]string{NonFieldErrorsKey: {msg}},
	}
}
