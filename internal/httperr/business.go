package httperr

import "errors"

const (
	CodeNotFound            = "not_found"
	CodeInvalidID           = "invalid_id"
	CodeServiceTypeNotFound = "service_type_not_found"
	CodeDuplicateSubmission = "duplicate_submission"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
