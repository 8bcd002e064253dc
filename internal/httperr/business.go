package httperr

import "errors"

// BusinessError identifica violação de regra de negócio por um código
// estável, comparável com errors.As — usado tanto pelas regras do cliente
// quanto pelo stub da API.
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
