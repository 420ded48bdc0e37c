package customer

import "github.com/BruksfildServices01/customer-service/internal/httperr"

var (
	ErrNotFound            = httperr.ErrBusiness("customer_not_found")
	ErrDuplicateEmail      = httperr.ErrBusiness("duplicate_email")
	ErrDuplicateCPF        = httperr.ErrBusiness("duplicate_cpf")
	ErrConstraintViolation = httperr.ErrBusiness("constraint_violation")
	ErrInvalidEmail        = httperr.ErrBusiness("invalid_email")
	ErrPasswordTooLong     = httperr.ErrBusiness("password_too_long")
)
