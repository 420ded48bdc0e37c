package auth

import "github.com/BruksfildServices01/customer-service/internal/httperr"

var (
	ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")
	ErrUnauthorized       = httperr.ErrBusiness("unauthorized")
)
