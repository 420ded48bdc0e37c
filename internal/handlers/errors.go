package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/customer-service/internal/httperr"
	"github.com/BruksfildServices01/customer-service/internal/middleware"
)

const (
	MsgInvalidCredentials = "Credenciais inválidas"
	MsgEmailRegistered    = "E-mail já registrado"
	MsgCPFRegistered      = "CPF já registrado"
	MsgCustomerRegistered = "Cliente já registrado"
	MsgCustomerNotFound   = "Cliente não encontrado"

	msgValidationPrefix = "Validation error in request body or parameters: "
	msgMalformedInput   = "malformed value"
)

// validationError answers 422 listing each rejected field.
func validationError(c *gin.Context, err error) {
	httperr.Unprocessable(c, msgValidationPrefix+describeBindError(err))
}

func describeBindError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return fmt.Sprintf("%s: invalid type", typeErr.Field)
		}
		// Raw decoder and strconv messages are never echoed.
		return msgMalformedInput
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// internalError logs err with the request id and answers the static 500 envelope.
func internalError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	logger.Error(msg,
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(middleware.ContextRequestID)),
		zap.Error(err),
	)
	httperr.Internal(c)
}
