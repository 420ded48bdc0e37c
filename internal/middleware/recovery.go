package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/customer-service/internal/httperr"
)

// Recovery turns a panic into the 500 envelope. Details only reach the log.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error("unhandled error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(ContextRequestID)),
			zap.String("panic", fmt.Sprint(recovered)),
			zap.Stack("stack"),
		)
		httperr.Internal(c)
	})
}
