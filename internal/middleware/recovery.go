package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nc-news-api/internal/response"
)

// Recovery turns a panic in any later handler into a 500 in the API error shape
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			logger.Error("Panic recovered",
				zap.String("error", fmt.Sprint(recovered)),
				zap.String("error_type", fmt.Sprintf("%T", recovered)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("query", c.Request.URL.RawQuery),
				zap.String("request_id", GetRequestID(c)),
				zap.Stack("stacktrace"),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{
				Msg:  response.MsgInternal,
				Code: response.ErrCodeInternal,
			})
		}()

		c.Next()
	}
}
