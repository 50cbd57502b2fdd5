package middleware

import (
	"log/slog"
	"net/http"

	"dealstream/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler answers for handlers that recorded an error without writing.
// The newest public error wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp.Body)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		httperr.Internal(c)
	}
}

func lastPublicResponse(errors []*gin.Error) (httperr.Response, bool) {
	for i := len(errors) - 1; i >= 0; i-- {
		if !errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery turns a handler panic into a 500 envelope. A panic inside the
// websocket loop after the upgrade cannot be answered and is only logged.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path)

				if c.Writer.Written() {
					c.Abort()
					return
				}
				httperr.Internal(c)
			}
		}()
		c.Next()
	}
}
