package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"hlpnl/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
)

// requestID tags every request, reusing a caller-supplied id when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(headerRequestID))
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}
		c.Next()
		logger.With("rid", c.GetString(ctxRequestID)).Debug("http request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"ip", c.ClientIP(),
			"dur", time.Since(start))
	}
}

// cors allows any origin; preflight requests end here with 204.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, "+headerRequestID)
		h.Set("Access-Control-Expose-Headers", headerRequestID)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// errorResponder turns errors attached with c.Error into the generic 500 body.
func errorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		logger.Errorf("[api] %s %s failed rid=%s err=%v", c.Request.Method, c.Request.URL.Path, c.GetString(ctxRequestID), err)
		c.JSON(http.StatusInternalServerError, FailureResponse{Error: msgInternal, Message: err.Error()})
	}
}

// recovery turns a handler panic into the same 500 body errorResponder writes.
func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorf("[api] panic %s %s rid=%s: %v", c.Request.Method, c.Request.URL.Path, c.GetString(ctxRequestID), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, FailureResponse{
			Error:   msgInternal,
			Message: fmt.Sprint(recovered),
		})
	})
}
