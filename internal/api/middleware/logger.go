package middleware

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var sensitiveParams = []string{"token"}

// AccessLog is gin's request log with credentials masked in the query.
func AccessLog() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: accessLogFormatter,
	})
}

func accessLogFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %-7s %#v\n%s",
		param.TimeStamp.Format("2006/01/02 - 15:04:05"),
		param.StatusCode,
		param.Latency,
		param.ClientIP,
		param.Method,
		redactQuery(param.Path),
		param.ErrorMessage,
	)
}

// redactQuery replaces sensitive query values. A query that does not parse
// is dropped whole.
func redactQuery(path string) string {
	base, raw, ok := strings.Cut(path, "?")
	if !ok {
		return path
	}

	query, err := url.ParseQuery(raw)
	if err != nil {
		return base
	}

	redacted := false
	for _, name := range sensitiveParams {
		if query.Has(name) {
			query.Set(name, "redacted")
			redacted = true
		}
	}
	if !redacted {
		return path
	}

	return base + "?" + query.Encode()
}
