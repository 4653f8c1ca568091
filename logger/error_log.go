package logger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorLog contains structured information about an error occurrence
type ErrorLog struct {
	Timestamp  time.Time              `json:"timestamp"`
	Message    string                 `json:"message"`
	ErrorType  string                 `json:"error_type,omitempty"`
	StatusCode int                    `json:"status_code,omitempty"`
	RequestID  string                 `json:"request_id,omitempty"`
	Path       string                 `json:"path,omitempty"`
	Method     string                 `json:"method,omitempty"`
	IPAddress  string                 `json:"ip_address,omitempty"`
	StackTrace string                 `json:"stack_trace,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// LogError logs a detailed error with contextual information
func LogError(ctx context.Context, err error, message string, metadata map[string]interface{}) {
	log := GetLogger()

	errorLog := ErrorLog{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Metadata:  metadata,
	}

	if err != nil {
		errorLog.ErrorType = getErrorType(err)
	}

	if os.Getenv("ENVIRONMENT") != "production" {
		errorLog.StackTrace = getStackTrace(3)
	}

	if ginCtx, ok := ctx.(*gin.Context); ok && ginCtx.Request != nil {
		errorLog.RequestID = ginCtx.GetString("request_id")
		errorLog.Path = ginCtx.Request.URL.Path
		errorLog.Method = ginCtx.Request.Method
		errorLog.IPAddress = ginCtx.ClientIP()
		errorLog.StatusCode = ginCtx.Writer.Status()
	}

	fields := []zap.Field{
		zap.Error(err),
		zap.String("error_type", errorLog.ErrorType),
	}

	if errorLog.RequestID != "" {
		fields = append(fields, zap.String("request_id", errorLog.RequestID))
	}

	if errorLog.Path != "" {
		fields = append(fields, zap.String("path", errorLog.Path))
		fields = append(fields, zap.String("method", errorLog.Method))
	}

	if errorLog.IPAddress != "" {
		fields = append(fields, zap.String("ip_address", errorLog.IPAddress))
	}

	if errorLog.StackTrace != "" {
		fields = append(fields, zap.String("stack_trace", errorLog.StackTrace))
	}

	for k, v := range metadata {
		fields = append(fields, zap.Any(k, v))
	}

	log.Desugar().Error(message, fields...)
}

// LogHTTPError logs an HTTP request error with context from a gin.Context
func LogHTTPError(c *gin.Context, err error, statusCode int, message string) {
	metadata := map[string]interface{}{
		"status_code": statusCode,
		"client_ip":   c.ClientIP(),
		"headers":     filterSensitiveHeaders(c.Request.Header),
	}

	LogError(c, err, message, metadata)
}

// getErrorType returns the dynamic type name of err without its package path.
func getErrorType(err error) string {
	if err == nil {
		return ""
	}

	name := strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return name[idx+1:]
	}
	return name
}

// getStackTrace captures a stack trace starting from the specified skip level
func getStackTrace(skip int) string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "runtime.") {
			builder.WriteString(frame.Function)
			builder.WriteString("\n\t")
			builder.WriteString(frame.File)
			builder.WriteString(":")
			builder.WriteString(strconv.Itoa(frame.Line))
			builder.WriteString("\n")
		}
		if !more {
			break
		}
	}

	return builder.String()
}

// filterSensitiveHeaders removes sensitive information from headers before logging
func filterSensitiveHeaders(headers http.Header) map[string]string {
	filtered := make(map[string]string)

	for name, values := range headers {
		lower := strings.ToLower(name)
		if lower == "authorization" ||
			lower == "cookie" ||
			strings.Contains(lower, "token") ||
			strings.Contains(lower, "key") ||
			strings.Contains(lower, "secret") {
			filtered[name] = "[REDACTED]"
			continue
		}

		if len(values) > 0 {
			filtered[name] = values[0]
		}
	}

	return filtered
}
