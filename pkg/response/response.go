package response

import (
	"errors"
	"net/http"
	"time"

	"ride-escrow-network/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope. Retryable is set when the
// caller should re-read state and submit the operation again.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) { success(c, http.StatusOK, data) }

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) { success(c, http.StatusCreated, data) }

func success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: now(),
	})
}

// Error maps err onto the error envelope. Errors that are not AppErrors are
// reported as SYS_001. The wrapped cause never reaches the client; it is
// attached to the context for the request logger.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}

	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		Retryable: Retryable(appErr.Code),
		RequestID: requestID(c),
		Timestamp: now(),
	})
}

// Retryable reports whether a failure with code may succeed on resubmission.
func Retryable(code string) bool {
	switch code {
	case apperror.CodeConflict, apperror.CodeRateLimited:
		return true
	default:
		return false
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func requestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return uuid.NewString()
}
