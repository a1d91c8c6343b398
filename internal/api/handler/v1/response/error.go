package response

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

const (
	msgInvalidRequest = "invalid request"
	msgInternal       = "internal server error"
	// MsgPriceMismatch is returned when a client price differs from the menu.
	MsgPriceMismatch = "Autonomous behavior detected: Price mismatch detected."
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Err is the body of every failed request.
type Err struct {
	Err            error        `json:"-"`
	HTTPStatusCode int          `json:"-"`
	Message        string       `json:"message"`
	Errors         []FieldError `json:"errors,omitempty"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.Message
	}

	return e.Err.Error()
}

// RenderErr aborts the request with e. Server errors are logged with the
// request id and their detail is not sent to the client.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.Message,
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err))
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

// ErrBadRequest reports invalid input. Validation errors are split per field.
func ErrBadRequest(err error) *Err {
	e := &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}

	var fields validation.Errors
	if errors.As(err, &fields) {
		e.Message = msgInvalidRequest
		e.Errors = fieldErrors(fields)
	}

	return e
}

// ErrConflict reports a request that clashes with the current state.
func ErrConflict(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		Message:        err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        "unauthorized",
	}
}

// ErrForbidden reports an authenticated caller without the needed rights.
func ErrForbidden(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusForbidden,
		Message:        err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        err.Error(),
	}
}

// ErrPriceMismatch flags an order whose prices were altered by the client.
func ErrPriceMismatch(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusForbidden,
		Message:        MsgPriceMismatch,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        msgInternal,
	}
}

func fieldErrors(errs validation.Errors) []FieldError {
	fields := make([]FieldError, 0, len(errs))
	for field, err := range errs {
		var nested validation.Errors
		if errors.As(err, &nested) {
			for _, fe := range fieldErrors(nested) {
				fields = append(fields, FieldError{Field: field + "." + fe.Field, Message: fe.Message})
			}
			continue
		}

		fields = append(fields, FieldError{Field: field, Message: err.Error()})
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	return fields
}
