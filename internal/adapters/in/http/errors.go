package http

import (
	"errors"
	"net/http"

	"dinner/internal/core/application/usecases/commands"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrCurrencyMismatch),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, order.ErrOrderIsEmpty),
		errors.Is(err, order.ErrOrderIsImmutable),
		errors.Is(err, commands.ErrCustomerIsNotActive):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(code, Error{Code: code, Message: "Internal server error"})
	}
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// httpErrorHandler renders errors that never reached a Server method, such as unknown routes
// and parameter binding failures, in the same Error body.
func httpErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, Error{Code: code, Message: message})
}
