package http

import (
	"errors"
	"fmt"
	"net/http"

	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an error kind to the HTTP status it is reported with.
func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindValidationFailed, errs.KindOperationForbidden:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and their
// details are not exposed.
func (s *Server) fail(ctx echo.Context, err error) error {
	kind := errs.KindOf(err)
	status := statusOf(kind)

	message := errs.Message(err)
	if kind == errs.KindInternal {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Request().URL.Path, "error", err)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, Error{
		Code:     status,
		Message:  message,
		Kind:     string(kind),
		Category: string(errs.CategoryOf(err)),
	})
}

// ErrorHandler renders errors that escape the handlers, such as unknown routes
// or unsupported methods, in the same Error shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	kind := errs.KindInternal

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
		kind = ""
	}

	req := ctx.Request()
	switch status {
	case http.StatusNotFound:
		message = "Path not found: " + req.URL.Path
		kind = errs.KindNotFound
	case http.StatusMethodNotAllowed:
		message = req.Method + " not allowed for " + req.URL.Path
	case http.StatusBadRequest:
		kind = errs.KindValidationFailed
	}

	body := Error{Code: status, Message: message, Kind: string(kind)}
	if req.Method == http.MethodHead {
		err = ctx.NoContent(status)
	} else {
		err = ctx.JSON(status, body)
	}
	if err != nil {
		ctx.Logger().Error(err)
	}
}
