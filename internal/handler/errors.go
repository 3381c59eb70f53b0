package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cine-app/internal/booking"
	"github.com/iliyamo/cine-app/internal/session"
	"github.com/iliyamo/cine-app/internal/view"
)

// statusFor maps page-entry errors to HTTP statuses: bad or missing
// parameters are 400, anything absent is 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrMissingParams), errors.Is(err, booking.ErrInvalidCinemaID):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrMovieNotFound), errors.Is(err, booking.ErrCinemaNotFound),
		errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (h *PageHandler) renderBookingError(c echo.Context, err error) error {
	status := statusFor(err)
	msg := err.Error()
	switch {
	case errors.Is(err, session.ErrNotFound):
		msg = "This seat selection has expired. Please pick a showtime again."
	case status == http.StatusInternalServerError:
		h.Log.Error("booking page failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		msg = "Something went wrong while loading this page."
	}
	return h.renderError(c, status, msg)
}

func (h *PageHandler) renderError(c echo.Context, status int, msg string) error {
	return c.Render(status, view.Error, errorPage(msg))
}

func errorPage(msg string) view.ErrorPage {
	return view.ErrorPage{Meta: view.Meta{Title: "Error"}, Message: msg, HomePath: booking.HomePath}
}

// ErrorHandler replaces echo's default error handler.  Requests under /v1 get
// a JSON body, everything else the error page.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		msg := http.StatusText(status)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		}
		if status >= http.StatusInternalServerError {
			log.Error("unhandled error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else if strings.HasPrefix(c.Request().URL.Path, "/v1/") {
			err = c.JSON(status, map[string]string{"error": msg})
		} else {
			err = c.Render(status, view.Error, errorPage(msg))
		}
		if err != nil {
			log.Error("write error response", zap.Error(err))
		}
	}
}
