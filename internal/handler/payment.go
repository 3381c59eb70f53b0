package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cine-app/internal/booking"
	"github.com/iliyamo/cine-app/internal/queue"
	"github.com/iliyamo/cine-app/internal/view"
)

// publishTimeout caps how long a confirmation waits for the booking event.
const publishTimeout = 3 * time.Second

// Payment handles GET /pago.  An optional "method" query value preselects a
// payment option.
func (h *PageHandler) Payment(c echo.Context) error {
	q := c.QueryParams()
	summary, err := h.summary(c, q)
	if err != nil {
		return h.renderBookingError(c, err)
	}
	var form booking.PaymentForm
	form.Select(q.Get("method"))
	return h.renderPayment(c, http.StatusOK, summary, form, "")
}

// ConfirmPayment handles POST /pago.  The booking parameters travel as form
// fields next to the chosen method.  Nothing is charged or stored; the
// confirmation is shown and the browser returns home.
func (h *PageHandler) ConfirmPayment(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return h.renderBookingError(c, err)
	}
	summary, err := h.summary(c, form)
	if err != nil {
		return h.renderBookingError(c, err)
	}
	receipt, err := summary.Confirm(form.Get("method"))
	if errors.Is(err, booking.ErrNoPaymentMethod) {
		return h.renderPayment(c, http.StatusUnprocessableEntity, summary, booking.PaymentForm{}, "Please select a payment method.")
	}
	if err != nil {
		return h.renderBookingError(c, err)
	}

	event := queue.NewBookingConfirmedEvent(receipt, h.Now())
	pctx, cancel := context.WithTimeout(c.Request().Context(), publishTimeout)
	defer cancel()
	if err := h.Publisher.PublishBookingConfirmed(pctx, event); err != nil {
		h.Log.Warn("booking event not published", zap.String("booking_ref", event.BookingRef), zap.Error(err))
	}

	return c.Render(http.StatusOK, view.Confirmation, view.ConfirmationPage{
		Meta: view.Meta{
			Title:         "Booking confirmed",
			RedirectTo:    booking.HomePath,
			RedirectAfter: confirmationDelay,
		},
		Message: receipt.Message(),
	})
}

func (h *PageHandler) summary(c echo.Context, q url.Values) (booking.Summary, error) {
	checkout, err := booking.DecodeCheckout(q)
	if err != nil {
		return booking.Summary{}, err
	}
	bc, err := h.Resolver.Resolve(c.Request().Context(), checkout.Selection)
	if err != nil {
		return booking.Summary{}, err
	}
	return booking.NewSummary(*bc, checkout.Seats), nil
}

func (h *PageHandler) renderPayment(c echo.Context, status int, s booking.Summary, form booking.PaymentForm, prompt string) error {
	options := make([]view.PaymentOption, 0, len(booking.PaymentMethods))
	for _, m := range booking.PaymentMethods {
		options = append(options, view.PaymentOption{Value: string(m), Label: m.Label(), Checked: form.Selected(m)})
	}
	checkout := booking.Checkout{Selection: s.Selection, Seats: s.Seats}
	q := checkout.Query()
	fields := make([]view.HiddenField, 0, len(q))
	for _, k := range []string{booking.KeyMovieID, booking.KeyCinemaID, booking.KeyTime, booking.KeySeats} {
		fields = append(fields, view.HiddenField{Name: k, Value: q.Get(k)})
	}
	return c.Render(status, view.Payment, view.PaymentPage{
		Meta:       view.Meta{Title: "Payment"},
		Summary:    s,
		Total:      s.FormattedTotal(),
		Options:    options,
		Fields:     fields,
		CanConfirm: form.CanConfirm(),
		Prompt:     prompt,
		Action:     booking.PaymentPath,
	})
}
