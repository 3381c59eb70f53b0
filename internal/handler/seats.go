package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cine-app/internal/booking"
	"github.com/iliyamo/cine-app/internal/seating"
	"github.com/iliyamo/cine-app/internal/session"
	"github.com/iliyamo/cine-app/internal/view"
)

const noSeatsPrompt = "Please select at least one seat."

// StartSeatSelection handles GET /seleccionar-asientos.  The selection is
// decoded and resolved, a seat session with a fresh grid is opened and the
// browser is sent to it.
func (h *PageHandler) StartSeatSelection(c echo.Context) error {
	sel, err := booking.DecodeSelection(c.QueryParams())
	if err != nil {
		return h.renderBookingError(c, err)
	}
	bc, err := h.Resolver.Resolve(c.Request().Context(), sel)
	if err != nil {
		return h.renderBookingError(c, err)
	}

	grid := seating.NewGrid(seating.DefaultRows, seating.DefaultPerRow, h.Occupancy)
	s := session.New(*bc, grid, h.Now())
	if err := h.Sessions.Create(c.Request().Context(), s); err != nil {
		return h.renderBookingError(c, err)
	}
	h.Log.Debug("seat session opened",
		zap.String("session_id", s.ID),
		zap.String("movie_id", sel.MovieID),
		zap.Int("cinema_id", sel.CinemaID),
		zap.String("time", sel.Time))
	return c.Redirect(http.StatusSeeOther, sessionPath(s.ID))
}

// SeatSelection handles GET /seleccionar-asientos/:sessionId.
func (h *PageHandler) SeatSelection(c echo.Context) error {
	s, err := h.loadSession(c)
	if err != nil {
		return h.renderBookingError(c, err)
	}
	return h.renderSeats(c, http.StatusOK, s, "")
}

// ToggleSeat handles POST /seleccionar-asientos/:sessionId/toggle with the
// seat id in the "seat" form field.  Unknown and occupied seats are ignored.
func (h *PageHandler) ToggleSeat(c echo.Context) error {
	id := c.Param("sessionId")
	if !session.ValidID(id) {
		return h.renderBookingError(c, session.ErrNotFound)
	}
	seat := c.FormValue("seat")
	if _, err := h.Sessions.Update(c.Request().Context(), id, func(s *session.Session) error {
		s.Grid.Toggle(seat)
		return nil
	}); err != nil {
		return h.renderBookingError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, sessionPath(id))
}

// ConfirmSeats handles POST /seleccionar-asientos/:sessionId/confirm.  With
// no seat selected the page comes back with a prompt; otherwise the session
// ends and the browser moves on to the payment page.
func (h *PageHandler) ConfirmSeats(c echo.Context) error {
	s, err := h.loadSession(c)
	if err != nil {
		return h.renderBookingError(c, err)
	}
	checkout, err := s.Checkout()
	if errors.Is(err, seating.ErrNothingSelected) {
		return h.renderSeats(c, http.StatusUnprocessableEntity, s, noSeatsPrompt)
	}
	if err != nil {
		return h.renderBookingError(c, err)
	}
	if err := h.Sessions.Delete(c.Request().Context(), s.ID); err != nil {
		h.Log.Warn("seat session delete failed", zap.String("session_id", s.ID), zap.Error(err))
	}
	return c.Redirect(http.StatusSeeOther, checkout.URL())
}

func (h *PageHandler) loadSession(c echo.Context) (*session.Session, error) {
	id := c.Param("sessionId")
	if !session.ValidID(id) {
		return nil, session.ErrNotFound
	}
	return h.Sessions.Get(c.Request().Context(), id)
}

func (h *PageHandler) renderSeats(c echo.Context, status int, s *session.Session, prompt string) error {
	selected := s.Grid.Selected()
	return c.Render(status, view.Seats, view.SeatsPage{
		Meta:       view.Meta{Title: "Select your seats"},
		Booking:    s.Booking,
		Rows:       s.Grid.Rows(),
		Selected:   selected,
		Total:      booking.FormatARS(booking.Total(len(selected))),
		CanConfirm: s.Grid.CanConfirm(),
		Prompt:     prompt,
		ToggleURL:  sessionPath(s.ID) + "/toggle",
		ConfirmURL: sessionPath(s.ID) + "/confirm",
	})
}

func sessionPath(id string) string {
	return booking.SeatSelectionPath + "/" + id
}
