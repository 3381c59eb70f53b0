// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/cine-app/internal/booking"
)

// BookingConfirmedQueue is the durable queue confirmed demo bookings go to.
const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is published when a visitor confirms the payment
// page.  The demo never charges anyone; the event only feeds the booking log
// written by the consumer.
type BookingConfirmedEvent struct {
	BookingRef    string   `json:"booking_ref"`
	MovieID       string   `json:"movie_id"`
	MovieTitle    string   `json:"movie_title"`
	CinemaID      int      `json:"cinema_id"`
	CinemaName    string   `json:"cinema_name"`
	Showtime      string   `json:"showtime"`
	SeatLabels    []string `json:"seats"`
	PaymentMethod string   `json:"payment_method"`
	TotalAmount   int      `json:"total_amount"`
	Currency      string   `json:"currency"`
	ConfirmedAt   string   `json:"confirmed_at"`
}

// NewBookingConfirmedEvent builds the event for a receipt.
func NewBookingConfirmedEvent(r booking.Receipt, now time.Time) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		BookingRef:    uuid.NewString(),
		MovieID:       r.Selection.MovieID,
		MovieTitle:    r.Movie.Title,
		CinemaID:      r.Cinema.ID,
		CinemaName:    r.Cinema.Name,
		Showtime:      r.Selection.Time,
		SeatLabels:    append([]string(nil), r.Seats...),
		PaymentMethod: string(r.Method),
		TotalAmount:   r.Total,
		Currency:      booking.Currency,
		ConfirmedAt:   now.UTC().Format(time.RFC3339),
	}
}
