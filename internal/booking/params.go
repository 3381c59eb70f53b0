// Package booking carries the booking context across the pages of the
// booking flow (showtime → seats → payment) and implements the payment
// summary.
//
// Pages share no memory: each one rebuilds its parameters from the query
// string it was opened with.  Every phase has its own parameter shape, so a
// payment page can never be reached with an empty seat list.
package booking

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query string keys of the booking flow.
const (
	KeyMovieID  = "movieId"
	KeyCinemaID = "cinemaId"
	KeyTime     = "time"
	KeySeats    = "seats"

	SeatSeparator = ","
)

// Page locations.
const (
	HomePath          = "/"
	SeatSelectionPath = "/seleccionar-asientos"
	PaymentPath       = "/pago"
)

// Selection is what the seat selection page needs: a movie showing at a
// cinema at a given time.  Time is an opaque display label.
type Selection struct {
	MovieID  string
	CinemaID int
	Time     string
}

// Query encodes the selection as movieId, cinemaId and time.
func (s Selection) Query() url.Values {
	return url.Values{
		KeyMovieID:  {s.MovieID},
		KeyCinemaID: {strconv.Itoa(s.CinemaID)},
		KeyTime:     {s.Time},
	}
}

// URL is the seat selection location for the selection.
func (s Selection) URL() string {
	return SeatSelectionPath + "?" + s.Query().Encode()
}

// Checkout is what the payment page needs: a selection plus the chosen
// seats, in grid order.  Seats is never empty for a decoded Checkout.
type Checkout struct {
	Selection
	Seats []string
}

// Query encodes the checkout; seats are joined with a comma.
func (c Checkout) Query() url.Values {
	q := c.Selection.Query()
	q.Set(KeySeats, strings.Join(c.Seats, SeatSeparator))
	return q
}

// URL is the payment location for the checkout.
func (c Checkout) URL() string {
	return PaymentPath + "?" + c.Query().Encode()
}

// DecodeSelection rebuilds a Selection.  Checks run in order and stop at the
// first failure: a missing or empty key yields ErrMissingParams, then a
// cinemaId that is not a non-negative integer yields ErrInvalidCinemaID.
func DecodeSelection(q url.Values) (Selection, error) {
	movieID, cinemaRaw, t := q.Get(KeyMovieID), q.Get(KeyCinemaID), q.Get(KeyTime)
	if movieID == "" || cinemaRaw == "" || t == "" {
		return Selection{}, newError(ErrMissingParams,
			"Missing booking data (movie, cinema, time).")
	}
	cinemaID, err := parseCinemaID(cinemaRaw)
	if err != nil {
		return Selection{}, err
	}
	return Selection{MovieID: movieID, CinemaID: cinemaID, Time: t}, nil
}

// DecodeCheckout rebuilds a Checkout with the same rules as DecodeSelection.
// The seats value is split on commas with empty tokens dropped; when nothing
// is left the seats count as missing.
func DecodeCheckout(q url.Values) (Checkout, error) {
	movieID, cinemaRaw, t := q.Get(KeyMovieID), q.Get(KeyCinemaID), q.Get(KeyTime)
	seats := SplitSeats(q.Get(KeySeats))
	if movieID == "" || cinemaRaw == "" || t == "" || len(seats) == 0 {
		return Checkout{}, newError(ErrMissingParams,
			"Missing booking data (movie, cinema, time, seats).")
	}
	cinemaID, err := parseCinemaID(cinemaRaw)
	if err != nil {
		return Checkout{}, err
	}
	return Checkout{
		Selection: Selection{MovieID: movieID, CinemaID: cinemaID, Time: t},
		Seats:     seats,
	}, nil
}

// SplitSeats splits a comma separated seat list, discarding empty tokens.
func SplitSeats(raw string) []string {
	out := []string{}
	for _, tok := range strings.Split(raw, SeatSeparator) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// ParseCinemaID parses a cinema id the way the booking pages do.
func ParseCinemaID(raw string) (int, error) {
	return parseCinemaID(raw)
}

func parseCinemaID(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, newError(ErrInvalidCinemaID, fmt.Sprintf("Invalid cinema id %q.", raw))
	}
	return n, nil
}
