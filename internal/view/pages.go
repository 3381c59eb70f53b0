package view

import (
	"github.com/iliyamo/cine-app/internal/booking"
	"github.com/iliyamo/cine-app/internal/catalog"
	"github.com/iliyamo/cine-app/internal/omdb"
	"github.com/iliyamo/cine-app/internal/seating"
)

// Meta is shared by every page.  When RedirectTo is set the layout sends the
// browser there after RedirectAfter seconds.
type Meta struct {
	Title         string
	RedirectTo    string
	RedirectAfter int
}

type HomePage struct {
	Meta
	Movies  []omdb.Movie
	Cinemas []catalog.Cinema
}

// ShowtimeLink is one clickable showtime.
type ShowtimeLink struct {
	Time string
	URL  string
}

// CinemaShowtimes lists the showtimes of a movie at one cinema.
type CinemaShowtimes struct {
	Cinema    catalog.Cinema
	Showtimes []ShowtimeLink
}

// MoviePage is the showtime selection page.  An empty Cinemas list means the
// movie is not scheduled anywhere.
type MoviePage struct {
	Meta
	Movie   omdb.Movie
	Cinemas []CinemaShowtimes
}

// MovieShowtimes lists the showtimes of one movie at the page's cinema.
type MovieShowtimes struct {
	MovieID   string
	Title     string
	Showtimes []ShowtimeLink
}

type CinemaPage struct {
	Meta
	Cinema catalog.Cinema
	Movies []MovieShowtimes
}

// SeatsPage is the seat map of one seat selection session.
type SeatsPage struct {
	Meta
	Booking    booking.Context
	Rows       []seating.Row
	Selected   []string
	Total      string
	CanConfirm bool
	Prompt     string
	ToggleURL  string
	ConfirmURL string
}

// PaymentOption is one radio button of the payment form.
type PaymentOption struct {
	Value   string
	Label   string
	Checked bool
}

// HiddenField carries a booking parameter through the payment form.
type HiddenField struct {
	Name  string
	Value string
}

type PaymentPage struct {
	Meta
	Summary    booking.Summary
	Total      string
	Options    []PaymentOption
	Fields     []HiddenField
	CanConfirm bool
	Prompt     string
	Action     string
}

type ConfirmationPage struct {
	Meta
	Message string
}

type ErrorPage struct {
	Meta
	Message  string
	HomePath string
}
