package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cine-app/internal/booking"
	"github.com/iliyamo/cine-app/internal/catalog"
	"github.com/iliyamo/cine-app/internal/omdb"
	"github.com/iliyamo/cine-app/internal/queue"
	"github.com/iliyamo/cine-app/internal/seating"
	"github.com/iliyamo/cine-app/internal/session"
	"github.com/iliyamo/cine-app/internal/view"
)

// MovieSource is the movie lookup used by the pages.
type MovieSource interface {
	booking.MovieLookup
	LookupMany(ctx context.Context, ids []string) []omdb.Movie
}

// Publisher receives confirmed demo bookings.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error
}

// confirmationDelay is how long the confirmation page stays before the
// browser returns home.
const confirmationDelay = 5

// PageHandler renders the HTML pages of the booking flow.
type PageHandler struct {
	Movies    MovieSource
	Catalog   *catalog.Catalog
	Resolver  *booking.Resolver
	Sessions  session.Store
	Occupancy seating.Occupancy
	Publisher Publisher
	Log       *zap.Logger
	Now       func() time.Time
}

// NewPageHandler wires the page handlers and panics if a required dependency
// is nil.  A nil publisher drops events.
func NewPageHandler(movies MovieSource, cat *catalog.Catalog, sessions session.Store, occ seating.Occupancy, pub Publisher, log *zap.Logger) *PageHandler {
	if movies == nil || cat == nil || sessions == nil {
		panic("nil dependency passed to NewPageHandler")
	}
	if pub == nil {
		pub = nopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PageHandler{
		Movies:    movies,
		Catalog:   cat,
		Resolver:  booking.NewResolver(movies, cat),
		Sessions:  sessions,
		Occupancy: occ,
		Publisher: pub,
		Log:       log,
		Now:       time.Now,
	}
}

type nopPublisher struct{}

func (nopPublisher) PublishBookingConfirmed(context.Context, queue.BookingConfirmedEvent) error {
	return nil
}

// Home handles GET /: the featured movies and the cinema directory.
func (h *PageHandler) Home(c echo.Context) error {
	movies := h.Movies.LookupMany(c.Request().Context(), h.Catalog.MovieIDs())
	return c.Render(http.StatusOK, view.Home, view.HomePage{
		Meta:    view.Meta{Title: "Now showing"},
		Movies:  movies,
		Cinemas: h.Catalog.Cinemas(),
	})
}

// Movie handles GET /movie/:movieId, the showtime selection page.  Every
// cinema showing the movie is listed with all of its showtimes; screenings at
// cinemas missing from the directory are skipped.
func (h *PageHandler) Movie(c echo.Context) error {
	movieID := c.Param("movieId")
	movie, err := h.Movies.Lookup(c.Request().Context(), movieID)
	if err != nil {
		return h.renderError(c, http.StatusNotFound, "Movie with id "+movieID+" was not found.")
	}

	page := view.MoviePage{Meta: view.Meta{Title: movie.Title}, Movie: *movie}
	for _, s := range h.Catalog.ScreeningsForMovie(movieID) {
		cinema, ok := h.Catalog.Cinema(s.CinemaID)
		if !ok {
			continue
		}
		page.Cinemas = append(page.Cinemas, view.CinemaShowtimes{
			Cinema:    cinema,
			Showtimes: showtimeLinks(movieID, cinema.ID, s.Showtimes),
		})
	}
	return c.Render(http.StatusOK, view.Movie, page)
}

// Cinema handles GET /cinemas/:cinemaId: what is showing at one cinema.
func (h *PageHandler) Cinema(c echo.Context) error {
	raw := c.Param("cinemaId")
	id, err := booking.ParseCinemaID(raw)
	if err != nil {
		return h.renderBookingError(c, err)
	}
	cinema, ok := h.Catalog.Cinema(id)
	if !ok {
		return h.renderError(c, http.StatusNotFound, "Cinema with id "+raw+" was not found.")
	}

	screenings := h.Catalog.ScreeningsAtCinema(id)
	ids := make([]string, 0, len(screenings))
	for _, s := range screenings {
		ids = append(ids, s.MovieID)
	}
	titles := make(map[string]string, len(ids))
	for _, m := range h.Movies.LookupMany(c.Request().Context(), ids) {
		titles[m.IMDbID] = m.Title
	}

	page := view.CinemaPage{Meta: view.Meta{Title: cinema.Name}, Cinema: cinema}
	for _, s := range screenings {
		title := titles[s.MovieID]
		if title == "" {
			title = s.MovieID
		}
		page.Movies = append(page.Movies, view.MovieShowtimes{
			MovieID:   s.MovieID,
			Title:     title,
			Showtimes: showtimeLinks(s.MovieID, id, s.Showtimes),
		})
	}
	return c.Render(http.StatusOK, view.Cinema, page)
}

func showtimeLinks(movieID string, cinemaID int, times []string) []view.ShowtimeLink {
	out := make([]view.ShowtimeLink, 0, len(times))
	for _, t := range times {
		sel := booking.Selection{MovieID: movieID, CinemaID: cinemaID, Time: t}
		out = append(out, view.ShowtimeLink{Time: t, URL: sel.URL()})
	}
	return out
}
