// Package handler exposes the HTTP handlers of the site: the HTML pages of
// the booking flow and the public JSON API over the cinema directory.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cine-app/internal/booking"
	"github.com/iliyamo/cine-app/internal/catalog"
)

// PublicHandler serves the read-only directory API.  Every response comes
// straight from the in-memory catalog.
type PublicHandler struct {
	Catalog *catalog.Catalog
}

// PublicCinema represents a cinema exposed via the public API.
type PublicCinema struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// PublicScreening is one movie at one cinema with its showtimes.  Each
// showtime carries the seat selection link for it.
type PublicScreening struct {
	MovieID   string           `json:"movie_id"`
	CinemaID  int              `json:"cinema_id"`
	Showtimes []PublicShowtime `json:"showtimes"`
}

type PublicShowtime struct {
	Time string `json:"time"`
	URL  string `json:"url"`
}

func toPublicCinema(c catalog.Cinema) PublicCinema {
	return PublicCinema{ID: c.ID, Name: c.Name, Location: c.Location}
}

func toPublicScreenings(in []catalog.Screening) []PublicScreening {
	out := make([]PublicScreening, 0, len(in))
	for _, s := range in {
		times := make([]PublicShowtime, 0, len(s.Showtimes))
		for _, t := range s.Showtimes {
			sel := booking.Selection{MovieID: s.MovieID, CinemaID: s.CinemaID, Time: t}
			times = append(times, PublicShowtime{Time: t, URL: sel.URL()})
		}
		out = append(out, PublicScreening{MovieID: s.MovieID, CinemaID: s.CinemaID, Showtimes: times})
	}
	return out
}

// GetPublicCinemas handles GET /v1/cinemas.  Response JSON contains an
// "items" array of PublicCinema in id order.
func (h *PublicHandler) GetPublicCinemas(c echo.Context) error {
	cinemas := h.Catalog.Cinemas()
	out := make([]PublicCinema, 0, len(cinemas))
	for _, cin := range cinemas {
		out = append(out, toPublicCinema(cin))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetPublicCinema handles GET /v1/cinemas/:id.
func (h *PublicHandler) GetPublicCinema(c echo.Context) error {
	cin, err := h.cinema(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPublicCinema(cin))
}

// GetPublicScreeningsByCinema handles GET /v1/cinemas/:id/screenings.  The
// cinema must exist.
func (h *PublicHandler) GetPublicScreeningsByCinema(c echo.Context) error {
	cin, err := h.cinema(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"items": toPublicScreenings(h.Catalog.ScreeningsAtCinema(cin.ID))})
}

// GetPublicScreeningsByMovie handles GET /v1/movies/:id/screenings.  An
// unknown movie simply has no screenings.
func (h *PublicHandler) GetPublicScreeningsByMovie(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": toPublicScreenings(h.Catalog.ScreeningsForMovie(c.Param("id")))})
}

// cinema resolves the :id parameter.  Failures are echo.HTTPErrors rendered
// as JSON by ErrorHandler.
func (h *PublicHandler) cinema(c echo.Context) (catalog.Cinema, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return catalog.Cinema{}, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	cin, ok := h.Catalog.Cinema(id)
	if !ok {
		return catalog.Cinema{}, echo.NewHTTPError(http.StatusNotFound, "cinema not found")
	}
	return cin, nil
}
