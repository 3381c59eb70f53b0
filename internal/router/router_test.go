package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cine-app/internal/catalog"
	"github.com/iliyamo/cine-app/internal/handler"
	"github.com/iliyamo/cine-app/internal/omdb"
	"github.com/iliyamo/cine-app/internal/session"
)

type noMovies struct{}

func (noMovies) Lookup(context.Context, string) (*omdb.Movie, error) { return nil, omdb.ErrNotFound }
func (noMovies) LookupMany(context.Context, []string) []omdb.Movie   { return nil }

func newServer() *echo.Echo {
	cat := catalog.Sample()
	return New(Options{
		Pages:  handler.NewPageHandler(noMovies{}, cat, session.NewMemoryStore(time.Minute), nil, nil, nil),
		Public: &handler.PublicHandler{Catalog: cat},
		Health: &handler.HealthHandler{},
	})
}

func TestRoutesAreRegistered(t *testing.T) {
	e := newServer()
	have := map[string]bool{}
	for _, r := range e.Routes() {
		have[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /",
		"GET /healthz",
		"GET /movie/:movieId",
		"GET /cinemas/:cinemaId",
		"GET /seleccionar-asientos",
		"GET /seleccionar-asientos/:sessionId",
		"POST /seleccionar-asientos/:sessionId/toggle",
		"POST /seleccionar-asientos/:sessionId/confirm",
		"GET /pago",
		"POST /pago",
		"GET /v1/cinemas",
		"GET /v1/cinemas/:id",
		"GET /v1/cinemas/:id/screenings",
		"GET /v1/movies/:id/screenings",
	} {
		assert.True(t, have[want], want)
	}
}

func TestUnknownRouteRendersErrorPage(t *testing.T) {
	e := newServer()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Back to home")
}

func TestUnknownAPIRouteAnswersJSON(t *testing.T) {
	e := newServer()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nowhere", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
