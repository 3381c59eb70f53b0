package router // package router defines how HTTP routes are registered for the site

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/cine-app/internal/booking"
	"github.com/iliyamo/cine-app/internal/handler"
	"github.com/iliyamo/cine-app/internal/middleware"
	"github.com/iliyamo/cine-app/internal/view"
)

// Options carries the handlers and the middleware to mount.  Cache and
// RateLimit may be nil, in which case nothing is applied.
type Options struct {
	Pages     *handler.PageHandler
	Public    *handler.PublicHandler
	Health    *handler.HealthHandler
	Renderer  echo.Renderer
	Cache     echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc
	Log       *zap.Logger
}

// New builds the Echo instance with every route of the site.
func New(o Options) *echo.Echo {
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.Renderer == nil {
		o.Renderer = view.Must()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = o.Renderer
	e.HTTPErrorHandler = handler.ErrorHandler(o.Log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(o.Log))
	if o.RateLimit != nil {
		e.Use(o.RateLimit)
	}

	RegisterRoutes(e, o.Health)
	RegisterPages(e, o.Pages)
	RegisterPublic(e, o.Public, o.Cache)
	return e
}

// RegisterRoutes registers the health check.
func RegisterRoutes(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/healthz", h.Health)
}

// RegisterPages registers the HTML pages of the booking flow.
func RegisterPages(e *echo.Echo, p *handler.PageHandler) {
	e.GET(booking.HomePath, p.Home)
	e.GET("/movie/:movieId", p.Movie)
	e.GET("/cinemas/:cinemaId", p.Cinema)

	seats := e.Group(booking.SeatSelectionPath)
	seats.GET("", p.StartSeatSelection)
	seats.GET("/:sessionId", p.SeatSelection)
	seats.POST("/:sessionId/toggle", p.ToggleSeat)
	seats.POST("/:sessionId/confirm", p.ConfirmSeats)

	e.GET(booking.PaymentPath, p.Payment)
	e.POST(booking.PaymentPath, p.ConfirmPayment)
}

// RegisterPublic registers the read-only directory API under /v1.  The
// response cache only wraps these routes.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if cache != nil {
		g.Use(cache)
	}
	g.GET("/cinemas", p.GetPublicCinemas)
	g.GET("/cinemas/:id", p.GetPublicCinema)
	g.GET("/cinemas/:id/screenings", p.GetPublicScreeningsByCinema)
	g.GET("/movies/:id/screenings", p.GetPublicScreeningsByMovie)
}
