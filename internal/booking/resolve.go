package booking

import (
	"context"
	"fmt"

	"github.com/iliyamo/cine-app/internal/catalog"
	"github.com/iliyamo/cine-app/internal/omdb"
)

// MovieLookup resolves an IMDb id to movie details.  Any error means the
// movie is absent.
type MovieLookup interface {
	Lookup(ctx context.Context, imdbID string) (*omdb.Movie, error)
}

// CinemaDirectory resolves a cinema id.  Absence is reported, never failed.
type CinemaDirectory interface {
	Cinema(id int) (catalog.Cinema, bool)
}

// Context is the resolved booking context rendered by the seat selection and
// payment pages.
type Context struct {
	Selection Selection
	Movie     omdb.Movie
	Cinema    catalog.Cinema
}

// Resolver finishes page-entry validation by looking the movie and the cinema
// up.
type Resolver struct {
	Movies  MovieLookup
	Cinemas CinemaDirectory
}

// NewResolver wires a resolver.
func NewResolver(movies MovieLookup, cinemas CinemaDirectory) *Resolver {
	return &Resolver{Movies: movies, Cinemas: cinemas}
}

// Resolve performs exactly one movie lookup and one directory lookup.  An
// absent movie yields ErrMovieNotFound and the directory is not consulted;
// an absent cinema yields ErrCinemaNotFound.  Both messages name the id.
func (r *Resolver) Resolve(ctx context.Context, s Selection) (*Context, error) {
	movie, err := r.Movies.Lookup(ctx, s.MovieID)
	if err != nil || movie == nil {
		return nil, newError(ErrMovieNotFound, fmt.Sprintf("Movie with id %s was not found.", s.MovieID))
	}
	cinema, ok := r.Cinemas.Cinema(s.CinemaID)
	if !ok {
		return nil, newError(ErrCinemaNotFound, fmt.Sprintf("Cinema with id %d was not found.", s.CinemaID))
	}
	return &Context{Selection: s, Movie: *movie, Cinema: cinema}, nil
}
