package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cine-app/internal/catalog"
	"github.com/iliyamo/cine-app/internal/omdb"
)

type fakeMovies struct {
	movies map[string]omdb.Movie
	calls  int
}

func (f *fakeMovies) Lookup(_ context.Context, id string) (*omdb.Movie, error) {
	f.calls++
	m, ok := f.movies[id]
	if !ok {
		return nil, omdb.ErrNotFound
	}
	return &m, nil
}

type countingDirectory struct {
	*catalog.Catalog
	calls int
}

func (d *countingDirectory) Cinema(id int) (catalog.Cinema, bool) {
	d.calls++
	return d.Catalog.Cinema(id)
}

func newResolver() (*Resolver, *fakeMovies, *countingDirectory) {
	movies := &fakeMovies{movies: map[string]omdb.Movie{
		"tt0848228": {Title: "The Avengers", Year: "2012", IMDbID: "tt0848228"},
	}}
	dir := &countingDirectory{Catalog: catalog.Sample()}
	return NewResolver(movies, dir), movies, dir
}

func TestResolveSuccess(t *testing.T) {
	r, movies, dir := newResolver()
	sel := Selection{MovieID: "tt0848228", CinemaID: 1, Time: "16:45"}

	bc, err := r.Resolve(context.Background(), sel)
	require.NoError(t, err)
	assert.Equal(t, "The Avengers", bc.Movie.Title)
	assert.Equal(t, "Cineplex Centro", bc.Cinema.Name)
	assert.Equal(t, sel, bc.Selection)
	assert.Equal(t, 1, movies.calls)
	assert.Equal(t, 1, dir.calls)
}

func TestResolveMovieNotFoundStopsChain(t *testing.T) {
	r, _, dir := newResolver()
	_, err := r.Resolve(context.Background(), Selection{MovieID: "tt9999999", CinemaID: 42, Time: "10:00"})
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Contains(t, err.Error(), "tt9999999")
	assert.Zero(t, dir.calls)
}

func TestResolveCinemaNotFound(t *testing.T) {
	r, _, _ := newResolver()
	_, err := r.Resolve(context.Background(), Selection{MovieID: "tt0848228", CinemaID: 42, Time: "10:00"})
	assert.ErrorIs(t, err, ErrCinemaNotFound)
	assert.Contains(t, err.Error(), "42")
}

type failingMovies struct{}

func (failingMovies) Lookup(context.Context, string) (*omdb.Movie, error) {
	return nil, errors.New("dial tcp: timeout")
}

func TestResolveTreatsAnyLookupErrorAsNotFound(t *testing.T) {
	r := NewResolver(failingMovies{}, catalog.Sample())
	_, err := r.Resolve(context.Background(), Selection{MovieID: "tt0848228", CinemaID: 1, Time: "10:00"})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}
