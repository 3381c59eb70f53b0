package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cine-app/internal/booking"
	"github.com/iliyamo/cine-app/internal/catalog"
	"github.com/iliyamo/cine-app/internal/omdb"
	"github.com/iliyamo/cine-app/internal/seating"
)

var created = time.Date(2024, 5, 4, 16, 0, 0, 0, time.UTC)

func newSession() *Session {
	bc := booking.Context{
		Selection: booking.Selection{MovieID: "tt0848228", CinemaID: 1, Time: "16:45"},
		Movie:     omdb.Movie{Title: "The Avengers", Year: "2012", IMDbID: "tt0848228", Response: "True"},
		Cinema:    catalog.Cinema{ID: 1, Name: "Cineplex Centro", Location: "Av. Corrientes 1234, CABA"},
	}
	grid := seating.NewGrid(seating.DefaultRows, seating.DefaultPerRow, seating.Occupy("A1"))
	return New(bc, grid, created)
}

func TestNewSessionID(t *testing.T) {
	s := newSession()
	assert.True(t, ValidID(s.ID))
	assert.False(t, ValidID("../etc"))
	assert.NotEqual(t, s.ID, newSession().ID)
}

func TestCheckout(t *testing.T) {
	s := newSession()
	_, err := s.Checkout()
	assert.ErrorIs(t, err, seating.ErrNothingSelected)

	s.Grid.Toggle("B2")
	s.Grid.Toggle("A4")
	co, err := s.Checkout()
	require.NoError(t, err)
	assert.Equal(t, s.Booking.Selection, co.Selection)
	assert.Equal(t, []string{"A4", "B2"}, co.Seats)
}

func TestEncodeDecode(t *testing.T) {
	s := newSession()
	s.Grid.Toggle("C5")
	bs, err := encode(s)
	require.NoError(t, err)

	got, err := decode(bs)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.Booking, got.Booking)
	assert.Equal(t, s.CreatedAt, got.CreatedAt)
	assert.Equal(t, s.Grid.Seats(), got.Grid.Seats())

	_, err = decode([]byte(`{"grid":{"rows":["A"],"per_row":1,"seats":[]}}`))
	assert.ErrorIs(t, err, seating.ErrBadSnapshot)
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	now := created
	m := NewMemoryStore(time.Minute)
	m.now = func() time.Time { return now }

	s := newSession()
	require.NoError(t, m.Create(ctx, s))
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Update(ctx, s.ID, func(s *Session) error {
		s.Grid.Toggle("D1")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"D1"}, s.Grid.Selected())

	boom := errors.New("boom")
	_, err = m.Update(ctx, s.ID, func(*Session) error { return boom })
	assert.ErrorIs(t, err, boom)

	require.NoError(t, m.Delete(ctx, s.ID))
	_, err = m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Update(ctx, s.ID, func(*Session) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := created
	m := NewMemoryStore(time.Minute)
	m.now = func() time.Time { return now }

	s := newSession()
	require.NoError(t, m.Create(ctx, s))

	now = now.Add(50 * time.Second)
	_, err := m.Update(ctx, s.ID, func(*Session) error { return nil })
	require.NoError(t, err, "update refreshes the ttl")

	now = now.Add(50 * time.Second)
	_, err = m.Get(ctx, s.ID)
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, m.Len())
}

func TestRedisStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, "cine:seats", 30*time.Minute)

	s := newSession()
	payload, err := encode(s)
	require.NoError(t, err)
	key := "cine:seats:" + s.ID

	mock.ExpectSet(key, payload, 30*time.Minute).SetVal("OK")
	require.NoError(t, store.Create(ctx, s))

	mock.ExpectGet(key).SetVal(string(payload))
	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Grid.Seats(), got.Grid.Seats())
	assert.Equal(t, "The Avengers", got.Booking.Movie.Title)

	mock.ExpectGet("cine:seats:missing").RedisNil()
	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreUpdateSavesToggledGrid(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, "cine:seats", time.Minute)

	s := newSession()
	before, err := encode(s)
	require.NoError(t, err)
	s.Grid.Toggle("E8")
	after, err := encode(s)
	require.NoError(t, err)
	key := "cine:seats:" + s.ID

	mock.ExpectGet(key).SetVal(string(before))
	mock.ExpectSet(key, after, time.Minute).SetVal("OK")

	got, err := store.Update(ctx, s.ID, func(s *Session) error {
		s.Grid.Toggle("E8")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"E8"}, got.Grid.Selected())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreDeleteAndErrors(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, "p", time.Minute)

	mock.ExpectDel("p:abc").SetVal(1)
	require.NoError(t, store.Delete(ctx, "abc"))

	mock.ExpectGet("p:abc").SetErr(errors.New("connection refused"))
	_, err := store.Get(ctx, "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
