// Package session keeps the state of seat selection screens between
// requests.  A session lives from the moment a visitor opens the seat map
// until the selection is confirmed or the TTL runs out; nothing about it is
// kept afterwards.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/cine-app/internal/booking"
	"github.com/iliyamo/cine-app/internal/seating"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("seat session not found")

// Session is one seat selection screen: the resolved booking context and the
// seat grid it owns.
type Session struct {
	ID        string
	Booking   booking.Context
	Grid      *seating.Grid
	CreatedAt time.Time
}

// New starts a session with a fresh random id.
func New(bc booking.Context, grid *seating.Grid, now time.Time) *Session {
	return &Session{ID: uuid.NewString(), Booking: bc, Grid: grid, CreatedAt: now.UTC()}
}

// Checkout confirms the grid and returns the parameters of the payment page.
func (s *Session) Checkout() (booking.Checkout, error) {
	seats, err := s.Grid.Confirm()
	if err != nil {
		return booking.Checkout{}, err
	}
	return booking.Checkout{Selection: s.Booking.Selection, Seats: seats}, nil
}

// Store persists sessions for their TTL.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	// Update loads the session, applies fn and saves the result.  When fn
	// returns an error nothing is saved.
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// ValidID reports whether id looks like a session id, so obviously bad ids
// never reach the backing store.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type record struct {
	ID        string           `json:"id"`
	Booking   booking.Context  `json:"booking"`
	Grid      seating.Snapshot `json:"grid"`
	CreatedAt time.Time        `json:"created_at"`
}

func encode(s *Session) ([]byte, error) {
	return json.Marshal(record{ID: s.ID, Booking: s.Booking, Grid: s.Grid.Snapshot(), CreatedAt: s.CreatedAt})
}

func decode(bs []byte) (*Session, error) {
	var rec record
	if err := json.Unmarshal(bs, &rec); err != nil {
		return nil, err
	}
	grid, err := seating.Restore(rec.Grid)
	if err != nil {
		return nil, err
	}
	return &Session{ID: rec.ID, Booking: rec.Booking, Grid: grid, CreatedAt: rec.CreatedAt}, nil
}
