package seating

import "errors"

// ErrBadSnapshot is returned by Restore when a snapshot does not describe a
// complete rows × perRow grid.
var ErrBadSnapshot = errors.New("invalid seat grid snapshot")

// Snapshot is the serializable state of a grid, used by the session stores.
type Snapshot struct {
	Rows   []string `json:"rows"`
	PerRow int      `json:"per_row"`
	Seats  []Seat   `json:"seats"`
}

// Snapshot captures the current grid state.
func (g *Grid) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{
		Rows:   append([]string(nil), g.rows...),
		PerRow: g.perRow,
		Seats:  append([]Seat(nil), g.seats...),
	}
}

// Restore rebuilds a grid from a snapshot.  The selected set is derived from
// the seat statuses.
func Restore(s Snapshot) (*Grid, error) {
	if s.PerRow <= 0 || len(s.Seats) != len(s.Rows)*s.PerRow {
		return nil, ErrBadSnapshot
	}
	g := NewGrid(s.Rows, s.PerRow, nil)
	for i, seat := range s.Seats {
		want := g.seats[i]
		if seat.ID != want.ID || seat.Row != want.Row || seat.Number != want.Number {
			return nil, ErrBadSnapshot
		}
		switch seat.Status {
		case Available, Occupied:
		case Selected:
			g.selected[seat.ID] = true
		default:
			return nil, ErrBadSnapshot
		}
		g.seats[i].Status = seat.Status
	}
	return g, nil
}
