package seating

import (
	"errors"
	"sync"
)

// ErrNothingSelected is returned by Confirm while no seat is selected.
var ErrNothingSelected = errors.New("no seats selected")

// Grid is the seat map of one selection session.  All methods are safe for
// concurrent use; every Toggle updates the seat status and the selected set
// under the same lock, so callers never observe one without the other.
type Grid struct {
	mu       sync.Mutex
	rows     []string
	perRow   int
	seats    []Seat // layout order: row by row, column ascending
	index    map[string]int
	selected map[string]bool
}

// NewGrid builds a rows × perRow grid and asks occ for the initial state of
// each seat.  A nil occ leaves every seat available.
func NewGrid(rows []string, perRow int, occ Occupancy) *Grid {
	g := &Grid{
		rows:     append([]string(nil), rows...),
		perRow:   perRow,
		seats:    make([]Seat, 0, len(rows)*perRow),
		index:    make(map[string]int, len(rows)*perRow),
		selected: make(map[string]bool),
	}
	for _, row := range g.rows {
		for n := 1; n <= perRow; n++ {
			status := Available
			if occ != nil && occ.Occupied(row, n) {
				status = Occupied
			}
			id := SeatID(row, n)
			g.index[id] = len(g.seats)
			g.seats = append(g.seats, Seat{ID: id, Row: row, Number: n, Status: status})
		}
	}
	return g
}

// Toggle flips the seat between available and selected and reports whether
// anything changed.  Unknown ids and occupied seats are ignored.
func (g *Grid) Toggle(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.index[id]
	if !ok {
		return false
	}
	switch g.seats[i].Status {
	case Available:
		g.seats[i].Status = Selected
		g.selected[id] = true
	case Selected:
		g.seats[i].Status = Available
		delete(g.selected, id)
	default:
		return false
	}
	return true
}

// Selected returns the selected seat ids in layout order: by row as the rows
// were given, then by column number.
func (g *Grid) Selected() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selectedLocked()
}

func (g *Grid) selectedLocked() []string {
	out := make([]string, 0, len(g.selected))
	for _, s := range g.seats {
		if s.Status == Selected {
			out = append(out, s.ID)
		}
	}
	return out
}

// SelectedCount is the size of the selected set.
func (g *Grid) SelectedCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.selected)
}

// CanConfirm reports whether Confirm would succeed.
func (g *Grid) CanConfirm() bool {
	return g.SelectedCount() > 0
}

// Confirm returns the selected seats for the next step of the booking.
func (g *Grid) Confirm() ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.selected) == 0 {
		return nil, ErrNothingSelected
	}
	return g.selectedLocked(), nil
}

// Seat returns a copy of the seat with the given id.
func (g *Grid) Seat(id string) (Seat, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.index[id]
	if !ok {
		return Seat{}, false
	}
	return g.seats[i], true
}

// Seats returns a copy of every seat in layout order.
func (g *Grid) Seats() []Seat {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Seat(nil), g.seats...)
}

// Row is one line of the grid as rendered by the seat map.
type Row struct {
	Label string
	Seats []Seat
}

// Rows groups the seats per row in layout order.
func (g *Grid) Rows() []Row {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Row, 0, len(g.rows))
	for r, label := range g.rows {
		start := r * g.perRow
		out = append(out, Row{Label: label, Seats: append([]Seat(nil), g.seats[start:start+g.perRow]...)})
	}
	return out
}
