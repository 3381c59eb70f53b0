// Package seating models the seat grid of one seat selection session.
//
// A grid is created once with its occupancy fixed.  Afterwards the only
// transition is Toggle, which moves a seat between available and selected.
// Occupied seats never change.
package seating

import "strconv"

// Status is the state of a single seat.
type Status string

const (
	Available Status = "available"
	Occupied  Status = "occupied"
	Selected  Status = "selected"
)

// Seat is one cell of the grid.  ID is the row letter followed by the column
// number, for example "C5".
type Seat struct {
	ID     string `json:"id"`
	Row    string `json:"row"`
	Number int    `json:"number"`
	Status Status `json:"status"`
}

// SeatID formats the id of the seat at row and column number.
func SeatID(row string, number int) string {
	return row + strconv.Itoa(number)
}

// Reference layout of the demo auditorium.
var DefaultRows = []string{"A", "B", "C", "D", "E"}

const DefaultPerRow = 8
