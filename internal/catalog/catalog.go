// Package catalog holds the cinema directory and the screening index.  Both
// are fixed in-memory datasets: lookups are synchronous, never fail and
// report absence explicitly instead of returning errors.
package catalog

import "sort"

// Cinema describes a venue.  Values are immutable once the catalog is built.
type Cinema struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Screening associates a movie (by its IMDb id) with a cinema and the
// showtime labels for that pair.  Showtimes are display strings such as
// "14:30" and keep their dataset order.
type Screening struct {
	MovieID   string   `json:"movie_id"`
	CinemaID  int      `json:"cinema_id"`
	Showtimes []string `json:"showtimes"`
}

// Catalog is the read-only view over cinemas and screenings.  It is safe for
// concurrent use because nothing mutates it after New returns.
type Catalog struct {
	cinemas    []Cinema
	byID       map[int]int
	screenings []Screening
}

// New builds a catalog from the given records.  Inputs are copied so later
// changes by the caller do not leak into the catalog.  Cinemas are kept in id
// order; when an id repeats, the first record wins.
func New(cinemas []Cinema, screenings []Screening) *Catalog {
	c := &Catalog{byID: make(map[int]int, len(cinemas))}
	sorted := append([]Cinema(nil), cinemas...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for _, cin := range sorted {
		if _, dup := c.byID[cin.ID]; dup {
			continue
		}
		c.byID[cin.ID] = len(c.cinemas)
		c.cinemas = append(c.cinemas, cin)
	}
	c.screenings = make([]Screening, 0, len(screenings))
	for _, s := range screenings {
		s.Showtimes = append([]string(nil), s.Showtimes...)
		c.screenings = append(c.screenings, s)
	}
	return c
}

// Cinema returns the cinema with the given id.  The boolean is false when the
// directory has no such cinema.
func (c *Catalog) Cinema(id int) (Cinema, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Cinema{}, false
	}
	return c.cinemas[i], true
}

// Cinemas returns every cinema ordered by id.
func (c *Catalog) Cinemas() []Cinema {
	return append([]Cinema(nil), c.cinemas...)
}

// ScreeningsForMovie returns every screening of a movie, one per cinema.
func (c *Catalog) ScreeningsForMovie(movieID string) []Screening {
	return c.filter(func(s Screening) bool { return s.MovieID == movieID })
}

// ScreeningsAtCinema returns every screening hosted by a cinema, one per movie.
func (c *Catalog) ScreeningsAtCinema(cinemaID int) []Screening {
	return c.filter(func(s Screening) bool { return s.CinemaID == cinemaID })
}

// MovieIDs returns the distinct movie ids of the screening index in the order
// they first appear.
func (c *Catalog) MovieIDs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range c.screenings {
		if !seen[s.MovieID] {
			seen[s.MovieID] = true
			out = append(out, s.MovieID)
		}
	}
	return out
}

func (c *Catalog) filter(keep func(Screening) bool) []Screening {
	out := []Screening{}
	for _, s := range c.screenings {
		if keep(s) {
			s.Showtimes = append([]string(nil), s.Showtimes...)
			out = append(out, s)
		}
	}
	return out
}
