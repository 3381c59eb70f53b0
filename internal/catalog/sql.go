package catalog

import (
	"context"      // context bounds the startup queries
	"database/sql" // sql provides generic database operations
	"fmt"
)

// LoadSQL reads the cinema directory and the screening index from the
// database and returns them as an in-memory catalog.  It runs once at
// startup; afterwards every lookup is served from memory.  Showtimes are
// stored one per row in screening_showtimes and grouped here per
// (movie, cinema) pair in the order their first row appears.
func LoadSQL(ctx context.Context, db *sql.DB) (*Catalog, error) {
	cinemas, err := loadCinemas(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load cinemas: %w", err)
	}
	screenings, err := loadScreenings(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load screenings: %w", err)
	}
	return New(cinemas, screenings), nil
}

func loadCinemas(ctx context.Context, db *sql.DB) ([]Cinema, error) {
	const q = `SELECT id, name, location FROM cinemas ORDER BY id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Cinema
	for rows.Next() {
		var c Cinema
		if err := rows.Scan(&c.ID, &c.Name, &c.Location); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func loadScreenings(ctx context.Context, db *sql.DB) ([]Screening, error) {
	const q = `SELECT movie_id, cinema_id, showtime FROM screening_showtimes ORDER BY id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type pair struct {
		movieID  string
		cinemaID int
	}
	index := make(map[pair]int)
	var out []Screening
	for rows.Next() {
		var (
			p    pair
			time string
		)
		if err := rows.Scan(&p.movieID, &p.cinemaID, &time); err != nil {
			return nil, err
		}
		i, ok := index[p]
		if !ok {
			i = len(out)
			index[p] = i
			out = append(out, Screening{MovieID: p.movieID, CinemaID: p.cinemaID})
		}
		out[i].Showtimes = append(out[i].Showtimes, time)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
