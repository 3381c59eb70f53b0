package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedSQL writes the catalog into the database in one transaction.  Cinemas
// are upserted by id and the screening index is replaced as a whole, so a
// later LoadSQL returns the same catalog.
func SeedSQL(ctx context.Context, db *sql.DB, c *Catalog) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const upsertCinema = `INSERT INTO cinemas (id, name, location) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE name = VALUES(name), location = VALUES(location)`
	for _, cin := range c.cinemas {
		if _, err = tx.ExecContext(ctx, upsertCinema, cin.ID, cin.Name, cin.Location); err != nil {
			return fmt.Errorf("upsert cinema %d: %w", cin.ID, err)
		}
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM screening_showtimes`); err != nil {
		return fmt.Errorf("clear screenings: %w", err)
	}
	const insertShowtime = `INSERT INTO screening_showtimes (movie_id, cinema_id, showtime) VALUES (?, ?, ?)`
	for _, s := range c.screenings {
		for _, t := range s.Showtimes {
			if _, err = tx.ExecContext(ctx, insertShowtime, s.MovieID, s.CinemaID, t); err != nil {
				return fmt.Errorf("insert showtime %s@%d %s: %w", s.MovieID, s.CinemaID, t, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
