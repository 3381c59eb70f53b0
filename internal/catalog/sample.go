package catalog

// Sample returns the reference dataset: three Buenos Aires cinemas and the
// showtimes of four movies.  Movie titles and plots come from the movie
// lookup, so only the associations live here.
func Sample() *Catalog {
	return New(
		[]Cinema{
			{ID: 1, Name: "Cineplex Centro", Location: "Av. Corrientes 1234, CABA"},
			{ID: 2, Name: "MegaCines Oeste", Location: "Av. Rivadavia 5678, CABA"},
			{ID: 3, Name: "Cine Club Palermo", Location: "Jorge Luis Borges 1999, CABA"},
		},
		[]Screening{
			// Guardians of the Galaxy Vol. 2
			{MovieID: "tt3896198", CinemaID: 1, Showtimes: []string{"11:00", "14:30", "18:00", "21:30"}},
			{MovieID: "tt3896198", CinemaID: 2, Showtimes: []string{"13:00", "16:30", "20:00"}},
			// The Avengers
			{MovieID: "tt0848228", CinemaID: 1, Showtimes: []string{"10:00", "13:15", "16:45", "20:15"}},
			{MovieID: "tt0848228", CinemaID: 2, Showtimes: []string{"11:30", "15:00", "18:30", "22:00"}},
			{MovieID: "tt0848228", CinemaID: 3, Showtimes: []string{"17:00", "20:45"}},
			// Avengers: Endgame
			{MovieID: "tt4154796", CinemaID: 1, Showtimes: []string{"12:00", "16:00", "20:00"}},
			{MovieID: "tt4154796", CinemaID: 2, Showtimes: []string{"10:30", "14:30", "18:30", "22:30"}},
			// Toy Story
			{MovieID: "tt0114709", CinemaID: 2, Showtimes: []string{"10:00", "12:15", "14:45"}},
			{MovieID: "tt0114709", CinemaID: 3, Showtimes: []string{"16:00", "18:15"}},
		},
	)
}
