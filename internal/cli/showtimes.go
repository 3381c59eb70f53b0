package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/iliyamo/cine-app/internal/booking"
	"github.com/iliyamo/cine-app/internal/catalog"
	"github.com/iliyamo/cine-app/internal/omdb"
)

var showtimesCmd = &cobra.Command{
	Use:   "showtimes <movieId>",
	Short: "List the showtimes of a movie",
	Long:  `List every cinema showing the movie with its showtimes and seat selection links.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := setup()
		defer func() { _ = log.Sync() }()

		cat, err := loadCatalog(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		title := args[0]
		movies := omdb.NewClient(cfg.OMDbBaseURL, cfg.OMDbAPIKey, cfg.OMDbTimeout, nil, log)
		if m, err := movies.Lookup(cmd.Context(), args[0]); err == nil {
			title = m.Title
		}
		writeShowtimes(cmd.OutOrStdout(), cat, args[0], title)
		return nil
	},
}

// writeShowtimes renders one row per showtime, merging the cinema columns.
func writeShowtimes(w io.Writer, cat *catalog.Catalog, movieID, title string) {
	screenings := cat.ScreeningsForMovie(movieID)
	if len(screenings) == 0 {
		fmt.Fprintf(w, "%s is not currently scheduled at any cinema.\n", title)
		return
	}

	rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Cinema", "Location", "Time", "Link"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true, WidthMax: 24},
		{Number: 2, AutoMerge: true},
	})
	t.Style().Options.SeparateRows = true

	for _, s := range screenings {
		cinema, ok := cat.Cinema(s.CinemaID)
		if !ok {
			continue
		}
		for _, tm := range s.Showtimes {
			sel := booking.Selection{MovieID: movieID, CinemaID: cinema.ID, Time: tm}
			t.AppendRow(table.Row{cinema.Name, cinema.Location, tm, sel.URL()}, rowConfigAutoMerge)
		}
		t.AppendSeparator()
	}
	t.Render()
}
