package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/cine-app/internal/catalog"
	"github.com/iliyamo/cine-app/internal/config"
)

func TestWriteShowtimes(t *testing.T) {
	var buf bytes.Buffer
	writeShowtimes(&buf, catalog.Sample(), "tt0848228", "The Avengers")
	out := buf.String()
	assert.Contains(t, out, "The Avengers")
	assert.Contains(t, out, "Cineplex Centro")
	assert.Contains(t, out, "Cine Club Palermo")
	assert.Contains(t, out, "/seleccionar-asientos?cinemaId=1&movieId=tt0848228&time=16%3A45")
	// 4 + 4 + 2 showtimes
	assert.Equal(t, 10, strings.Count(out, "/seleccionar-asientos?"))
}

func TestWriteShowtimesUnscheduled(t *testing.T) {
	var buf bytes.Buffer
	writeShowtimes(&buf, catalog.Sample(), "tt0000001", "Carmencita")
	assert.Equal(t, "Carmencita is not currently scheduled at any cinema.\n", buf.String())
}

func TestLoadCatalogDefaultsToSample(t *testing.T) {
	cat, err := loadCatalog(context.Background(), config.Config{CatalogSource: "static"}, nil)
	assert.NoError(t, err)
	assert.Len(t, cat.Cinemas(), 3)
}
