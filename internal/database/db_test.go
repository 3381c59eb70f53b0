package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cine-app/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{DBUser: "cine", DBHost: "db", DBPort: "3306", DBName: "catalog"}
	assert.Equal(t, "cine@tcp(db:3306)/catalog?charset=utf8mb4&parseTime=true&loc=UTC", DSN(cfg))

	cfg.DBPass = "secret"
	assert.Equal(t, "cine:secret@tcp(db:3306)/catalog?charset=utf8mb4&parseTime=true&loc=UTC", DSN(cfg))
}

func TestSchemaDeclaresCatalogTables(t *testing.T) {
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS cinemas")
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS screening_showtimes")
}

func TestEnsureSchemaRunsEachStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS cinemas`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS screening_showtimes`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
