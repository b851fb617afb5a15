package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(models.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		Username: "fest",
		Password: "secret",
		Database: "festshare",
		SSLMode:  "disable",
	})

	assert.Equal(t, "postgres://fest:secret@db:5432/festshare?sslmode=disable", dsn)
}

func TestPostgresClient_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client := NewPostgresClientFromDB(sqlx.NewDb(db, "pgx"))
	mock.ExpectPing()

	assert.NoError(t, client.Ping(context.Background()))
	assert.NotNil(t, client.GetDB())

	mock.ExpectClose()
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
