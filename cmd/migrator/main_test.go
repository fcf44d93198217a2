package main

import (
	"testing"

	"github.com/linemk/order-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestBuildMigrateDSN(t *testing.T) {
	dsn, err := buildMigrateDSN(config.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss",
		Name:     "orders",
		SSLMode:  "disable",
	}, "migrations")

	assert.NoError(t, err)
	assert.Equal(t, "postgres://postgres:p%40ss@db:5432/orders?sslmode=disable&x-migrations-table=migrations", dsn)
}
