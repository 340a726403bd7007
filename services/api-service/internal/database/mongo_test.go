package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/database"
)

func TestConnect_MissingURI(t *testing.T) {
	pool, err := database.Connect(context.Background(), "", "streamhub_dev")

	assert.Nil(t, pool)
	assert.ErrorIs(t, err, database.ErrMissingURI)
}

func TestConnect_InvalidURI(t *testing.T) {
	pool, err := database.Connect(context.Background(), "not-a-mongo-uri", "streamhub_dev")

	assert.Nil(t, pool)
	assert.ErrorContains(t, err, "Failed to connect to database")
}
