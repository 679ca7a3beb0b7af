package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"itda/internal/config"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{StoreDriver: "postgres"}
	store, err := Open(context.Background(), cfg, slog.Default())
	assert.Nil(t, store)
	assert.ErrorContains(t, err, "postgres")
}

func TestStoreCloseWithoutConnection(t *testing.T) {
	assert.NoError(t, (&Store{}).Close(context.Background()))
}
