package db

import (
	"context"
	"testing"

	"writing-dashboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInMemory(t *testing.T) {
	conn, err := Open(context.Background(), config.NewDefaultDuckDBConfig())
	require.NoError(t, err)
	defer conn.Close()

	var n int
	require.NoError(t, conn.QueryRow("SELECT 40 + 2").Scan(&n))
	assert.Equal(t, 42, n)
}

func TestInitDuckDBOnce(t *testing.T) {
	require.NoError(t, InitDuckDB(config.NewDefaultDuckDBConfig()))
	first := GetDuckDB()
	require.NotNil(t, first)

	require.NoError(t, InitDuckDB(config.NewDefaultDuckDBConfig()))
	assert.Same(t, first, GetDuckDB())
	assert.Same(t, first, GetDuckDBWithContext(context.Background()))
}
