package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/mpesa-sync/internal/config"
	"github.com/carson-networks/mpesa-sync/internal/storage/sqlconfig"
	"github.com/carson-networks/mpesa-sync/internal/storage/supabase"
)

func TestNewStorage_Supabase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store, err := NewStorage(&config.Config{
		StorageBackend:         config.StorageBackendSupabase,
		SupabaseURL:            server.URL,
		SupabaseServiceRoleKey: "key",
	})
	require.NoError(t, err)

	assert.Nil(t, store.DB)
	assert.IsType(t, &supabase.CredentialsTable{}, store.Credentials)
	assert.IsType(t, &supabase.TransactionsTable{}, store.Transactions)
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close())
}

func TestNewStorage_Postgres(t *testing.T) {
	store, err := NewStorage(&config.Config{
		StorageBackend:   config.StorageBackendPostgres,
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		PostgresSSLMode:  "disable",
	})
	require.NoError(t, err)
	defer store.Close()

	assert.NotNil(t, store.DB)
	assert.IsType(t, &sqlconfig.CredentialsTable{}, store.Credentials)
	assert.IsType(t, &sqlconfig.TransactionsTable{}, store.Transactions)
}

func TestNewStorage_UnknownBackend(t *testing.T) {
	store, err := NewStorage(&config.Config{StorageBackend: "mysql"})
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestStorage_PingWithoutBackend(t *testing.T) {
	store := &Storage{}
	assert.NoError(t, store.Ping(context.Background()))
}
