package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/mpesa-sync/internal/config"
	"github.com/carson-networks/mpesa-sync/internal/storage/sqlconfig"
	"github.com/carson-networks/mpesa-sync/internal/storage/supabase"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Storage struct {
	DB           *sql.DB
	Credentials  sqlconfig.ICredentialTable
	Transactions sqlconfig.ITransactionTable
	pinger       pinger
}

// NewStorage connects to the backend selected by env.StorageBackend.
func NewStorage(env *config.Config) (*Storage, error) {
	switch env.StorageBackend {
	case config.StorageBackendSupabase:
		client := supabase.NewClient(env.SupabaseURL, env.SupabaseServiceRoleKey)
		return &Storage{
			Credentials:  supabase.NewCredentialsTable(client),
			Transactions: supabase.NewTransactionsTable(client),
			pinger:       client,
		}, nil
	case config.StorageBackendPostgres:
		db, err := sql.Open("postgres", env.PostgresConnectionString())
		if err != nil {
			return nil, err
		}
		return &Storage{
			DB:           db,
			Credentials:  sqlconfig.NewCredentialsTable(db),
			Transactions: sqlconfig.NewTransactionsTable(db),
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", env.StorageBackend)
	}
}

// Ping checks connectivity to whichever backend is configured.
func (s *Storage) Ping(ctx context.Context) error {
	if s.pinger != nil {
		return s.pinger.Ping(ctx)
	}
	if s.DB != nil {
		return s.DB.PingContext(ctx)
	}
	return nil
}

func (s *Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
