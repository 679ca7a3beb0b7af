package repository

import (
	"context"
	"fmt"
	"log/slog"

	"itda/internal/config"
	"itda/internal/db"
)

// Store is the pair of repositories backed by the configured database.
type Store struct {
	Users    UserRepository
	Listings ListingRepository
	close    func(context.Context) error
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the database selected by STORE_DRIVER and prepares its schema.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := db.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.MongoDatabase)
		if cfg.ResetDB {
			logger.Warn("RESET_DB=true detected, dropping database", "database", cfg.MongoDatabase)
			if err := database.Drop(ctx); err != nil {
				_ = client.Disconnect(ctx)
				return nil, fmt.Errorf("drop database: %w", err)
			}
		}
		if err := EnsureMongoIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Store{
			Users:    NewMongoUserRepository(database),
			Listings: NewMongoListingRepository(database),
			close:    client.Disconnect,
		}, nil

	case config.StoreMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		if cfg.ResetDB {
			logger.Warn("RESET_DB=true detected, dropping all tables")
			if err := db.Reset(gormDB); err != nil {
				return nil, err
			}
		}
		if err := db.Migrate(gormDB); err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("sql handle: %w", err)
		}
		return &Store{
			Users:    NewUserRepository(gormDB),
			Listings: NewListingRepository(gormDB),
			close:    func(context.Context) error { return sqlDB.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
