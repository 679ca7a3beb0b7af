package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"itda/internal/config"
	apperrors "itda/internal/errors"
	"itda/internal/logger"
	"itda/internal/model"
	"itda/internal/repository"
)

//go:embed listings.json
var listingsJSON []byte

const (
	demoBrokerEmail    = "broker@itda.dev"
	demoBrokerPassword = "broker1234"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	appLogger := logger.New("itda-seed", logger.ParseLevel(cfg.LogLevel))

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close(ctx)
	appLogger.Info("connected to database", "driver", cfg.StoreDriver)

	listings, err := loadListings(listingsJSON)
	if err != nil {
		log.Fatalf("Failed to parse seed data: %v", err)
	}

	password := os.Getenv("SEED_BROKER_PASSWORD")
	if password == "" {
		password = demoBrokerPassword
	}

	broker, created, err := ensureBroker(ctx, store.Users, demoBrokerEmail, password)
	if err != nil {
		log.Fatalf("Failed to seed broker: %v", err)
	}
	appLogger.Info("demo broker ready", "email", broker.Email, "created", created)

	seeded, err := seedListings(ctx, store.Listings, broker.ID, listings)
	if err != nil {
		log.Fatalf("Failed to seed listings: %v", err)
	}
	appLogger.Info("seed completed", "listings_created", seeded)
}

// loadListings decodes the embedded sample listings.
func loadListings(data []byte) ([]model.Listing, error) {
	var listings []model.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return listings, nil
}

// ensureBroker returns the broker registered under email, creating it when missing.
func ensureBroker(ctx context.Context, users repository.UserRepository, email, password string) (*model.User, bool, error) {
	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if !existing.IsBroker() {
			return nil, false, fmt.Errorf("%s exists but is not a broker", email)
		}
		return existing, false, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, false, fmt.Errorf("error checking broker %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "잇다 데모 공인중개사",
		Phone:        "02-1234-5678",
		Role:         model.RoleBroker,
		BrokerInfo: &model.BrokerProfile{
			LicenseNumber: "11680-2024-00001",
			CompanyName:   "잇다 부동산",
			Address:       "서울 강남구 테헤란로 1",
		},
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("error creating broker %s: %w", email, err)
	}
	return user, true, nil
}

// seedListings creates the sample listings unless the broker already owns some.
func seedListings(ctx context.Context, repo repository.ListingRepository, brokerID string, listings []model.Listing) (int, error) {
	owned, err := repo.ListByOwner(ctx, brokerID)
	if err != nil {
		return 0, fmt.Errorf("error listing broker properties: %w", err)
	}
	if len(owned) > 0 {
		return 0, nil
	}

	seeded := 0
	for i := range listings {
		listing := listings[i]
		if err := repo.Create(ctx, &listing, brokerID); err != nil {
			return seeded, fmt.Errorf("error creating listing %q: %w", listing.Title, err)
		}
		seeded++
	}
	return seeded, nil
}
