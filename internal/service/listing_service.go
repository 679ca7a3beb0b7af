package service

import (
	"context"
	"errors"
	"fmt"

	"itda/internal/auth"
	apperrors "itda/internal/errors"
	"itda/internal/model"
	"itda/internal/repository"
)

// ListingService applies role and ownership rules on top of the listing store.
type ListingService interface {
	Search(ctx context.Context, filter model.ListingFilter, page model.Pagination) (*model.ListingPage, error)
	Get(ctx context.Context, id string) (*model.Listing, error)
	AuthorizeCreate(ctx context.Context, caller *auth.Identity) (*model.User, error)
	Create(ctx context.Context, caller *auth.Identity, listing *model.Listing) (*model.Listing, error)
	Update(ctx context.Context, caller *auth.Identity, id string, patch *model.ListingPatch) (*model.Listing, error)
	Delete(ctx context.Context, caller *auth.Identity, id string) error
	CheckOwnership(ctx context.Context, caller *auth.Identity, id string) error
	ListMine(ctx context.Context, caller *auth.Identity) ([]model.Listing, error)
}

// ViewRecorder is notified after a listing view has been counted.
type ViewRecorder interface {
	RecordView()
}

type listingService struct {
	listings        repository.ListingRepository
	users           repository.UserRepository
	requireVerified bool
	views           ViewRecorder
}

// ListingServiceOption configures a ListingService.
type ListingServiceOption func(*listingService)

// WithVerifiedBrokersOnly refuses listing creation by brokers whose profile
// has not been verified.
func WithVerifiedBrokersOnly(required bool) ListingServiceOption {
	return func(s *listingService) { s.requireVerified = required }
}

// WithViewRecorder reports counted views to r.
func WithViewRecorder(r ViewRecorder) ListingServiceOption {
	return func(s *listingService) { s.views = r }
}

// NewListingService creates a listing service.
func NewListingService(listings repository.ListingRepository, users repository.UserRepository, opts ...ListingServiceOption) ListingService {
	s := &listingService{listings: listings, users: users}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *listingService) Search(ctx context.Context, filter model.ListingFilter, page model.Pagination) (*model.ListingPage, error) {
	result, err := s.listings.Query(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	return result, nil
}

func (s *listingService) Get(ctx context.Context, id string) (*model.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.views != nil {
		s.views.RecordView()
	}
	return listing, nil
}

// AuthorizeCreate resolves the caller from the user store and checks that
// they may publish listings. A stale token cannot carry an outdated role.
func (s *listingService) AuthorizeCreate(ctx context.Context, caller *auth.Identity) (*model.User, error) {
	if caller == nil {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := s.users.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve caller: %w", err)
	}
	if !user.IsBroker() {
		return nil, apperrors.ErrForbidden
	}
	if s.requireVerified && (user.BrokerInfo == nil || !user.BrokerInfo.Verified) {
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}

// Create publishes a listing owned by the caller.
func (s *listingService) Create(ctx context.Context, caller *auth.Identity, listing *model.Listing) (*model.Listing, error) {
	user, err := s.AuthorizeCreate(ctx, caller)
	if err != nil {
		return nil, err
	}

	if err := s.listings.Create(ctx, listing, user.ID); err != nil {
		return nil, err
	}
	listing.Broker = user
	return listing, nil
}

func (s *listingService) Update(ctx context.Context, caller *auth.Identity, id string, patch *model.ListingPatch) (*model.Listing, error) {
	if caller == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return s.listings.Update(ctx, id, caller.UserID, patch)
}

func (s *listingService) Delete(ctx context.Context, caller *auth.Identity, id string) error {
	if caller == nil {
		return apperrors.ErrUnauthorized
	}
	return s.listings.Delete(ctx, id, caller.UserID)
}

// CheckOwnership reports ErrNotFound or ErrForbidden without touching the
// listing.
func (s *listingService) CheckOwnership(ctx context.Context, caller *auth.Identity, id string) error {
	if caller == nil {
		return apperrors.ErrUnauthorized
	}
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.BrokerID != caller.UserID {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *listingService) ListMine(ctx context.Context, caller *auth.Identity) ([]model.Listing, error) {
	if caller == nil {
		return nil, apperrors.ErrUnauthorized
	}
	listings, err := s.listings.ListByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("list own listings: %w", err)
	}
	return listings, nil
}
