package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "itda/internal/errors"
	"itda/internal/model"
	"itda/internal/validation"
)

// ListingRepository defines listing persistence. It is the authoritative
// place for ownership checks: Update and Delete refuse any ownerID other than
// the listing's broker.
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing, ownerID string) error
	Query(ctx context.Context, filter model.ListingFilter, page model.Pagination) (*model.ListingPage, error)
	// GetByID returns the listing with its broker resolved and counts one view.
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	// FindByID returns the listing without counting a view.
	FindByID(ctx context.Context, id string) (*model.Listing, error)
	Update(ctx context.Context, id, ownerID string, patch *model.ListingPatch) (*model.Listing, error)
	Delete(ctx context.Context, id, ownerID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Listing, error)
}

// listingUpdateColumns are written by Update. views, broker_id and
// created_at are never part of an update.
var listingUpdateColumns = []string{
	"title", "description", "property_type", "deal_type",
	"price", "deposit", "monthly_rent", "area", "rooms", "bathrooms",
	"floor", "total_floors",
	"address_city", "address_district", "address_detail", "address_full",
	"coord_lat", "coord_lng",
	"images", "features", "status", "updated_at",
}

type listingRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewListingRepository creates a GORM-backed listing repository.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db, now: time.Now}
}

// Create validates and inserts a new listing owned by ownerID.
func (r *listingRepository) Create(ctx context.Context, listing *model.Listing, ownerID string) error {
	listing.PrepareForCreate(ownerID, r.now())
	if err := validation.Struct(listing); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Omit("Broker").Create(listing).Error
}

// Query returns one page of active listings matching every predicate of filter,
// newest first.
func (r *listingRepository) Query(ctx context.Context, filter model.ListingFilter, page model.Pagination) (*model.ListingPage, error) {
	page = page.Normalize()

	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, err
	}

	listings := make([]model.Listing, 0, page.PageSize)
	if err := withOwner(r.filtered(ctx, filter)).
		Order("created_at DESC").Order("id DESC").
		Limit(page.PageSize).Offset(page.Offset()).
		Find(&listings).Error; err != nil {
		return nil, err
	}

	return &model.ListingPage{
		Listings:   listings,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: model.TotalPages(total, page.PageSize),
	}, nil
}

func (r *listingRepository) filtered(ctx context.Context, f model.ListingFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Listing{}).Where("status = ?", model.StatusActive)
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.DealType != "" {
		q = q.Where("deal_type = ?", f.DealType)
	}
	if f.City != "" {
		q = q.Where("address_city = ?", f.City)
	}
	if f.District != "" {
		q = q.Where("address_district = ?", f.District)
	}
	if f.Rooms != nil {
		q = q.Where("rooms = ?", *f.Rooms)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinArea != nil {
		q = q.Where("area >= ?", *f.MinArea)
	}
	if f.MaxArea != nil {
		q = q.Where("area <= ?", *f.MaxArea)
	}
	return q
}

// GetByID increments the view counter in the database and then reads the
// listing back.
func (r *listingRepository) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	res := r.db.WithContext(ctx).Model(&model.Listing{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	var listing model.Listing
	if err := withOwner(r.db.WithContext(ctx)).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, translate(err)
	}
	return &listing, nil
}

func (r *listingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, translate(err)
	}
	return &listing, nil
}

// owned loads a listing and checks that ownerID is its broker.
func (r *listingRepository) owned(ctx context.Context, id, ownerID string) (*model.Listing, error) {
	listing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.BrokerID != ownerID {
		return nil, apperrors.ErrForbidden
	}
	return listing, nil
}

func (r *listingRepository) Update(ctx context.Context, id, ownerID string, patch *model.ListingPatch) (*model.Listing, error) {
	listing, err := r.owned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	patch.Apply(listing, r.now())
	if err := validation.Struct(listing); err != nil {
		return nil, err
	}

	// MySQL reports changed rows, not matched rows, so an unchanged write
	// affects zero rows; a vanished listing surfaces on the reload below.
	if err := r.db.WithContext(ctx).Model(listing).
		Where("broker_id = ?", ownerID).
		Select(listingUpdateColumns).
		Updates(listing).Error; err != nil {
		return nil, err
	}

	var updated model.Listing
	if err := withOwner(r.db.WithContext(ctx)).Where("id = ?", id).First(&updated).Error; err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

func (r *listingRepository) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := r.owned(ctx, id, ownerID); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Where("id = ? AND broker_id = ?", id, ownerID).Delete(&model.Listing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *listingRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Listing, error) {
	listings := make([]model.Listing, 0)
	if err := r.db.WithContext(ctx).Where("broker_id = ?", ownerID).
		Order("created_at DESC").Order("id DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// withOwner resolves the broker and the broker's profile of each listing.
func withOwner(q *gorm.DB) *gorm.DB {
	return q.Preload("Broker").Preload("Broker.BrokerInfo")
}
