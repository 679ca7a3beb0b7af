package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "itda/internal/errors"
	"itda/internal/model"
	"itda/internal/validation"
)

// newestFirst orders listings by creation time, id breaking ties.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// ownerProjection is the part of a user embedded in a listing response.
var ownerProjection = bson.M{"passwordHash": 0}

type mongoListingRepository struct {
	listings *mongo.Collection
	users    *mongo.Collection
	now      func() time.Time
}

// NewMongoListingRepository creates a MongoDB-backed listing repository.
func NewMongoListingRepository(db *mongo.Database) ListingRepository {
	return &mongoListingRepository{
		listings: db.Collection(listingsCollection),
		users:    db.Collection(usersCollection),
		now:      time.Now,
	}
}

// BuildListingFilter translates search predicates into a MongoDB filter that
// always restricts results to active listings.
func BuildListingFilter(f model.ListingFilter) bson.M {
	filter := bson.M{"status": model.StatusActive}
	if f.PropertyType != "" {
		filter["propertyType"] = f.PropertyType
	}
	if f.DealType != "" {
		filter["dealType"] = f.DealType
	}
	if f.City != "" {
		filter["address.city"] = f.City
	}
	if f.District != "" {
		filter["address.district"] = f.District
	}
	if f.Rooms != nil {
		filter["rooms"] = *f.Rooms
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	area := bson.M{}
	if f.MinArea != nil {
		area["$gte"] = *f.MinArea
	}
	if f.MaxArea != nil {
		area["$lte"] = *f.MaxArea
	}
	if len(area) > 0 {
		filter["area"] = area
	}
	return filter
}

func (r *mongoListingRepository) Create(ctx context.Context, listing *model.Listing, ownerID string) error {
	listing.PrepareForCreate(ownerID, r.now())
	if err := validation.Struct(listing); err != nil {
		return err
	}
	_, err := r.listings.InsertOne(ctx, listing)
	return err
}

func (r *mongoListingRepository) Query(ctx context.Context, filter model.ListingFilter, page model.Pagination) (*model.ListingPage, error) {
	page = page.Normalize()
	query := BuildListingFilter(filter)

	total, err := r.listings.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count listings: %w", err)
	}

	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.PageSize))
	listings, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	if err := r.resolveOwners(ctx, listings); err != nil {
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

// GetByID uses $inc so concurrent viewers never lose an increment.
func (r *mongoListingRepository) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	var listing model.Listing
	err := r.listings.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&listing)
	if err != nil {
		return nil, translateMongo(err)
	}

	one := []model.Listing{listing}
	if err := r.resolveOwners(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func (r *mongoListingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	var listing model.Listing
	if err := r.listings.FindOne(ctx, bson.M{"_id": id}).Decode(&listing); err != nil {
		return nil, translateMongo(err)
	}
	return &listing, nil
}

func (r *mongoListingRepository) owned(ctx context.Context, id, ownerID string) (*model.Listing, error) {
	listing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.BrokerID != ownerID {
		return nil, apperrors.ErrForbidden
	}
	return listing, nil
}

func (r *mongoListingRepository) Update(ctx context.Context, id, ownerID string, patch *model.ListingPatch) (*model.Listing, error) {
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

	set, err := updatableFields(listing)
	if err != nil {
		return nil, err
	}

	var updated model.Listing
	err = r.listings.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "brokerId": ownerID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, translateMongo(err)
	}

	one := []model.Listing{updated}
	if err := r.resolveOwners(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// updatableFields renders the listing as a $set document without the fields
// an update must never touch.
func updatableFields(listing *model.Listing) (bson.M, error) {
	raw, err := bson.Marshal(listing)
	if err != nil {
		return nil, fmt.Errorf("marshal listing: %w", err)
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("unmarshal listing: %w", err)
	}
	for _, key := range []string{"_id", "brokerId", "views", "createdAt"} {
		delete(set, key)
	}
	return set, nil
}

func (r *mongoListingRepository) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := r.owned(ctx, id, ownerID); err != nil {
		return err
	}
	res, err := r.listings.DeleteOne(ctx, bson.M{"_id": id, "brokerId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *mongoListingRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Listing, error) {
	return r.find(ctx, bson.M{"brokerId": ownerID}, options.Find().SetSort(newestFirst))
}

func (r *mongoListingRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.Listing, error) {
	cur, err := r.listings.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	listings := make([]model.Listing, 0)
	if err := cur.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	return listings, nil
}

// resolveOwners attaches each listing's broker with one $in lookup.
func (r *mongoListingRepository) resolveOwners(ctx context.Context, listings []model.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	ids := make([]string, 0, len(listings))
	seen := make(map[string]struct{}, len(listings))
	for _, l := range listings {
		if _, ok := seen[l.BrokerID]; ok {
			continue
		}
		seen[l.BrokerID] = struct{}{}
		ids = append(ids, l.BrokerID)
	}

	cur, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find().SetProjection(ownerProjection))
	if err != nil {
		return fmt.Errorf("find owners: %w", err)
	}
	var owners []model.User
	if err := cur.All(ctx, &owners); err != nil {
		return fmt.Errorf("decode owners: %w", err)
	}

	byID := make(map[string]*model.User, len(owners))
	for i := range owners {
		byID[owners[i].ID] = &owners[i]
	}
	for i := range listings {
		listings[i].Broker = byID[listings[i].BrokerID]
	}
	return nil
}
