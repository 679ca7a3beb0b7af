package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"itda/internal/db"
	apperrors "itda/internal/errors"
	"itda/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "itda.db")
	gdb, err := gorm.Open(sqlite.Open(path+"?_pragma=busy_timeout(5000)"), db.Config())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func createBroker(t *testing.T, repo UserRepository, email string) *model.User {
	t.Helper()
	user := &model.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Broker " + email,
		Phone:        "010-0000-0000",
		Role:         model.RoleBroker,
		BrokerInfo: &model.BrokerProfile{
			LicenseNumber: "11-2233",
			CompanyName:   "Itda Realty",
			Address:       "Seoul",
		},
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func sampleListing(title string, deal model.DealType, price int64) *model.Listing {
	return &model.Listing{
		Title:        title,
		Description:  "sunny and quiet",
		PropertyType: model.PropertyApartment,
		DealType:     deal,
		Price:        price,
		Area:         84.5,
		Rooms:        3,
		Bathrooms:    2,
		Address:      model.Address{City: "서울", District: "강남구", Full: "서울 강남구"},
		Features:     []string{"parking", "elevator", "parking"},
	}
}

// fixture creates a listing repository whose clock advances one second per
// created listing so ordering by creation time is deterministic.
func fixture(t *testing.T) (*listingRepository, UserRepository) {
	t.Helper()
	gdb := newTestDB(t)
	listings := NewListingRepository(gdb).(*listingRepository)
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	listings.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return listings, NewUserRepository(gdb)
}

func TestListingRepository_CreateStampsOwnerAndDefaults(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")

	l := sampleListing("강남 아파트", model.DealSale, 900000000)
	l.Views = 42
	require.NoError(t, listings.Create(ctx, l, broker.ID))

	stored, err := listings.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, broker.ID, stored.BrokerID)
	assert.Equal(t, model.StatusActive, stored.Status)
	assert.EqualValues(t, 0, stored.Views)
	assert.Equal(t, []string{"parking", "elevator"}, []string(stored.Features))
	assert.Empty(t, stored.Images)
}

func TestListingRepository_CreateRejectsInvalid(t *testing.T) {
	listings, users := fixture(t)
	broker := createBroker(t, users, "a@itda.kr")

	l := sampleListing("", "반전세", 1)
	err := listings.Create(context.Background(), l, broker.ID)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["dealType"])
}

func TestListingRepository_QueryFilters(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")

	monthly := sampleListing("월세 원룸", model.DealLeaseMonthly, 50000)
	monthly.PropertyType = model.PropertyOfficetel
	monthly.Rooms = 1
	require.NoError(t, listings.Create(ctx, monthly, broker.ID))

	sale := sampleListing("매매 아파트", model.DealSale, 900000000)
	require.NoError(t, listings.Create(ctx, sale, broker.ID))

	busan := sampleListing("부산 전세", model.DealLeaseDeposit, 300000000)
	busan.Address = model.Address{City: "부산", District: "해운대구"}
	require.NoError(t, listings.Create(ctx, busan, broker.ID))

	closed := sampleListing("계약된 매물", model.DealLeaseMonthly, 55000)
	closed.Status = model.StatusClosed
	require.NoError(t, listings.Create(ctx, closed, broker.ID))

	i64 := func(v int64) *int64 { return &v }
	rooms := 1

	tests := []struct {
		name   string
		filter model.ListingFilter
		want   []string
	}{
		{"no filter returns active listings newest first", model.ListingFilter{}, []string{busan.ID, sale.ID, monthly.ID}},
		{"price range includes monthly rent", model.ListingFilter{DealType: model.DealLeaseMonthly, MinPrice: i64(40000), MaxPrice: i64(60000)}, []string{monthly.ID}},
		{"max price below excludes", model.ListingFilter{DealType: model.DealLeaseMonthly, MaxPrice: i64(40000)}, []string{}},
		{"city", model.ListingFilter{City: "부산"}, []string{busan.ID}},
		{"city and district", model.ListingFilter{City: "서울", District: "강남구"}, []string{sale.ID, monthly.ID}},
		{"property type and rooms", model.ListingFilter{PropertyType: model.PropertyOfficetel, Rooms: &rooms}, []string{monthly.ID}},
		{"conjunction with no overlap", model.ListingFilter{City: "부산", DealType: model.DealSale}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := listings.Query(ctx, tt.filter, model.Pagination{Page: 1, PageSize: 10})
			require.NoError(t, err)

			got := make([]string, 0, len(page.Listings))
			for _, l := range page.Listings {
				got = append(got, l.ID)
				assert.Equal(t, model.StatusActive, l.Status)
			}
			assert.Equal(t, tt.want, got)
			assert.EqualValues(t, len(tt.want), page.Total)
		})
	}
}

func TestListingRepository_QueryResolvesBroker(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")
	require.NoError(t, listings.Create(ctx, sampleListing("one", model.DealSale, 1), broker.ID))

	page, err := listings.Query(ctx, model.ListingFilter{}, model.Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Listings, 1)
	require.NotNil(t, page.Listings[0].Broker)
	assert.Equal(t, broker.Name, page.Listings[0].Broker.Name)
	require.NotNil(t, page.Listings[0].Broker.BrokerInfo)
	assert.Equal(t, "Itda Realty", page.Listings[0].Broker.BrokerInfo.CompanyName)
}

func TestListingRepository_QueryPagination(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")
	for i := 0; i < 7; i++ {
		require.NoError(t, listings.Create(ctx, sampleListing("listing", model.DealSale, int64(i)), broker.ID))
	}

	seen := map[string]bool{}
	sum := 0
	for p := 1; p <= 3; p++ {
		page, err := listings.Query(ctx, model.ListingFilter{}, model.Pagination{Page: p, PageSize: 3})
		require.NoError(t, err)
		assert.EqualValues(t, 7, page.Total)
		assert.EqualValues(t, 3, page.TotalPages)
		sum += len(page.Listings)
		for _, l := range page.Listings {
			assert.False(t, seen[l.ID], "listing repeated across pages")
			seen[l.ID] = true
		}
	}
	assert.Equal(t, 7, sum)

	beyond, err := listings.Query(ctx, model.ListingFilter{}, model.Pagination{Page: 4, PageSize: 3})
	require.NoError(t, err)
	assert.Empty(t, beyond.Listings)
	assert.EqualValues(t, 7, beyond.Total)
}

func TestListingRepository_GetByIDCountsViews(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")
	l := sampleListing("views", model.DealSale, 1)
	require.NoError(t, listings.Create(ctx, l, broker.ID))

	first, err := listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	second, err := listings.GetByID(ctx, l.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 1, first.Views)
	assert.Equal(t, first.Views+1, second.Views)
	assert.True(t, first.UpdatedAt.Equal(second.UpdatedAt), "viewing must not touch updatedAt")
	require.NotNil(t, second.Broker)
	assert.Equal(t, broker.ID, second.Broker.ID)
}

func TestListingRepository_GetByIDConcurrentViews(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")
	l := sampleListing("popular", model.DealSale, 1)
	require.NoError(t, listings.Create(ctx, l, broker.ID))

	const viewers = 20
	var wg sync.WaitGroup
	errs := make(chan error, viewers)
	for i := 0; i < viewers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := listings.GetByID(ctx, l.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := listings.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.EqualValues(t, viewers, stored.Views)
}

func TestListingRepository_GetByIDUnknown(t *testing.T) {
	listings, _ := fixture(t)
	_, err := listings.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListingRepository_UpdateByOwner(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")
	l := sampleListing("before", model.DealSale, 100)
	require.NoError(t, listings.Create(ctx, l, broker.ID))
	_, err := listings.GetByID(ctx, l.ID)
	require.NoError(t, err)

	title := "after"
	status := model.StatusUnderContract
	updated, err := listings.Update(ctx, l.ID, broker.ID, &model.ListingPatch{Title: &title, Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, model.StatusUnderContract, updated.Status)
	assert.Equal(t, "sunny and quiet", updated.Description)
	assert.Equal(t, broker.ID, updated.BrokerID)
	assert.EqualValues(t, 1, updated.Views)
	assert.True(t, updated.UpdatedAt.After(l.CreatedAt))
}

func TestListingRepository_RepeatedIdenticalUpdate(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")
	l := sampleListing("before", model.DealSale, 100)
	require.NoError(t, listings.Create(ctx, l, broker.ID))

	frozen := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	listings.now = func() time.Time { return frozen }

	price := int64(120)
	for i := 0; i < 2; i++ {
		updated, err := listings.Update(ctx, l.ID, broker.ID, &model.ListingPatch{Price: &price})
		require.NoError(t, err, "attempt %d", i+1)
		assert.EqualValues(t, 120, updated.Price)
		assert.True(t, updated.UpdatedAt.Equal(frozen))
	}
}

func TestListingRepository_UpdateRejectsInvalidPatch(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")
	l := sampleListing("before", model.DealSale, 100)
	require.NoError(t, listings.Create(ctx, l, broker.ID))

	deal := model.DealType("임대")
	_, err := listings.Update(ctx, l.ID, broker.ID, &model.ListingPatch{DealType: &deal})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestListingRepository_NonOwnerIsForbidden(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	owner := createBroker(t, users, "owner@itda.kr")
	other := createBroker(t, users, "other@itda.kr")
	l := sampleListing("mine", model.DealSale, 100)
	require.NoError(t, listings.Create(ctx, l, owner.ID))

	bad := model.DealType("임대")
	_, err := listings.Update(ctx, l.ID, other.ID, &model.ListingPatch{DealType: &bad})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = listings.Delete(ctx, l.ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	stored, err := listings.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, stored.BrokerID)
	assert.Equal(t, model.DealSale, stored.DealType)
}

func TestListingRepository_DeleteByOwner(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")
	l := sampleListing("gone", model.DealSale, 100)
	require.NoError(t, listings.Create(ctx, l, broker.ID))

	require.NoError(t, listings.Delete(ctx, l.ID, broker.ID))

	_, err := listings.FindByID(ctx, l.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, listings.Delete(ctx, l.ID, broker.ID), apperrors.ErrNotFound)
}

func TestListingRepository_ListByOwner(t *testing.T) {
	listings, users := fixture(t)
	ctx := context.Background()
	broker := createBroker(t, users, "a@itda.kr")
	other := createBroker(t, users, "b@itda.kr")

	first := sampleListing("first", model.DealSale, 1)
	require.NoError(t, listings.Create(ctx, first, broker.ID))
	closed := sampleListing("closed", model.DealSale, 2)
	closed.Status = model.StatusClosed
	require.NoError(t, listings.Create(ctx, closed, broker.ID))
	require.NoError(t, listings.Create(ctx, sampleListing("theirs", model.DealSale, 3), other.ID))

	mine, err := listings.ListByOwner(ctx, broker.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, closed.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	none, err := listings.ListByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
