package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total    int64
		pageSize int
		want     int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 7, 4},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize), "total=%d size=%d", tt.total, tt.pageSize)
	}
}

func TestPagination_Normalize(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, PageSize: DefaultPageSize}, Pagination{}.Normalize())
	assert.Equal(t, Pagination{Page: 1, PageSize: 5}, Pagination{Page: -3, PageSize: 5}.Normalize())
	assert.Equal(t, Pagination{Page: 2, PageSize: MaxPageSize}, Pagination{Page: 2, PageSize: 1000}.Normalize())
	assert.Equal(t, 20, Pagination{Page: 3, PageSize: 10}.Offset())
}

func TestListingPatch_Apply(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	listing := &Listing{
		Title:     "old title",
		Price:     100,
		Rooms:     2,
		BrokerID:  "broker-1",
		Address:   Address{City: "서울", District: "강남구"},
		Features:  []string{"주차"},
		CreatedAt: created,
		UpdatedAt: created,
	}
	title := "new title"
	price := int64(250)
	features := []string{"엘리베이터", "엘리베이터", "", "주차"}
	patch := &ListingPatch{Title: &title, Price: &price, Features: &features}

	now := created.Add(time.Hour)
	patch.Apply(listing, now)

	assert.Equal(t, "new title", listing.Title)
	assert.Equal(t, int64(250), listing.Price)
	assert.Equal(t, 2, listing.Rooms)
	assert.Equal(t, "서울", listing.Address.City)
	assert.Equal(t, "broker-1", listing.BrokerID)
	assert.Equal(t, []string{"엘리베이터", "주차"}, []string(listing.Features))
	assert.Equal(t, now, listing.UpdatedAt)
	assert.Equal(t, created, listing.CreatedAt)
}

func TestListing_PrepareForCreate(t *testing.T) {
	now := time.Now()
	listing := &Listing{Views: 42, Broker: &User{ID: "someone"}, Features: []string{"a", "a"}}

	listing.PrepareForCreate("owner-1", now)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "owner-1", listing.BrokerID)
	assert.Nil(t, listing.Broker)
	assert.Zero(t, listing.Views)
	assert.Equal(t, StatusActive, listing.Status)
	assert.NotNil(t, listing.Images)
	assert.Equal(t, []string{"a"}, []string(listing.Features))
	assert.Equal(t, now, listing.CreatedAt)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}
