package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropertyType is the closed set of property categories.
type PropertyType string

const (
	PropertyApartment PropertyType = "아파트"
	PropertyVilla     PropertyType = "빌라"
	PropertyDetached  PropertyType = "단독주택"
	PropertyOfficetel PropertyType = "오피스텔"
	PropertyRetail    PropertyType = "상가"
	PropertyOffice    PropertyType = "사무실"
	PropertyOther     PropertyType = "기타"
)

// DealType is the closed set of transaction kinds.
type DealType string

const (
	DealSale         DealType = "매매"
	DealLeaseDeposit DealType = "전세"
	DealLeaseMonthly DealType = "월세"
)

// ListingStatus tracks where a listing is in its sale cycle.
type ListingStatus string

const (
	StatusActive        ListingStatus = "판매중"
	StatusUnderContract ListingStatus = "계약완료"
	StatusClosed        ListingStatus = "판매완료"
)

// Address locates a listing. Full is the display form of the whole address.
type Address struct {
	City     string `json:"city" gorm:"size:64;index" bson:"city" validate:"required"`
	District string `json:"district" gorm:"size:64;index" bson:"district"`
	Detail   string `json:"detail" gorm:"size:255" bson:"detail"`
	Full     string `json:"full" gorm:"size:512" bson:"full"`
}

// Coordinates are optional map coordinates.
type Coordinates struct {
	Lat *float64 `json:"lat,omitempty" bson:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lng *float64 `json:"lng,omitempty" bson:"lng,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// Listing is a property record owned by exactly one broker.
type Listing struct {
	ID           string                      `json:"id" gorm:"type:char(36);primaryKey" bson:"_id"`
	Title        string                      `json:"title" gorm:"size:255;not null" bson:"title" validate:"required"`
	Description  string                      `json:"description" gorm:"type:text;not null" bson:"description" validate:"required"`
	PropertyType PropertyType                `json:"propertyType" gorm:"size:32;not null;index" bson:"propertyType" validate:"required,oneof=아파트 빌라 단독주택 오피스텔 상가 사무실 기타"`
	DealType     DealType                    `json:"dealType" gorm:"size:16;not null;index" bson:"dealType" validate:"required,oneof=매매 전세 월세"`
	Price        int64                       `json:"price" gorm:"not null;index" bson:"price" validate:"gte=0"`
	Deposit      *int64                      `json:"deposit,omitempty" bson:"deposit,omitempty" validate:"omitempty,gte=0"`
	MonthlyRent  *int64                      `json:"monthlyRent,omitempty" bson:"monthlyRent,omitempty" validate:"omitempty,gte=0"`
	Area         float64                     `json:"area" gorm:"not null;index" bson:"area" validate:"gt=0"`
	Rooms        int                         `json:"rooms" gorm:"not null;index" bson:"rooms" validate:"gte=0"`
	Bathrooms    int                         `json:"bathrooms" gorm:"not null" bson:"bathrooms" validate:"gte=0"`
	Floor        *int                        `json:"floor,omitempty" bson:"floor,omitempty"`
	TotalFloors  *int                        `json:"totalFloors,omitempty" bson:"totalFloors,omitempty" validate:"omitempty,gte=0"`
	Address      Address                     `json:"address" gorm:"embedded;embeddedPrefix:address_" bson:"address"`
	Coordinates  Coordinates                 `json:"coordinates" gorm:"embedded;embeddedPrefix:coord_" bson:"coordinates"`
	Images       datatypes.JSONSlice[string] `json:"images" bson:"images"`
	Features     datatypes.JSONSlice[string] `json:"features" bson:"features"`
	BrokerID     string                      `json:"brokerId" gorm:"type:char(36);not null;index" bson:"brokerId"`
	Broker       *User                       `json:"broker,omitempty" gorm:"foreignKey:BrokerID" bson:"-"`
	Status       ListingStatus               `json:"status" gorm:"size:16;not null;index" bson:"status" validate:"required,oneof=판매중 계약완료 판매완료"`
	Views        int64                       `json:"views" gorm:"not null" bson:"views"`
	CreatedAt    time.Time                   `json:"createdAt" gorm:"index" bson:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt" bson:"updatedAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// PrepareForCreate stamps the fields a store owns on a new listing: identity,
// owner, zero views, default status and timestamps.
func (l *Listing) PrepareForCreate(ownerID string, now time.Time) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.BrokerID = ownerID
	l.Broker = nil
	l.Views = 0
	if l.Status == "" {
		l.Status = StatusActive
	}
	if l.Images == nil {
		l.Images = datatypes.JSONSlice[string]{}
	}
	l.Features = datatypes.JSONSlice[string](UniqueStrings(l.Features))
	l.CreatedAt = now
	l.UpdatedAt = now
}

// ListingPatch is a partial update. Nil fields are left untouched. It has no
// owner field; the broker of a listing never changes.
type ListingPatch struct {
	Title        *string        `json:"title" validate:"omitempty,min=1"`
	Description  *string        `json:"description" validate:"omitempty,min=1"`
	PropertyType *PropertyType  `json:"propertyType" validate:"omitempty,oneof=아파트 빌라 단독주택 오피스텔 상가 사무실 기타"`
	DealType     *DealType      `json:"dealType" validate:"omitempty,oneof=매매 전세 월세"`
	Price        *int64         `json:"price" validate:"omitempty,gte=0"`
	Deposit      *int64         `json:"deposit" validate:"omitempty,gte=0"`
	MonthlyRent  *int64         `json:"monthlyRent" validate:"omitempty,gte=0"`
	Area         *float64       `json:"area" validate:"omitempty,gt=0"`
	Rooms        *int           `json:"rooms" validate:"omitempty,gte=0"`
	Bathrooms    *int           `json:"bathrooms" validate:"omitempty,gte=0"`
	Floor        *int           `json:"floor"`
	TotalFloors  *int           `json:"totalFloors" validate:"omitempty,gte=0"`
	Address      *Address       `json:"address"`
	Coordinates  *Coordinates   `json:"coordinates"`
	Images       *[]string      `json:"images"`
	Features     *[]string      `json:"features"`
	Status       *ListingStatus `json:"status" validate:"omitempty,oneof=판매중 계약완료 판매완료"`
}

// Apply merges the present fields of p over l and refreshes UpdatedAt.
func (p *ListingPatch) Apply(l *Listing, now time.Time) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.PropertyType != nil {
		l.PropertyType = *p.PropertyType
	}
	if p.DealType != nil {
		l.DealType = *p.DealType
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.Deposit != nil {
		l.Deposit = p.Deposit
	}
	if p.MonthlyRent != nil {
		l.MonthlyRent = p.MonthlyRent
	}
	if p.Area != nil {
		l.Area = *p.Area
	}
	if p.Rooms != nil {
		l.Rooms = *p.Rooms
	}
	if p.Bathrooms != nil {
		l.Bathrooms = *p.Bathrooms
	}
	if p.Floor != nil {
		l.Floor = p.Floor
	}
	if p.TotalFloors != nil {
		l.TotalFloors = p.TotalFloors
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.Coordinates != nil {
		l.Coordinates = *p.Coordinates
	}
	if p.Images != nil {
		l.Images = datatypes.JSONSlice[string](*p.Images)
	}
	if p.Features != nil {
		l.Features = datatypes.JSONSlice[string](UniqueStrings(*p.Features))
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	l.UpdatedAt = now
}

// UniqueStrings drops duplicates and empty entries, keeping first-seen order.
func UniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
