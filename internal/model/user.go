package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role distinguishes ordinary members from brokers.
type Role string

const (
	RoleMember Role = "member"
	RoleBroker Role = "broker"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleBroker
}

// User represents a registered member or broker.
type User struct {
	ID           string         `json:"id" gorm:"type:char(36);primaryKey" bson:"_id"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null" bson:"email"`
	PasswordHash string         `json:"-" gorm:"size:255;not null" bson:"passwordHash"` // Never expose in JSON
	Name         string         `json:"name" gorm:"size:255;not null" bson:"name"`
	Phone        string         `json:"phone" gorm:"size:32;not null" bson:"phone"`
	Role         Role           `json:"role" gorm:"size:16;not null;index" bson:"role"`
	BrokerInfo   *BrokerProfile `json:"brokerInfo,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" bson:"brokerInfo,omitempty"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// BrokerProfile holds the licensing details a broker submits for review.
// Verified is only ever flipped by an administrator outside this service.
type BrokerProfile struct {
	UserID        string `json:"-" gorm:"type:char(36);primaryKey" bson:"-"`
	LicenseNumber string `json:"licenseNumber" gorm:"size:64;not null" bson:"licenseNumber" validate:"required"`
	CompanyName   string `json:"companyName" gorm:"size:255;not null" bson:"companyName" validate:"required"`
	Address       string `json:"address" gorm:"size:512;not null" bson:"address" validate:"required"`
	Verified      bool   `json:"verified" gorm:"not null" bson:"verified"`
}

// BeforeCreate sets the UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsBroker reports whether the user holds the broker role.
func (u *User) IsBroker() bool {
	return u.Role == RoleBroker
}

// NormalizeEmail lower-cases and trims an address so lookups and the unique
// index agree on a single spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
