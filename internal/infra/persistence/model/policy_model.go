// Package model holds the GORM-specific table structs for the policy store.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PolicyModel is the GORM struct for the 'policies' table. The business
// reference is the unique lookup key; the numeric ID stays internal.
type PolicyModel struct {
	ID           uint            `gorm:"primaryKey"`
	Reference    string          `gorm:"size:50;uniqueIndex;not null"`
	StartDate    time.Time       `gorm:"not null"`
	EndDate      time.Time       `gorm:"not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	HasOpenClaim bool            `gorm:"not null;default:false"`
	AutoRenew    bool            `gorm:"not null;default:false"`

	Policyholders []PolicyholderModel `gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
	Property      *PropertyModel      `gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
	Payment       *PaymentModel       `gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PolicyModel) TableName() string {
	return "policies"
}

// PolicyholderModel is the GORM struct for the 'policyholders' table.
type PolicyholderModel struct {
	ID          uint      `gorm:"primaryKey"`
	PolicyID    uint      `gorm:"not null;index"`
	FirstName   string    `gorm:"size:100;not null"`
	LastName    string    `gorm:"size:100;not null"`
	DateOfBirth time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PolicyholderModel) TableName() string {
	return "policyholders"
}

// PropertyModel is the GORM struct for the 'properties' table.
type PropertyModel struct {
	ID           uint   `gorm:"primaryKey"`
	PolicyID     uint   `gorm:"not null;uniqueIndex"`
	AddressLine1 string `gorm:"size:200;not null"`
	AddressLine2 string `gorm:"size:200"`
	AddressLine3 string `gorm:"size:200"`
	Postcode     string `gorm:"size:10;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}

// PaymentModel is the GORM struct for the 'payments' table.
type PaymentModel struct {
	ID          uint            `gorm:"primaryKey"`
	PolicyID    uint            `gorm:"not null;uniqueIndex"`
	Reference   string          `gorm:"size:64;uniqueIndex;not null"`
	PaymentType string          `gorm:"size:20;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
