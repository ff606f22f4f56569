package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents money spent by a user against a category.
type Expense struct {
	Base
	Title      string          `gorm:"not null" json:"title"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Date       time.Time       `gorm:"not null" json:"date"`
	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}
