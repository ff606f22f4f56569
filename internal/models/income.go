package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents money earned by a user.
type Income struct {
	Base
	Source      string          `gorm:"not null" json:"source"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Description string          `json:"description"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
