package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BorrowedMoney represents money a user borrowed from a lender
// (a friend, a bank, a finance company).
type BorrowedMoney struct {
	Base
	Amount       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	BorrowedFrom string          `gorm:"not null" json:"borrowed_from"`
	BorrowedDate time.Time       `gorm:"not null" json:"borrowed_date"`
	DueDate      time.Time       `gorm:"not null" json:"due_date"`
	UserID       uint            `gorm:"not null;index" json:"user_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
