package models

// User represents a registered user of the tracker.
type User struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Phone    string `gorm:"uniqueIndex;not null" json:"phone"`
	Role     string `gorm:"default:USER" json:"role"`

	Incomes       []Income        `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Expenses      []Expense       `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	BorrowedMoney []BorrowedMoney `gorm:"foreignKey:UserID" json:"borrowed_money,omitempty"`
}
