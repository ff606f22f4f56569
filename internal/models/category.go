package models

// Category classifies expenses. Names are unique across the whole system
// regardless of owner. A category created with a system owner is shared and
// usable by any user; one created by a user is private to that user.
type Category struct {
	Base
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	CreatedBy   Owner  `gorm:"column:created_by_user_id;type:bigint" json:"created_by_user_id"`

	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}
