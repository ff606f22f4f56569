package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Owner identifies who created a category: either the system (shared,
// usable by everyone) or a single user (private to that user). It replaces
// a bare nullable user reference so the shared case is an explicit variant
// rather than an implicit nil check.
type Owner struct {
	userID uint
	user   bool
}

// SystemOwner returns the owner value for a shared category.
func SystemOwner() Owner { return Owner{} }

// UserOwner returns the owner value for a category private to the given user.
func UserOwner(userID uint) Owner { return Owner{userID: userID, user: true} }

// IsSystem reports whether the category is shared (no owning user).
func (o Owner) IsSystem() bool { return !o.user }

// UserID returns the owning user's ID and whether one exists.
func (o Owner) UserID() (uint, bool) { return o.userID, o.user }

// Value implements driver.Valuer; the system variant maps to SQL NULL.
func (o Owner) Value() (driver.Value, error) {
	if !o.user {
		return nil, nil
	}
	return int64(o.userID), nil
}

// Scan implements sql.Scanner.
func (o *Owner) Scan(src interface{}) error {
	if src == nil {
		*o = SystemOwner()
		return nil
	}
	switch v := src.(type) {
	case int64:
		*o = UserOwner(uint(v))
	case float64:
		*o = UserOwner(uint(v))
	default:
		return fmt.Errorf("cannot scan %T into Owner", src)
	}
	return nil
}

// MarshalJSON renders the system variant as null and the user variant as the ID.
func (o Owner) MarshalJSON() ([]byte, error) {
	if !o.user {
		return []byte("null"), nil
	}
	return json.Marshal(o.userID)
}

// UnmarshalJSON accepts null or a user ID.
func (o *Owner) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = SystemOwner()
		return nil
	}
	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*o = UserOwner(id)
	return nil
}
