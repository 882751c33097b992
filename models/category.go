package models

import "time"

// Category is a named tag for sessions and todos. A small set of defaults is
// seeded by the migrations; users see the full list name-ordered.
type Category struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	Icon      *string   `json:"icon,omitempty" db:"icon"`
	IsDefault bool      `json:"isDefault" db:"is_default"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
