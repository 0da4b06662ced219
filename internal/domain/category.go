// internal/domain/category.go
package domain

import "time"

// Category is a classification label for transactions. It has no effect on
// wallet balances and exists for reporting only.
type Category struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color"` // hex code for display
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewCategory creates a new Category instance.
func NewCategory(userID int64, name, color string) *Category {
	return &Category{
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
}
