// SPDX-License-Identifier: MIT

package model

import (
	"time"

	"github.com/google/uuid"
)

// Category groups tasks. Categories may be nested via ParentCategoryID.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`

	Color string `json:"color,omitempty"` // hex code, e.g. "#FF5733"
	Icon  string `json:"icon,omitempty"`

	ParentCategoryID uuid.UUID `json:"parentCategoryId,omitzero"`

	SortOrder int  `json:"sortOrder"`
	IsDefault bool `json:"isDefault"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	return c
}
