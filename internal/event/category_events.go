// SPDX-License-Identifier: MIT

package event

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dayflow/dayflow/internal/model"
)

// CategoryCreated is published when a new category is created.
type CategoryCreated struct {
	Meta
	Category model.Category `json:"category"`
}

func NewCategoryCreated(category model.Category) *CategoryCreated {
	return &CategoryCreated{Meta: NewMeta(TypeCategoryCreated), Category: category.Clone()}
}

func (e *CategoryCreated) Details() string {
	return fmt.Sprintf("Category created: %s (ID: %s)", e.Category.Name, e.Category.ID)
}

// CategoryUpdated is published when a category is updated. It carries both
// the old and new states of the category.
type CategoryUpdated struct {
	Meta
	OldCategory model.Category `json:"oldCategory"`
	NewCategory model.Category `json:"newCategory"`
}

func NewCategoryUpdated(oldCategory, newCategory model.Category) *CategoryUpdated {
	return &CategoryUpdated{
		Meta:        NewMeta(TypeCategoryUpdated),
		OldCategory: oldCategory.Clone(),
		NewCategory: newCategory.Clone(),
	}
}

func (e *CategoryUpdated) Details() string {
	return fmt.Sprintf("Category updated: %s (ID: %s)", e.NewCategory.Name, e.NewCategory.ID)
}

// CategoryDeleted is published when a category is deleted. It carries the
// tasks that pointed at the category and need reassignment.
type CategoryDeleted struct {
	Meta
	Category        model.Category `json:"category"`
	AffectedTaskIDs []uuid.UUID    `json:"affectedTaskIds"`
}

func NewCategoryDeleted(category model.Category, affectedTaskIDs []uuid.UUID) *CategoryDeleted {
	return &CategoryDeleted{
		Meta:            NewMeta(TypeCategoryDeleted),
		Category:        category.Clone(),
		AffectedTaskIDs: append([]uuid.UUID(nil), affectedTaskIDs...),
	}
}

func (e *CategoryDeleted) Details() string {
	return fmt.Sprintf("Category deleted: %s (ID: %s), affecting %d tasks",
		e.Category.Name, e.Category.ID, len(e.AffectedTaskIDs))
}

// CategoryReordered is published when categories are reordered. It carries
// the new order of category IDs.
type CategoryReordered struct {
	Meta
	CategoryIDs []uuid.UUID `json:"categoryIds"`
}

func NewCategoryReordered(categoryIDs []uuid.UUID) *CategoryReordered {
	return &CategoryReordered{
		Meta:        NewMeta(TypeCategoryReordered),
		CategoryIDs: append([]uuid.UUID(nil), categoryIDs...),
	}
}

func (e *CategoryReordered) Details() string {
	return fmt.Sprintf("Categories reordered: %d categories", len(e.CategoryIDs))
}
